package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/MrSmurf09/Api-Proyecto/internal/dtos"
	"github.com/MrSmurf09/Api-Proyecto/internal/models"
	"github.com/MrSmurf09/Api-Proyecto/internal/repositories"
	"github.com/MrSmurf09/Api-Proyecto/internal/utils"
)

type PaddockController struct {
	paddockRepo repositories.PaddockRepository
	validate    *validator.Validate
}

func NewPaddockController(paddockRepo repositories.PaddockRepository) *PaddockController {
	return &PaddockController{paddockRepo: paddockRepo, validate: validator.New()}
}

// POST /api/potreros/{farmID}
func (c *PaddockController) CreatePaddockHandler(w http.ResponseWriter, r *http.Request) {
	farmID, ok := pathUUID(w, r, "farmID")
	if !ok {
		return
	}
	var req dtos.PaddockRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	p := &models.Paddock{ID: uuid.New(), Name: req.Name, FarmID: farmID}
	if err := c.paddockRepo.Create(r.Context(), p); err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudo crear el potrero", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.PaddockSummaryResponse{
		ID:   p.ID.String(),
		Name: p.Name,
	})
}

// GET /api/potreros/{farmID}
func (c *PaddockController) ListPaddocksHandler(w http.ResponseWriter, r *http.Request) {
	farmID, ok := pathUUID(w, r, "farmID")
	if !ok {
		return
	}

	summaries, err := c.paddockRepo.ListSummariesByFarmID(r.Context(), farmID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudieron listar los potreros", nil, err)
		return
	}
	out := make([]dtos.PaddockSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, dtos.PaddockSummaryResponse{
			ID:            s.ID.String(),
			Name:          s.Name,
			AnimalCount:   s.AnimalCount,
			AvgMilkLiters: s.AvgMilkLiters,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}
