package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/MrSmurf09/Api-Proyecto/internal/dtos"
	"github.com/MrSmurf09/Api-Proyecto/internal/middleware"
	"github.com/MrSmurf09/Api-Proyecto/internal/models"
	"github.com/MrSmurf09/Api-Proyecto/internal/repositories"
	"github.com/MrSmurf09/Api-Proyecto/internal/utils"
)

const dateLayout = "2006-01-02"

type AnimalController struct {
	animalRepo repositories.AnimalRepository
	validate   *validator.Validate
}

func NewAnimalController(animalRepo repositories.AnimalRepository) *AnimalController {
	return &AnimalController{animalRepo: animalRepo, validate: validator.New()}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func animalToResponse(a *models.Animal, avgMilk float64) dtos.AnimalResponse {
	resp := dtos.AnimalResponse{
		ID:            a.ID.String(),
		Code:          a.Code,
		AgeYears:      a.AgeYears,
		Breed:         a.Breed,
		HealthNotes:   a.HealthNotes,
		Vaccines:      a.Vaccines,
		PregnancyDate: formatDate(a.PregnancyDate),
		DewormingDate: formatDate(a.DewormingDate),
		PaddockID:     a.PaddockID.String(),
		AvgMilkLiters: avgMilk,
	}
	if a.VeterinarianID != nil {
		s := a.VeterinarianID.String()
		resp.VeterinarianID = &s
	}
	return resp
}

// POST /api/vacas/{paddockID}
func (c *AnimalController) CreateAnimalHandler(w http.ResponseWriter, r *http.Request) {
	paddockID, ok := pathUUID(w, r, "paddockID")
	if !ok {
		return
	}
	var req dtos.AnimalRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	a := &models.Animal{
		ID:          uuid.New(),
		Code:        req.Code,
		AgeYears:    req.AgeYears,
		Breed:       req.Breed,
		HealthNotes: req.HealthNotes,
		Vaccines:    req.Vaccines,
		PaddockID:   paddockID,
	}
	if req.PregnancyDate != nil {
		d, err := parseRegionDate(*req.PregnancyDate)
		if err != nil {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Fecha de embarazo inválida", nil, err)
			return
		}
		a.PregnancyDate = &d
	}
	if req.DewormingDate != nil {
		d, err := parseRegionDate(*req.DewormingDate)
		if err != nil {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Fecha de desparasitación inválida", nil, err)
			return
		}
		a.DewormingDate = &d
	}

	if err := c.animalRepo.Create(r.Context(), a); err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudo registrar la vaca", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, animalToResponse(a, 0))
}

// GET /api/vacas/{paddockID}
func (c *AnimalController) ListAnimalsHandler(w http.ResponseWriter, r *http.Request) {
	paddockID, ok := pathUUID(w, r, "paddockID")
	if !ok {
		return
	}

	animals, err := c.animalRepo.ListByPaddockID(r.Context(), paddockID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudieron listar las vacas", nil, err)
		return
	}
	out := make([]dtos.AnimalResponse, 0, len(animals))
	for _, a := range animals {
		out = append(out, animalToResponse(&a.Animal, a.AvgMilkLiters))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// GET /api/vaca/{id}
func (c *AnimalController) GetAnimalHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	a, err := c.animalRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Vaca no encontrada", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudo consultar la vaca", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, animalToResponse(a, 0))
}

// PATCH /api/vacas/{id}/embarazo
func (c *AnimalController) SetPregnancyDateHandler(w http.ResponseWriter, r *http.Request) {
	c.setAnimalDate(w, r, c.animalRepo.SetPregnancyDate, "No se pudo actualizar la fecha de embarazo")
}

// PATCH /api/vacas/{id}/desparasitacion
func (c *AnimalController) SetDewormingDateHandler(w http.ResponseWriter, r *http.Request) {
	c.setAnimalDate(w, r, c.animalRepo.SetDewormingDate, "No se pudo actualizar la fecha de desparasitación")
}

func (c *AnimalController) setAnimalDate(
	w http.ResponseWriter,
	r *http.Request,
	set func(ctx context.Context, id uuid.UUID, date time.Time) error,
	failMsg string,
) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.AnimalDateRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}
	date, err := parseRegionDate(req.Date)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Fecha inválida", nil, err)
		return
	}

	if err := set(r.Context(), id, date); err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, failMsg, nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Fecha actualizada"})
}

// PATCH /api/vacas/{id}/veterinario
func (c *AnimalController) AssignVeterinarianHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.AssignVeterinarianRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}
	vetID, err := uuid.Parse(req.VeterinarianID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Identificador de veterinario inválido", nil, err)
		return
	}

	if err := c.animalRepo.AssignVeterinarian(r.Context(), id, vetID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Vaca no encontrada", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudo asignar el veterinario", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Veterinario asignado"})
}

// DELETE /api/vacas/{id}
func (c *AnimalController) DeleteAnimalHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := c.animalRepo.Delete(r.Context(), id); err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudo eliminar la vaca", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Vaca eliminada"})
}

// GET /api/veterinario/vacas
func (c *AnimalController) ListAssignedAnimalsHandler(w http.ResponseWriter, r *http.Request) {
	vetID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Token no proporcionado", nil)
		return
	}

	animals, err := c.animalRepo.ListByVeterinarianID(r.Context(), vetID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudieron listar las vacas asignadas", nil, err)
		return
	}
	out := make([]dtos.AnimalResponse, 0, len(animals))
	for _, a := range animals {
		out = append(out, animalToResponse(a, 0))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}
