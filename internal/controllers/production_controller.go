package controllers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/MrSmurf09/Api-Proyecto/internal/dtos"
	"github.com/MrSmurf09/Api-Proyecto/internal/models"
	"github.com/MrSmurf09/Api-Proyecto/internal/repositories"
	"github.com/MrSmurf09/Api-Proyecto/internal/utils"
)

// ProductionController covers per-animal milk records and medical
// procedures, both plain CRUD over their repositories.
type ProductionController struct {
	milkRepo    repositories.MilkProductionRepository
	medicalRepo repositories.MedicalProcedureRepository
	validate    *validator.Validate
}

func NewProductionController(
	milkRepo repositories.MilkProductionRepository,
	medicalRepo repositories.MedicalProcedureRepository,
) *ProductionController {
	return &ProductionController{
		milkRepo:    milkRepo,
		medicalRepo: medicalRepo,
		validate:    validator.New(),
	}
}

func milkToResponse(m *models.MilkProduction) dtos.MilkProductionResponse {
	return dtos.MilkProductionResponse{
		ID:     m.ID.String(),
		Date:   m.Date.Format(dateLayout),
		Liters: m.Liters,
	}
}

func medicalToResponse(p *models.MedicalProcedure) dtos.MedicalProcedureResponse {
	return dtos.MedicalProcedureResponse{
		ID:          p.ID.String(),
		Date:        p.Date.Format(dateLayout),
		Kind:        p.Kind,
		Description: p.Description,
		Status:      p.Status,
	}
}

// POST /api/produccion/leche/{animalID}
func (c *ProductionController) CreateMilkRecordHandler(w http.ResponseWriter, r *http.Request) {
	animalID, ok := pathUUID(w, r, "animalID")
	if !ok {
		return
	}
	var req dtos.MilkProductionRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}
	date, err := parseRegionDate(req.Date)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Fecha inválida", nil, err)
		return
	}

	m := &models.MilkProduction{
		ID:       uuid.New(),
		Date:     date,
		Liters:   req.Liters,
		AnimalID: animalID,
	}
	if err := c.milkRepo.Create(r.Context(), m); err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudo registrar la producción", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, milkToResponse(m))
}

// GET /api/produccion/leche/{animalID}
func (c *ProductionController) ListMilkRecordsHandler(w http.ResponseWriter, r *http.Request) {
	animalID, ok := pathUUID(w, r, "animalID")
	if !ok {
		return
	}

	records, err := c.milkRepo.ListByAnimalID(r.Context(), animalID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudo consultar la producción", nil, err)
		return
	}
	out := make([]dtos.MilkProductionResponse, 0, len(records))
	for _, m := range records {
		out = append(out, milkToResponse(m))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// DELETE /api/produccion/leche/{id}
func (c *ProductionController) DeleteMilkRecordHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if _, err := c.milkRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Registro no encontrado", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudo eliminar el registro", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Registro eliminado"})
}

// POST /api/procesos/medicos/{animalID}
func (c *ProductionController) CreateMedicalProcedureHandler(w http.ResponseWriter, r *http.Request) {
	animalID, ok := pathUUID(w, r, "animalID")
	if !ok {
		return
	}
	var req dtos.MedicalProcedureRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}
	date, err := parseRegionDate(req.Date)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Fecha inválida", nil, err)
		return
	}

	p := &models.MedicalProcedure{
		ID:          uuid.New(),
		Date:        date,
		Kind:        req.Kind,
		Description: req.Description,
		Status:      req.Status,
		AnimalID:    animalID,
	}
	if err := c.medicalRepo.Create(r.Context(), p); err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudo registrar el proceso médico", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, medicalToResponse(p))
}

// GET /api/procesos/medicos/{animalID}
func (c *ProductionController) ListMedicalProceduresHandler(w http.ResponseWriter, r *http.Request) {
	animalID, ok := pathUUID(w, r, "animalID")
	if !ok {
		return
	}

	procs, err := c.medicalRepo.ListByAnimalID(r.Context(), animalID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudieron consultar los procesos médicos", nil, err)
		return
	}
	out := make([]dtos.MedicalProcedureResponse, 0, len(procs))
	for _, p := range procs {
		out = append(out, medicalToResponse(p))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// DELETE /api/procesos/medicos/{id}
func (c *ProductionController) DeleteMedicalProcedureHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if _, err := c.medicalRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Proceso no encontrado", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudo eliminar el proceso", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Proceso eliminado"})
}
