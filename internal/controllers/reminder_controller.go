package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/MrSmurf09/Api-Proyecto/internal/dtos"
	"github.com/MrSmurf09/Api-Proyecto/internal/middleware"
	"github.com/MrSmurf09/Api-Proyecto/internal/models"
	"github.com/MrSmurf09/Api-Proyecto/internal/services"
	"github.com/MrSmurf09/Api-Proyecto/internal/utils"
)

type ReminderController struct {
	reminderService *services.ReminderService
	validate        *validator.Validate
}

func NewReminderController(reminderService *services.ReminderService) *ReminderController {
	return &ReminderController{reminderService: reminderService, validate: validator.New()}
}

func reminderToResponse(rem *models.Reminder) dtos.ReminderResponse {
	resp := dtos.ReminderResponse{
		ID:       rem.ID.String(),
		DueAt:    rem.DueAt.UTC().Format(time.RFC3339),
		Title:    rem.Title,
		Body:     rem.Body,
		Category: rem.Category,
		Sent:     rem.Sent,
	}
	if rem.AnimalID != nil {
		s := rem.AnimalID.String()
		resp.AnimalID = &s
	}
	return resp
}

// POST /api/recordatorios
func (c *ReminderController) CreateReminderHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Token no proporcionado", nil)
		return
	}
	var req dtos.ReminderRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	var animalID *uuid.UUID
	if req.AnimalID != nil {
		id, err := uuid.Parse(*req.AnimalID)
		if err != nil {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Identificador de vaca inválido", nil, err)
			return
		}
		animalID = &id
	}

	rem, err := c.reminderService.Create(r.Context(), req.DueAt, req.Title, req.Body, req.Category, userID, animalID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudo crear el recordatorio", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, reminderToResponse(rem))
}

// GET /api/recordatorios/{animalID}
func (c *ReminderController) ListRemindersHandler(w http.ResponseWriter, r *http.Request) {
	animalID, ok := pathUUID(w, r, "animalID")
	if !ok {
		return
	}

	reminders, err := c.reminderService.ListByAnimal(r.Context(), animalID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudieron listar los recordatorios", nil, err)
		return
	}
	out := make([]dtos.ReminderResponse, 0, len(reminders))
	for _, rem := range reminders {
		out = append(out, reminderToResponse(rem))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// DELETE /api/recordatorios/{id}
func (c *ReminderController) DeleteReminderHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	rem, err := c.reminderService.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Recordatorio no encontrado", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudo eliminar el recordatorio", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, reminderToResponse(rem))
}
