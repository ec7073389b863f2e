package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v4"

	"github.com/MrSmurf09/Api-Proyecto/internal/dtos"
	"github.com/MrSmurf09/Api-Proyecto/internal/middleware"
	"github.com/MrSmurf09/Api-Proyecto/internal/models"
	"github.com/MrSmurf09/Api-Proyecto/internal/services"
	"github.com/MrSmurf09/Api-Proyecto/internal/utils"
)

const maxImageUploadBytes = 10 << 20

// FarmController handles farm CRUD. Create/update accept multipart forms
// so the cover image can ride along with the fields.
type FarmController struct {
	farmService *services.FarmService
	validate    *validator.Validate
}

func NewFarmController(farmService *services.FarmService) *FarmController {
	return &FarmController{farmService: farmService, validate: validator.New()}
}

func farmToResponse(f *models.Farm) dtos.FarmResponse {
	return dtos.FarmResponse{
		ID:          f.ID.String(),
		Name:        f.Name,
		Description: f.Description,
		ImageURL:    f.ImageURL,
	}
}

// parseFarmForm extracts the form fields and the optional image. The
// caller owns closing the returned file.
func (c *FarmController) parseFarmForm(w http.ResponseWriter, r *http.Request) (dtos.FarmRequest, string, io.ReadCloser, bool) {
	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Formulario inválido", nil, err)
		return dtos.FarmRequest{}, "", nil, false
	}

	req := dtos.FarmRequest{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
	}
	if err := c.validate.Struct(req); err != nil {
		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", formatValidationErrors(validationErrs))
		} else {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		}
		return dtos.FarmRequest{}, "", nil, false
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return req, "", nil, true
		}
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Imagen inválida", nil, err)
		return dtos.FarmRequest{}, "", nil, false
	}
	return req, header.Filename, file, true
}

// POST /api/fincas
func (c *FarmController) CreateFarmHandler(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Token no proporcionado", nil)
		return
	}

	req, imageName, image, ok := c.parseFarmForm(w, r)
	if !ok {
		return
	}
	var reader io.Reader
	if image != nil {
		defer image.Close()
		reader = image
	}

	f, err := c.farmService.Create(r.Context(), req.Name, req.Description, ownerID, imageName, reader)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudo crear la finca", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, farmToResponse(f))
}

// GET /api/fincas
func (c *FarmController) ListFarmsHandler(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Token no proporcionado", nil)
		return
	}

	farms, err := c.farmService.ListByOwner(r.Context(), ownerID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudieron listar las fincas", nil, err)
		return
	}
	out := make([]dtos.FarmResponse, 0, len(farms))
	for _, f := range farms {
		out = append(out, farmToResponse(f))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// PUT /api/fincas/{id}
func (c *FarmController) UpdateFarmHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	req, imageName, image, ok := c.parseFarmForm(w, r)
	if !ok {
		return
	}
	var reader io.Reader
	if image != nil {
		defer image.Close()
		reader = image
	}

	f, err := c.farmService.Update(r.Context(), id, req.Name, req.Description, imageName, reader)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Finca no encontrada", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudo actualizar la finca", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, farmToResponse(f))
}

// DELETE /api/fincas/{id}
func (c *FarmController) DeleteFarmHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := c.farmService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Finca no encontrada", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudo eliminar la finca", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Finca eliminada"})
}
