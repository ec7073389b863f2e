package controllers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/MrSmurf09/Api-Proyecto/internal/dtos"
	"github.com/MrSmurf09/Api-Proyecto/internal/models"
	"github.com/MrSmurf09/Api-Proyecto/internal/repositories"
	"github.com/MrSmurf09/Api-Proyecto/internal/services"
	"github.com/MrSmurf09/Api-Proyecto/internal/utils"
)

// UserController handles registration, login and the password-reset flow.
type UserController struct {
	userService *services.UserService
	userRepo    repositories.UserRepository
	validate    *validator.Validate
}

func NewUserController(userService *services.UserService, userRepo repositories.UserRepository) *UserController {
	return &UserController{
		userService: userService,
		userRepo:    userRepo,
		validate:    validator.New(),
	}
}

// POST /usuario/registrar
func (c *UserController) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterUserRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	u, err := c.userService.Register(r.Context(), req.Name, req.Email, req.Phone, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrEmailExists):
			utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeConflict, "El correo ya está registrado", nil)
		case errors.Is(err, utils.ErrPhoneExists):
			utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeConflict, "El teléfono ya está registrado", nil)
		default:
			utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudo registrar el usuario", nil, err)
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.RegisterUserResponse{
		ID:      u.ID.String(),
		Message: "Usuario registrado correctamente",
	})
}

// POST /usuario/login
func (c *UserController) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	u, token, err := c.userService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCredentials) {
			utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeInvalidCredentials, "Correo o contraseña incorrectos", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudo iniciar sesión", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.LoginResponse{
		Token: token,
		ID:    u.ID.String(),
		Name:  u.Name,
		Role:  u.Role,
	})
}

// POST /usuario/olvide-contrasena
func (c *UserController) ForgotPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.ForgotPasswordRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	if err := c.userService.ForgotPassword(r.Context(), req.Email); err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Usuario no encontrado", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudo enviar el código", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Código enviado al correo"})
}

// POST /usuario/verificar-codigo
func (c *UserController) VerifyResetCodeHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.VerifyResetCodeRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	if err := c.userService.VerifyResetCode(req.Email, req.Code); err != nil {
		switch {
		case errors.Is(err, utils.ErrResetCodeNotFound):
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "No hay código vigente para este correo", nil)
		case errors.Is(err, utils.ErrResetCodeExpired):
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeCodeExpired, "El código ha expirado", nil)
		case errors.Is(err, utils.ErrResetCodeMismatch):
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeCodeMismatch, "Código incorrecto", nil)
		default:
			utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudo verificar el código", nil, err)
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Código verificado"})
}

// POST /usuario/restablecer-contrasena
func (c *UserController) ResetPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.ResetPasswordRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	if err := c.userService.ResetPassword(r.Context(), req.Email, req.NewPassword); err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Usuario no encontrado", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudo restablecer la contraseña", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Contraseña actualizada"})
}

// GET /api/veterinarios
func (c *UserController) ListVeterinariansHandler(w http.ResponseWriter, r *http.Request) {
	vets, err := c.userRepo.ListByRole(r.Context(), models.RoleVeterinarian)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "No se pudieron listar los veterinarios", nil, err)
		return
	}

	type vetResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	out := make([]vetResponse, 0, len(vets))
	for _, v := range vets {
		out = append(out, vetResponse{ID: v.ID.String(), Name: v.Name, Email: v.Email})
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}
