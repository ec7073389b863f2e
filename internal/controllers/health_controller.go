package controllers

import (
	"net/http"

	"github.com/MrSmurf09/Api-Proyecto/internal/dtos"
	"github.com/MrSmurf09/Api-Proyecto/internal/utils"
)

type HealthController struct{}

func NewHealthController() *HealthController { return &HealthController{} }

// GET /api/ping
func (c *HealthController) PingHandler(w http.ResponseWriter, _ *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{Status: "ok"})
}
