package controllers

import (
	"net/http"

	"github.com/MrSmurf09/Api-Proyecto/internal/dtos"
	"github.com/MrSmurf09/Api-Proyecto/internal/services"
	"github.com/MrSmurf09/Api-Proyecto/internal/utils"
)

// AlertController exposes the herd scan and the reminder dispatch. The
// cron jobs call the same service methods; these endpoints exist so an
// operator can trigger a run by hand and see the outcome.
type AlertController struct {
	alertService *services.AlertService
}

func NewAlertController(alertService *services.AlertService) *AlertController {
	return &AlertController{alertService: alertService}
}

// GET /api/revisar-vacas
func (c *AlertController) CheckHerdHandler(w http.ResponseWriter, r *http.Request) {
	detalles, err := c.alertService.RunHerdScan(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Error al revisar las vacas", nil, err)
		return
	}
	if detalles == nil {
		detalles = []string{}
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ScanResponse{Success: true, Detalles: detalles})
}

// GET /api/recordatorio/enviar
func (c *AlertController) DispatchRemindersHandler(w http.ResponseWriter, r *http.Request) {
	res, err := c.alertService.RunReminderDispatch(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Error al enviar los recordatorios", nil, err)
		return
	}
	if res.Sent == 0 && res.Failed == 0 && res.Skipped == 0 {
		utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Sin recordatorios próximos."})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ScanResponse{Success: true, Detalles: res.Outcomes})
}
