package services

import (
	"context"

	"github.com/MrSmurf09/Api-Proyecto/internal/utils"
)

// AlertService wires the scanner to the dispatcher. It is the single
// entry point for both the HTTP handlers and the cron jobs.
type AlertService struct {
	scanner    *DueEventScanner
	dispatcher *AlertDispatcher
}

func NewAlertService(scanner *DueEventScanner, dispatcher *AlertDispatcher) *AlertService {
	return &AlertService{scanner: scanner, dispatcher: dispatcher}
}

// RunHerdScan evaluates every animal's pregnancy and deworming anchors
// and dispatches the alerts that fall inside the window. It returns one
// human-readable line per state mutation actually applied.
func (s *AlertService) RunHerdScan(ctx context.Context) ([]string, error) {
	events, err := s.scanner.ScanHerd(ctx)
	if err != nil {
		return nil, err
	}
	res := s.dispatcher.Dispatch(ctx, events)
	utils.Logger.Infof("Revisión de vacas: %d enviados, %d fallidos, %d omitidos", res.Sent, res.Failed, res.Skipped)
	return res.Outcomes, nil
}

// RunReminderDispatch sends the reminders whose due time falls inside
// the upcoming-hour window and marks each one sent exactly once.
func (s *AlertService) RunReminderDispatch(ctx context.Context) (DispatchResult, error) {
	events, err := s.scanner.ScanReminders(ctx)
	if err != nil {
		return DispatchResult{}, err
	}
	res := s.dispatcher.Dispatch(ctx, events)
	if res.Sent > 0 || res.Failed > 0 {
		utils.Logger.Infof("Recordatorios: %d enviados, %d fallidos, %d omitidos", res.Sent, res.Failed, res.Skipped)
	}
	return res, nil
}
