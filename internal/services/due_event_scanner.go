package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/MrSmurf09/Api-Proyecto/internal/models"
	"github.com/MrSmurf09/Api-Proyecto/internal/repositories"
	"github.com/MrSmurf09/Api-Proyecto/internal/utils"
)

// DueEventScanner reads the store and produces the DueEvents the current
// window makes eligible. It issues no writes: anchor mutation is the
// dispatcher's job, after a confirmed send.
type DueEventScanner struct {
	policy       WindowPolicy
	animalRepo   repositories.AnimalRepository
	reminderRepo repositories.ReminderRepository
	userRepo     repositories.UserRepository
	now          func() time.Time
}

func NewDueEventScanner(
	policy WindowPolicy,
	animalRepo repositories.AnimalRepository,
	reminderRepo repositories.ReminderRepository,
	userRepo repositories.UserRepository,
) *DueEventScanner {
	return &DueEventScanner{
		policy:       policy,
		animalRepo:   animalRepo,
		reminderRepo: reminderRepo,
		userRepo:     userRepo,
		now:          time.Now,
	}
}

// ScanHerd walks every animal and emits a pregnancy and/or deworming event
// for each anchor whose due date falls inside the alert window. Animals
// whose farm owner has no resolvable email are skipped, never fatal.
func (s *DueEventScanner) ScanHerd(ctx context.Context) ([]DueEvent, error) {
	rows, err := s.animalRepo.ListForAlertScan(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var events []DueEvent
	for _, row := range rows {
		if row.OwnerEmail == "" {
			utils.Logger.Warnf("Vaca %s sin correo de propietario, se omite", row.Code)
			continue
		}

		if row.PregnancyDate != nil {
			due := s.policy.PregnancyDue(*row.PregnancyDate)
			days := s.policy.DaysUntil(due, now)
			if s.policy.InAlertWindow(days) {
				events = append(events, DueEvent{
					Kind:           AlertKindPregnancy,
					SubjectID:      row.AnimalID,
					RecipientEmail: row.OwnerEmail,
					RecipientName:  row.OwnerName,
					AnchorDate:     *row.PregnancyDate,
					DueDate:        due,
					DaysRemaining:  days,
					AnimalCode:     row.Code,
					PaddockID:      row.PaddockID,
					PaddockName:    row.PaddockName,
					FarmName:       row.FarmName,
				})
			}
		}

		if row.DewormingDate != nil {
			due := s.policy.DewormingDue(*row.DewormingDate)
			days := s.policy.DaysUntil(due, now)
			if s.policy.InAlertWindow(days) {
				events = append(events, DueEvent{
					Kind:           AlertKindDeworming,
					SubjectID:      row.AnimalID,
					RecipientEmail: row.OwnerEmail,
					RecipientName:  row.OwnerName,
					AnchorDate:     *row.DewormingDate,
					DueDate:        due,
					DaysRemaining:  days,
					AnimalCode:     row.Code,
					PaddockID:      row.PaddockID,
					PaddockName:    row.PaddockName,
					FarmName:       row.FarmName,
				})
			}
		}
	}
	return events, nil
}

// ScanReminders emits an event for each unsent reminder whose due time is
// about to arrive within the dispatch window. A reminder whose owner
// record is missing is skipped with a log line.
func (s *DueEventScanner) ScanReminders(ctx context.Context) ([]DueEvent, error) {
	from, to := s.policy.ReminderWindow(s.now())
	reminders, err := s.reminderRepo.ListDueUnsent(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var events []DueEvent
	for _, rem := range reminders {
		owner, err := s.userRepo.GetByID(ctx, rem.UserID)
		if err != nil {
			if err == pgx.ErrNoRows {
				utils.Logger.Warnf("No se encontró el usuario %s del recordatorio %s", rem.UserID, rem.ID)
			} else {
				utils.Logger.WithError(err).Warnf("Error consultando el usuario del recordatorio %s", rem.ID)
			}
			continue
		}
		events = append(events, s.reminderEvent(rem, owner))
	}
	return events, nil
}

func (s *DueEventScanner) reminderEvent(rem *models.Reminder, owner *models.User) DueEvent {
	return DueEvent{
		Kind:           AlertKindReminder,
		SubjectID:      rem.ID,
		RecipientEmail: owner.Email,
		RecipientName:  owner.Name,
		RecipientPhone: owner.Phone,
		DueDate:        rem.DueAt,
		Title:          rem.Title,
		Body:           rem.Body,
		Category:       rem.Category,
	}
}
