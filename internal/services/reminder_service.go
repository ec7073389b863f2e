package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MrSmurf09/Api-Proyecto/internal/constants"
	"github.com/MrSmurf09/Api-Proyecto/internal/models"
	"github.com/MrSmurf09/Api-Proyecto/internal/repositories"
)

// regionZone is the fixed-offset zone reminder times arrive in. The app
// stores UTC; users type wall-clock times for their own region.
var regionZone = time.FixedZone("region", int(constants.RegionUTCOffset/time.Second))

// ReminderService creates and lists user reminders. Incoming due times
// are local wall-clock strings and are persisted in UTC.
type ReminderService struct {
	reminderRepo repositories.ReminderRepository
}

func NewReminderService(reminderRepo repositories.ReminderRepository) *ReminderService {
	return &ReminderService{reminderRepo: reminderRepo}
}

// Create parses dueAtLocal as "2006-01-02T15:04" in the region's fixed
// offset and stores the reminder with the equivalent UTC instant.
func (s *ReminderService) Create(ctx context.Context, dueAtLocal, title, body, category string, userID uuid.UUID, animalID *uuid.UUID) (*models.Reminder, error) {
	due, err := time.ParseInLocation("2006-01-02T15:04", dueAtLocal, regionZone)
	if err != nil {
		return nil, err
	}
	rem := &models.Reminder{
		ID:       uuid.New(),
		DueAt:    due.UTC(),
		Title:    title,
		Body:     body,
		Category: category,
		UserID:   userID,
		AnimalID: animalID,
	}
	if err := s.reminderRepo.Create(ctx, rem); err != nil {
		return nil, err
	}
	return rem, nil
}

func (s *ReminderService) ListByAnimal(ctx context.Context, animalID uuid.UUID) ([]*models.Reminder, error) {
	return s.reminderRepo.ListByAnimalID(ctx, animalID)
}

func (s *ReminderService) Delete(ctx context.Context, id uuid.UUID) (*models.Reminder, error) {
	return s.reminderRepo.Delete(ctx, id)
}
