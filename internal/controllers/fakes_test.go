package controllers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/MrSmurf09/Api-Proyecto/internal/models"
)

// Handler-level stand-ins for the pgx repositories. They return empty
// data and record the mutations the handlers issue.

type stubAnimalRepo struct {
	created []*models.Animal

	setPregnancyID   uuid.UUID
	setPregnancyDate time.Time
	setDewormingID   uuid.UUID
	setDewormingDate time.Time
}

func (s *stubAnimalRepo) Create(_ context.Context, a *models.Animal) error {
	s.created = append(s.created, a)
	return nil
}
func (s *stubAnimalRepo) GetByID(context.Context, uuid.UUID) (*models.Animal, error) {
	return nil, pgx.ErrNoRows
}
func (s *stubAnimalRepo) ListByPaddockID(context.Context, uuid.UUID) ([]*models.AnimalWithMilkAvg, error) {
	return nil, nil
}
func (s *stubAnimalRepo) ListByVeterinarianID(context.Context, uuid.UUID) ([]*models.Animal, error) {
	return nil, nil
}
func (s *stubAnimalRepo) ListForAlertScan(context.Context) ([]*models.AnimalAlertRow, error) {
	return nil, nil
}
func (s *stubAnimalRepo) SetPregnancyDate(_ context.Context, id uuid.UUID, date time.Time) error {
	s.setPregnancyID, s.setPregnancyDate = id, date
	return nil
}
func (s *stubAnimalRepo) SetDewormingDate(_ context.Context, id uuid.UUID, date time.Time) error {
	s.setDewormingID, s.setDewormingDate = id, date
	return nil
}
func (s *stubAnimalRepo) AssignVeterinarian(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}
func (s *stubAnimalRepo) Delete(context.Context, uuid.UUID) error { return nil }
func (s *stubAnimalRepo) ClearPregnancyDate(context.Context, uuid.UUID) (bool, error) {
	return true, nil
}
func (s *stubAnimalRepo) AdvanceDewormingForPaddock(context.Context, uuid.UUID, time.Time) (int64, error) {
	return 0, nil
}

type stubReminderRepo struct{}

func (stubReminderRepo) Create(context.Context, *models.Reminder) error { return nil }
func (stubReminderRepo) GetByID(context.Context, uuid.UUID) (*models.Reminder, error) {
	return nil, pgx.ErrNoRows
}
func (stubReminderRepo) ListByAnimalID(context.Context, uuid.UUID) ([]*models.Reminder, error) {
	return nil, nil
}
func (stubReminderRepo) ListDueUnsent(context.Context, time.Time, time.Time) ([]*models.Reminder, error) {
	return nil, nil
}
func (stubReminderRepo) MarkSent(context.Context, uuid.UUID) (bool, error) { return true, nil }
func (stubReminderRepo) Delete(context.Context, uuid.UUID) (*models.Reminder, error) {
	return nil, pgx.ErrNoRows
}

type stubUserRepo struct{}

func (stubUserRepo) Create(context.Context, *models.User) error { return nil }
func (stubUserRepo) GetByID(context.Context, uuid.UUID) (*models.User, error) {
	return nil, pgx.ErrNoRows
}
func (stubUserRepo) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, pgx.ErrNoRows
}
func (stubUserRepo) GetByPhone(context.Context, string) (*models.User, error) {
	return nil, pgx.ErrNoRows
}
func (stubUserRepo) ListByRole(context.Context, string) ([]*models.User, error) {
	return nil, nil
}
func (stubUserRepo) UpdatePassword(context.Context, string, string) error { return nil }

type stubMailer struct{}

func (stubMailer) Send(toName, toEmail, subject, plainText, htmlBody string) error { return nil }
