package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/MrSmurf09/Api-Proyecto/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type ReminderRepository interface {
	Create(ctx context.Context, rem *models.Reminder) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Reminder, error)
	ListByAnimalID(ctx context.Context, animalID uuid.UUID) ([]*models.Reminder, error)

	// ListDueUnsent returns unsent reminders whose due time falls inside
	// [from, to], both inclusive.
	ListDueUnsent(ctx context.Context, from, to time.Time) ([]*models.Reminder, error)

	// MarkSent flips the idempotency flag only if it is still unset.
	// Returns false when another scan already sent this reminder.
	MarkSent(ctx context.Context, id uuid.UUID) (bool, error)

	Delete(ctx context.Context, id uuid.UUID) (*models.Reminder, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type reminderRepo struct{ db DB }

func NewReminderRepository(db DB) ReminderRepository { return &reminderRepo{db: db} }

const baseSelectReminder = `
	SELECT id, due_at, title, body, category, user_id, animal_id, sent, created_at
	FROM reminders
`

func scanReminder(row pgx.Row) (*models.Reminder, error) {
	var rem models.Reminder
	err := row.Scan(
		&rem.ID, &rem.DueAt, &rem.Title, &rem.Body, &rem.Category,
		&rem.UserID, &rem.AnimalID, &rem.Sent, &rem.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rem, nil
}

func (r *reminderRepo) Create(ctx context.Context, rem *models.Reminder) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reminders (id, due_at, title, body, category, user_id, animal_id, sent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, NOW())
	`, rem.ID, rem.DueAt, rem.Title, rem.Body, rem.Category, rem.UserID, rem.AnimalID)
	return err
}

func (r *reminderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Reminder, error) {
	row := r.db.QueryRow(ctx, baseSelectReminder+` WHERE id = $1`, id)
	return scanReminder(row)
}

func (r *reminderRepo) ListByAnimalID(ctx context.Context, animalID uuid.UUID) ([]*models.Reminder, error) {
	rows, err := r.db.Query(ctx, baseSelectReminder+` WHERE animal_id = $1 ORDER BY created_at DESC`, animalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Reminder
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rem)
	}
	return out, rows.Err()
}

func (r *reminderRepo) ListDueUnsent(ctx context.Context, from, to time.Time) ([]*models.Reminder, error) {
	rows, err := r.db.Query(ctx, baseSelectReminder+`
		WHERE sent = FALSE AND due_at >= $1 AND due_at <= $2
		ORDER BY due_at
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Reminder
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rem)
	}
	return out, rows.Err()
}

func (r *reminderRepo) MarkSent(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE reminders SET sent = TRUE WHERE id = $1 AND sent = FALSE
	`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *reminderRepo) Delete(ctx context.Context, id uuid.UUID) (*models.Reminder, error) {
	rem, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM reminders WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return rem, nil
}
