package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/MrSmurf09/Api-Proyecto/internal/models"
)

type MilkProductionRepository interface {
	Create(ctx context.Context, m *models.MilkProduction) error
	ListRecentByAnimalID(ctx context.Context, animalID uuid.UUID, limit int) ([]*models.MilkProduction, error)
	ListByAnimalID(ctx context.Context, animalID uuid.UUID) ([]*models.MilkProduction, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.MilkProduction, error)
}

type milkProductionRepo struct{ db DB }

func NewMilkProductionRepository(db DB) MilkProductionRepository {
	return &milkProductionRepo{db: db}
}

const baseSelectMilk = `
	SELECT id, date, liters, animal_id, created_at
	FROM milk_production
`

func scanMilk(row pgx.Row) (*models.MilkProduction, error) {
	var m models.MilkProduction
	if err := row.Scan(&m.ID, &m.Date, &m.Liters, &m.AnimalID, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *milkProductionRepo) Create(ctx context.Context, m *models.MilkProduction) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO milk_production (id, date, liters, animal_id, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`, m.ID, m.Date, m.Liters, m.AnimalID)
	return err
}

func (r *milkProductionRepo) ListRecentByAnimalID(ctx context.Context, animalID uuid.UUID, limit int) ([]*models.MilkProduction, error) {
	rows, err := r.db.Query(ctx, baseSelectMilk+`
		WHERE animal_id = $1 ORDER BY created_at DESC LIMIT $2
	`, animalID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMilk(rows)
}

func (r *milkProductionRepo) ListByAnimalID(ctx context.Context, animalID uuid.UUID) ([]*models.MilkProduction, error) {
	rows, err := r.db.Query(ctx, baseSelectMilk+`
		WHERE animal_id = $1 ORDER BY created_at DESC
	`, animalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMilk(rows)
}

func collectMilk(rows pgx.Rows) ([]*models.MilkProduction, error) {
	var out []*models.MilkProduction
	for rows.Next() {
		m, err := scanMilk(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *milkProductionRepo) Delete(ctx context.Context, id uuid.UUID) (*models.MilkProduction, error) {
	row := r.db.QueryRow(ctx, baseSelectMilk+` WHERE id = $1`, id)
	m, err := scanMilk(row)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM milk_production WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return m, nil
}
