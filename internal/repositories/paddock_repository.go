package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/MrSmurf09/Api-Proyecto/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type PaddockRepository interface {
	Create(ctx context.Context, p *models.Paddock) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Paddock, error)

	// ListSummariesByFarmID returns each paddock of a farm with its herd
	// size and average milk production across the herd.
	ListSummariesByFarmID(ctx context.Context, farmID uuid.UUID) ([]*models.PaddockSummary, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type paddockRepo struct{ db DB }

func NewPaddockRepository(db DB) PaddockRepository { return &paddockRepo{db: db} }

func (r *paddockRepo) Create(ctx context.Context, p *models.Paddock) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO paddocks (id, name, farm_id, created_at)
		VALUES ($1, $2, $3, NOW())
	`, p.ID, p.Name, p.FarmID)
	return err
}

func (r *paddockRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Paddock, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, farm_id, created_at FROM paddocks WHERE id = $1
	`, id)
	var p models.Paddock
	if err := row.Scan(&p.ID, &p.Name, &p.FarmID, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paddockRepo) ListSummariesByFarmID(ctx context.Context, farmID uuid.UUID) ([]*models.PaddockSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.name, p.farm_id, p.created_at,
		       COUNT(DISTINCT a.id) AS animal_count,
		       COALESCE(AVG(m.liters), 0) AS avg_milk_liters
		FROM paddocks p
		LEFT JOIN animals a ON a.paddock_id = p.id
		LEFT JOIN milk_production m ON m.animal_id = a.id
		WHERE p.farm_id = $1
		GROUP BY p.id, p.name, p.farm_id, p.created_at
		ORDER BY p.name
	`, farmID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.PaddockSummary
	for rows.Next() {
		var s models.PaddockSummary
		if err := rows.Scan(
			&s.ID, &s.Name, &s.FarmID, &s.CreatedAt,
			&s.AnimalCount, &s.AvgMilkLiters,
		); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
