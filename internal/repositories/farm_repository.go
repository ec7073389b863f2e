package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/MrSmurf09/Api-Proyecto/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type FarmRepository interface {
	Create(ctx context.Context, f *models.Farm) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Farm, error)
	ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*models.Farm, error)

	Update(ctx context.Context, f *models.Farm) error
	Delete(ctx context.Context, id uuid.UUID) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type farmRepo struct{ db DB }

func NewFarmRepository(db DB) FarmRepository { return &farmRepo{db: db} }

const baseSelectFarm = `
	SELECT id, name, description, image_url, owner_id, created_at
	FROM farms
`

func scanFarm(row pgx.Row) (*models.Farm, error) {
	var f models.Farm
	err := row.Scan(&f.ID, &f.Name, &f.Description, &f.ImageURL, &f.OwnerID, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *farmRepo) Create(ctx context.Context, f *models.Farm) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO farms (id, name, description, image_url, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`, f.ID, f.Name, f.Description, f.ImageURL, f.OwnerID)
	return err
}

func (r *farmRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Farm, error) {
	row := r.db.QueryRow(ctx, baseSelectFarm+` WHERE id = $1`, id)
	return scanFarm(row)
}

func (r *farmRepo) ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*models.Farm, error) {
	rows, err := r.db.Query(ctx, baseSelectFarm+` WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Farm
	for rows.Next() {
		f, err := scanFarm(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *farmRepo) Update(ctx context.Context, f *models.Farm) error {
	_, err := r.db.Exec(ctx, `
		UPDATE farms SET name = $2, description = $3, image_url = $4 WHERE id = $1
	`, f.ID, f.Name, f.Description, f.ImageURL)
	return err
}

func (r *farmRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM farms WHERE id = $1`, id)
	return err
}
