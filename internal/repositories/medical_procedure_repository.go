package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/MrSmurf09/Api-Proyecto/internal/models"
)

type MedicalProcedureRepository interface {
	Create(ctx context.Context, p *models.MedicalProcedure) error
	ListByAnimalID(ctx context.Context, animalID uuid.UUID) ([]*models.MedicalProcedure, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.MedicalProcedure, error)
}

type medicalProcedureRepo struct{ db DB }

func NewMedicalProcedureRepository(db DB) MedicalProcedureRepository {
	return &medicalProcedureRepo{db: db}
}

const baseSelectProcedure = `
	SELECT id, date, kind, description, status, animal_id, created_at
	FROM medical_procedures
`

func scanProcedure(row pgx.Row) (*models.MedicalProcedure, error) {
	var p models.MedicalProcedure
	err := row.Scan(&p.ID, &p.Date, &p.Kind, &p.Description, &p.Status, &p.AnimalID, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *medicalProcedureRepo) Create(ctx context.Context, p *models.MedicalProcedure) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO medical_procedures (id, date, kind, description, status, animal_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`, p.ID, p.Date, p.Kind, p.Description, p.Status, p.AnimalID)
	return err
}

func (r *medicalProcedureRepo) ListByAnimalID(ctx context.Context, animalID uuid.UUID) ([]*models.MedicalProcedure, error) {
	rows, err := r.db.Query(ctx, baseSelectProcedure+`
		WHERE animal_id = $1 ORDER BY created_at DESC
	`, animalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.MedicalProcedure
	for rows.Next() {
		p, err := scanProcedure(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *medicalProcedureRepo) Delete(ctx context.Context, id uuid.UUID) (*models.MedicalProcedure, error) {
	row := r.db.QueryRow(ctx, baseSelectProcedure+` WHERE id = $1`, id)
	p, err := scanProcedure(row)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM medical_procedures WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return p, nil
}
