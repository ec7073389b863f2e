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

type AnimalRepository interface {
	Create(ctx context.Context, a *models.Animal) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Animal, error)
	ListByPaddockID(ctx context.Context, paddockID uuid.UUID) ([]*models.AnimalWithMilkAvg, error)
	ListByVeterinarianID(ctx context.Context, vetID uuid.UUID) ([]*models.Animal, error)

	// ListForAlertScan joins every animal with its paddock, farm and farm
	// owner. Owner columns come back empty (not an error) when the owner
	// record is missing.
	ListForAlertScan(ctx context.Context) ([]*models.AnimalAlertRow, error)

	SetPregnancyDate(ctx context.Context, id uuid.UUID, date time.Time) error
	SetDewormingDate(ctx context.Context, id uuid.UUID, date time.Time) error
	AssignVeterinarian(ctx context.Context, id, vetID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ClearPregnancyDate nils the anchor only if it is still set, so two
	// overlapping scans cannot both claim the same birth alert. Returns
	// false when another scan already cleared it.
	ClearPregnancyDate(ctx context.Context, id uuid.UUID) (bool, error)

	// AdvanceDewormingForPaddock moves the deworming anchor of every
	// animal in the paddock to the given date. Returns the number of
	// animals updated.
	AdvanceDewormingForPaddock(ctx context.Context, paddockID uuid.UUID, next time.Time) (int64, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type animalRepo struct{ db DB }

func NewAnimalRepository(db DB) AnimalRepository { return &animalRepo{db: db} }

const baseSelectAnimal = `
	SELECT id, code, age_years, breed, health_notes, vaccines,
	       pregnancy_date, deworming_date, paddock_id, veterinarian_id, created_at
	FROM animals
`

func scanAnimal(row pgx.Row) (*models.Animal, error) {
	var a models.Animal
	err := row.Scan(
		&a.ID, &a.Code, &a.AgeYears, &a.Breed, &a.HealthNotes, &a.Vaccines,
		&a.PregnancyDate, &a.DewormingDate, &a.PaddockID, &a.VeterinarianID, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *animalRepo) Create(ctx context.Context, a *models.Animal) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO animals (
			id, code, age_years, breed, health_notes, vaccines,
			pregnancy_date, deworming_date, paddock_id, veterinarian_id, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,NOW())
	`, a.ID, a.Code, a.AgeYears, a.Breed, a.HealthNotes, a.Vaccines,
		a.PregnancyDate, a.DewormingDate, a.PaddockID, a.VeterinarianID)
	return err
}

func (r *animalRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Animal, error) {
	row := r.db.QueryRow(ctx, baseSelectAnimal+` WHERE id = $1`, id)
	return scanAnimal(row)
}

func (r *animalRepo) ListByPaddockID(ctx context.Context, paddockID uuid.UUID) ([]*models.AnimalWithMilkAvg, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.code, a.age_years, a.breed, a.health_notes, a.vaccines,
		       a.pregnancy_date, a.deworming_date, a.paddock_id, a.veterinarian_id, a.created_at,
		       COALESCE(AVG(m.liters), 0) AS avg_milk_liters
		FROM animals a
		LEFT JOIN milk_production m ON m.animal_id = a.id
		WHERE a.paddock_id = $1
		GROUP BY a.id
		ORDER BY a.code
	`, paddockID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.AnimalWithMilkAvg
	for rows.Next() {
		var a models.AnimalWithMilkAvg
		if err := rows.Scan(
			&a.ID, &a.Code, &a.AgeYears, &a.Breed, &a.HealthNotes, &a.Vaccines,
			&a.PregnancyDate, &a.DewormingDate, &a.PaddockID, &a.VeterinarianID, &a.CreatedAt,
			&a.AvgMilkLiters,
		); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

func (r *animalRepo) ListByVeterinarianID(ctx context.Context, vetID uuid.UUID) ([]*models.Animal, error) {
	rows, err := r.db.Query(ctx, baseSelectAnimal+` WHERE veterinarian_id = $1 ORDER BY code`, vetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Animal
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *animalRepo) ListForAlertScan(ctx context.Context) ([]*models.AnimalAlertRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.code, a.pregnancy_date, a.deworming_date,
		       p.id, p.name, f.name,
		       COALESCE(u.name, ''), COALESCE(u.email, '')
		FROM animals a
		JOIN paddocks p ON p.id = a.paddock_id
		JOIN farms f ON f.id = p.farm_id
		LEFT JOIN users u ON u.id = f.owner_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.AnimalAlertRow
	for rows.Next() {
		var row models.AnimalAlertRow
		if err := rows.Scan(
			&row.AnimalID, &row.Code, &row.PregnancyDate, &row.DewormingDate,
			&row.PaddockID, &row.PaddockName, &row.FarmName,
			&row.OwnerName, &row.OwnerEmail,
		); err != nil {
			return nil, err
		}
		out = append(out, &row)
	}
	return out, rows.Err()
}

func (r *animalRepo) SetPregnancyDate(ctx context.Context, id uuid.UUID, date time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE animals SET pregnancy_date = $2 WHERE id = $1`, id, date)
	return err
}

func (r *animalRepo) SetDewormingDate(ctx context.Context, id uuid.UUID, date time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE animals SET deworming_date = $2 WHERE id = $1`, id, date)
	return err
}

func (r *animalRepo) AssignVeterinarian(ctx context.Context, id, vetID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `UPDATE animals SET veterinarian_id = $2 WHERE id = $1`, id, vetID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *animalRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM animals WHERE id = $1`, id)
	return err
}

func (r *animalRepo) ClearPregnancyDate(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE animals SET pregnancy_date = NULL
		WHERE id = $1 AND pregnancy_date IS NOT NULL
	`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *animalRepo) AdvanceDewormingForPaddock(ctx context.Context, paddockID uuid.UUID, next time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE animals SET deworming_date = $2
		WHERE paddock_id = $1 AND deworming_date IS NOT NULL
	`, paddockID, next)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
