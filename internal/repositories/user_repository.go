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

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByPhone(ctx context.Context, phone string) (*models.User, error)
	ListByRole(ctx context.Context, role string) ([]*models.User, error)

	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type userRepo struct{ db DB }

func NewUserRepository(db DB) UserRepository { return &userRepo{db: db} }

const baseSelectUser = `
	SELECT id, name, email, phone, password_hash, role, created_at
	FROM users
`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, name, email, phone, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`, u.ID, u.Name, u.Email, u.Phone, u.PasswordHash, u.Role)
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser+` WHERE id = $1`, id)
	return scanUser(row)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser+` WHERE email = $1`, email)
	return scanUser(row)
}

func (r *userRepo) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser+` WHERE phone = $1`, phone)
	return scanUser(row)
}

func (r *userRepo) ListByRole(ctx context.Context, role string) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, baseSelectUser+` WHERE role = $1 ORDER BY name`, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *userRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET password_hash = $2 WHERE email = $1
	`, email, passwordHash)
	return err
}
