package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/MrSmurf09/Api-Proyecto/internal/constants"
	"github.com/MrSmurf09/Api-Proyecto/internal/models"
	"github.com/MrSmurf09/Api-Proyecto/internal/repositories"
	"github.com/MrSmurf09/Api-Proyecto/internal/utils"
)

const tokenTTL = 24 * time.Hour

// UserService owns registration, login and the password-reset flow.
type UserService struct {
	userRepo  repositories.UserRepository
	codeStore repositories.ResetCodeStore
	mailer    Mailer
	jwtSecret []byte
	now       func() time.Time
}

func NewUserService(
	userRepo repositories.UserRepository,
	codeStore repositories.ResetCodeStore,
	mailer Mailer,
	jwtSecret string,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		codeStore: codeStore,
		mailer:    mailer,
		jwtSecret: []byte(jwtSecret),
		now:       time.Now,
	}
}

// Register creates a user with a bcrypt-hashed password. Email and phone
// are unique across all users.
func (s *UserService) Register(ctx context.Context, name, email, phone, password, role string) (*models.User, error) {
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, utils.ErrEmailExists
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if phone != "" {
		if _, err := s.userRepo.GetByPhone(ctx, phone); err == nil {
			return nil, utils.ErrPhoneExists
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies the credentials and mints a signed HS256 token whose
// subject is the user id.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", utils.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !utils.CheckPasswordHash(password, u.PasswordHash) {
		return nil, "", utils.ErrInvalidCredentials
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   u.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// ForgotPassword issues a fresh numeric code for the account, replacing
// any earlier unconsumed one, and mails it to the user.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return utils.ErrUserNotFound
		}
		return err
	}

	code := utils.RandomNumericString(constants.ResetCodeLength)
	s.codeStore.Put(u.Email, code, s.now().Add(constants.ResetCodeTTL))

	ttlMinutes := int(constants.ResetCodeTTL / time.Minute)
	htmlBody := fmt.Sprintf(resetCodeEmailHTML, u.Name, ttlMinutes, code, s.now().Year())
	plainText := fmt.Sprintf("Hola %s, tu código para restablecer la contraseña es %s. Vence en %d minutos.",
		u.Name, code, ttlMinutes)
	if err := s.mailer.Send(u.Name, u.Email, "Código para restablecer tu contraseña", plainText, htmlBody); err != nil {
		return err
	}
	utils.Logger.Infof("Código de restablecimiento enviado a %s", u.Email)
	return nil
}

// VerifyResetCode checks the submitted code against the stored one.
// A correct code stays in the store so the subsequent password change can
// still consume it; only an expired code is evicted here.
func (s *UserService) VerifyResetCode(email, code string) error {
	rc, ok := s.codeStore.Get(email)
	if !ok {
		return utils.ErrResetCodeNotFound
	}
	if s.now().After(rc.ExpiresAt) {
		s.codeStore.Delete(email)
		return utils.ErrResetCodeExpired
	}
	if rc.Code != code {
		return utils.ErrResetCodeMismatch
	}
	return nil
}

// ResetPassword stores the new password hash and consumes the code.
func (s *UserService) ResetPassword(ctx context.Context, email, newPassword string) error {
	if _, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return utils.ErrUserNotFound
		}
		return err
	}
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, email, hash); err != nil {
		return err
	}
	s.codeStore.Delete(email)
	return nil
}
