package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MrSmurf09/Api-Proyecto/internal/constants"
	"github.com/MrSmurf09/Api-Proyecto/internal/models"
	"github.com/MrSmurf09/Api-Proyecto/internal/repositories"
	"github.com/MrSmurf09/Api-Proyecto/internal/utils"
)

func newTestUserService(users *fakeUserRepo, mailer *fakeMailer) (*UserService, repositories.ResetCodeStore) {
	store := repositories.NewMemoryResetCodeStore()
	return NewUserService(users, store, mailer, "test-secret"), store
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	existing := &models.User{Email: "carlos@example.com"}
	svc, _ := newTestUserService(newFakeUserRepo(existing), newFakeMailer())

	_, err := svc.Register(context.Background(), "Otro", "carlos@example.com", "", "password123", models.RoleOwner)
	if !errors.Is(err, utils.ErrEmailExists) {
		t.Fatalf("Expected ErrEmailExists, got %v", err)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc, _ := newTestUserService(users, newFakeMailer())

	u, err := svc.Register(context.Background(), "Carlos", "carlos@example.com", "+573001112233", "password123", models.RoleOwner)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if u.PasswordHash == "password123" {
		t.Fatal("Password must be stored hashed")
	}

	logged, token, err := svc.Login(context.Background(), "carlos@example.com", "password123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" || logged.ID != u.ID {
		t.Fatalf("Expected a token for user %s, got token=%q user=%s", u.ID, token, logged.ID)
	}

	if _, _, err := svc.Login(context.Background(), "carlos@example.com", "wrong"); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Fatalf("Expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "nobody@example.com", "password123"); !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Fatalf("Expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestForgotPasswordIssuesCode(t *testing.T) {
	user := &models.User{Name: "Carlos", Email: "carlos@example.com"}
	mailer := newFakeMailer()
	svc, store := newTestUserService(newFakeUserRepo(user), mailer)

	if err := svc.ForgotPassword(context.Background(), user.Email); err != nil {
		t.Fatalf("ForgotPassword returned error: %v", err)
	}

	rc, ok := store.Get(user.Email)
	if !ok {
		t.Fatal("Expected a code stored for the email")
	}
	if len(rc.Code) != constants.ResetCodeLength {
		t.Fatalf("Expected a %d-digit code, got %q", constants.ResetCodeLength, rc.Code)
	}
	if len(mailer.sent) != 1 || !strings.Contains(mailer.sent[0].HTMLBody, rc.Code) {
		t.Fatal("Expected the stored code mailed to the user")
	}
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	svc, _ := newTestUserService(newFakeUserRepo(), newFakeMailer())
	if err := svc.ForgotPassword(context.Background(), "nobody@example.com"); !errors.Is(err, utils.ErrUserNotFound) {
		t.Fatalf("Expected ErrUserNotFound, got %v", err)
	}
}

// Verification must not consume the code: the client verifies first and
// submits the new password in a second request.
func TestVerifyResetCodeLeavesCodeAlive(t *testing.T) {
	user := &models.User{Name: "Carlos", Email: "carlos@example.com"}
	svc, store := newTestUserService(newFakeUserRepo(user), newFakeMailer())
	store.Put(user.Email, "123456", time.Now().Add(constants.ResetCodeTTL))

	if err := svc.VerifyResetCode(user.Email, "123456"); err != nil {
		t.Fatalf("VerifyResetCode returned error: %v", err)
	}
	if _, ok := store.Get(user.Email); !ok {
		t.Fatal("A verified code must survive until the password change")
	}
	// Verifying again still works.
	if err := svc.VerifyResetCode(user.Email, "123456"); err != nil {
		t.Fatalf("Second verification failed: %v", err)
	}
}

func TestVerifyResetCodeMismatch(t *testing.T) {
	user := &models.User{Email: "carlos@example.com"}
	svc, store := newTestUserService(newFakeUserRepo(user), newFakeMailer())
	store.Put(user.Email, "123456", time.Now().Add(constants.ResetCodeTTL))

	if err := svc.VerifyResetCode(user.Email, "654321"); !errors.Is(err, utils.ErrResetCodeMismatch) {
		t.Fatalf("Expected ErrResetCodeMismatch, got %v", err)
	}
	if _, ok := store.Get(user.Email); !ok {
		t.Fatal("A mismatched attempt must not evict the code")
	}
}

func TestVerifyResetCodeExpiredEvicts(t *testing.T) {
	user := &models.User{Email: "carlos@example.com"}
	svc, store := newTestUserService(newFakeUserRepo(user), newFakeMailer())
	store.Put(user.Email, "123456", time.Now().Add(-time.Minute))

	if err := svc.VerifyResetCode(user.Email, "123456"); !errors.Is(err, utils.ErrResetCodeExpired) {
		t.Fatalf("Expected ErrResetCodeExpired, got %v", err)
	}
	if _, ok := store.Get(user.Email); ok {
		t.Fatal("An expired code must be evicted on first touch")
	}
	if err := svc.VerifyResetCode(user.Email, "123456"); !errors.Is(err, utils.ErrResetCodeNotFound) {
		t.Fatalf("Expected ErrResetCodeNotFound after eviction, got %v", err)
	}
}

func TestResetPasswordConsumesCode(t *testing.T) {
	user := &models.User{Email: "carlos@example.com", PasswordHash: "old"}
	users := newFakeUserRepo(user)
	svc, store := newTestUserService(users, newFakeMailer())
	store.Put(user.Email, "123456", time.Now().Add(constants.ResetCodeTTL))

	if err := svc.ResetPassword(context.Background(), user.Email, "newpassword1"); err != nil {
		t.Fatalf("ResetPassword returned error: %v", err)
	}
	if user.PasswordHash == "old" {
		t.Fatal("Expected the password hash replaced")
	}
	if !utils.CheckPasswordHash("newpassword1", user.PasswordHash) {
		t.Fatal("New hash does not match the new password")
	}
	if _, ok := store.Get(user.Email); ok {
		t.Fatal("ResetPassword must consume the code")
	}
}

func TestForgotPasswordReplacesEarlierCode(t *testing.T) {
	user := &models.User{Name: "Carlos", Email: "carlos@example.com"}
	svc, store := newTestUserService(newFakeUserRepo(user), newFakeMailer())
	store.Put(user.Email, "111111", time.Now().Add(constants.ResetCodeTTL))

	if err := svc.ForgotPassword(context.Background(), user.Email); err != nil {
		t.Fatalf("ForgotPassword returned error: %v", err)
	}
	rc, _ := store.Get(user.Email)
	if err := svc.VerifyResetCode(user.Email, "111111"); rc.Code != "111111" && !errors.Is(err, utils.ErrResetCodeMismatch) {
		t.Fatalf("Expected the old code invalidated, got %v", err)
	}
}
