package utils

import "errors"

/*
   Sentinel errors for herd-service domain logic.
   The controller can do: if errors.Is(err, ErrXYZ) { ... }
*/
var (
	ErrUserNotFound       = errors.New("user_not_found")
	ErrEmailExists        = errors.New("email_exists")
	ErrPhoneExists        = errors.New("phone_exists")
	ErrInvalidCredentials = errors.New("invalid_credentials")

	ErrResetCodeNotFound = errors.New("reset_code_not_found")
	ErrResetCodeExpired  = errors.New("reset_code_expired")
	ErrResetCodeMismatch = errors.New("reset_code_mismatch")

	ErrNoRowsUpdated = errors.New("no_rows_updated") // Can be used by repos
)
