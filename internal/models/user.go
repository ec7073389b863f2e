package models

import (
	"time"

	"github.com/google/uuid"
)

// User for the users table. Role distinguishes owners from veterinarians.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

const (
	RoleOwner        = "Ganadero"
	RoleVeterinarian = "Veterinario"
)
