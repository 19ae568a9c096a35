// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user in the Coinbag system.
type User struct {
	ID            uuid.UUID
	Email         string
	Name          string
	PasswordHash  string
	DigestEnabled bool // Whether the user receives plan digest emails
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:            uuid.New(),
		Email:         email,
		Name:          name,
		PasswordHash:  passwordHash,
		DigestEnabled: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
