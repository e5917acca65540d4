package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuthMethodType represents the type of authentication credential.
type AuthMethodType string

const (
	AuthMethodPassword AuthMethodType = "password"
)

func (m AuthMethodType) String() string { return string(m) }

// IsValid returns true if the method type is a known value.
func (m AuthMethodType) IsValid() bool {
	return m == AuthMethodPassword
}

// AuthMethod represents a single authentication credential for a user.
// Only password credentials exist today; the table keeps a method
// discriminator so other providers can be added without a migration.
type AuthMethod struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Method       AuthMethodType
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
