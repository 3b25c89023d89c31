// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity entity. One row per registered account.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Email        string    // The user's login identifier. Unique across the system.
	Name         string    // The user's display name.
	PasswordHash string    // Salted bcrypt hash of the user's password. Never leaves the backend.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
