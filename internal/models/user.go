package models

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a user role.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleParticipant Role = "participant"
)

// AnonymousEmail is the sentinel address every public submission is
// recorded under. Exactly one user row carries it.
const AnonymousEmail = "anonymous@survey.local"

// AnonymousName is the display name of the anonymous sentinel user.
const AnonymousName = "Anonymous Survey User"

// User represents a submitter identity.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
