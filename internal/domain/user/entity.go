package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a portal account (job seeker). Matching-relevant preferences
// live on the candidate profile, not here.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
