package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the columns shared by every table. Nothing in this system
// is ever soft-deleted, so there is no deleted_at.
type Base struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
