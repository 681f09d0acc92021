package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comment - комментарий к споту
type Comment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	SpotID    uuid.UUID `json:"spot_id" db:"spot_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
