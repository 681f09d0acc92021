package domain

import (
	"time"

	"github.com/google/uuid"
)

// Имена Redis-стримов для событий изменения данных
const (
	StreamSpotsChanged      = "stream:spots:changed"
	StreamAttendanceChanged = "stream:attendance:changed"
)

// Действия над сущностями
const (
	ActionCreated  = "created"
	ActionUpdated  = "updated"
	ActionDeleted  = "deleted"
	ActionApproved = "approved"
)

// ChangeEvent - событие изменения спота или посещаемости.
// Потребители (prefetch-воркер, дебаунсер выдачи) реагируют на поток
// таких событий, а не опрашивают БД.
type ChangeEvent struct {
	EntityID  uuid.UUID `json:"entity_id"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
