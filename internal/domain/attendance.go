package domain

import (
	"time"

	"github.com/google/uuid"
)

// MinAttendanceDurationMinutes - минимальная значимая длительность посещения.
// Записи с duration_minutes < 1 трактуются как 30 секунд, что бы ни лежало в БД
// (совместимость с историческими данными).
const MinAttendanceDurationMinutes = 0.5

// AttendanceStatus - статус записи посещения относительно текущего момента
type AttendanceStatus string

const (
	AttendanceActive    AttendanceStatus = "active"
	AttendanceScheduled AttendanceStatus = "scheduled"
	AttendanceExpired   AttendanceStatus = "expired"
)

// AttendanceRecord - заявка пользователя о присутствии на споте
type AttendanceRecord struct {
	ID              uuid.UUID `json:"id" db:"id"`
	SpotID          uuid.UUID `json:"spot_id" db:"spot_id"`
	UserID          uuid.UUID `json:"user_id" db:"user_id"`
	Username        string    `json:"username" db:"username"`
	StartTime       time.Time `json:"start_time" db:"start_time"`
	DurationMinutes float64   `json:"duration_minutes" db:"duration_minutes"`
}

// EffectiveDuration возвращает длительность с учётом нижней границы в 30 секунд
func (r AttendanceRecord) EffectiveDuration() time.Duration {
	minutes := r.DurationMinutes
	if minutes < 1 {
		minutes = MinAttendanceDurationMinutes
	}
	return time.Duration(minutes * float64(time.Minute))
}

// EndTime возвращает конец интервала [start, start+duration)
func (r AttendanceRecord) EndTime() time.Time {
	return r.StartTime.Add(r.EffectiveDuration())
}

// Status классифицирует запись относительно now
func (r AttendanceRecord) Status(now time.Time) AttendanceStatus {
	if now.Before(r.StartTime) {
		return AttendanceScheduled
	}
	if !now.After(r.EndTime()) {
		return AttendanceActive
	}
	return AttendanceExpired
}

// AttendanceSummary - агрегат посещаемости спота на момент запроса
type AttendanceSummary struct {
	Active    int  `json:"active"`
	Scheduled int  `json:"scheduled"`
	Total     int  `json:"total"`
	IsEmpty   bool `json:"is_empty"`
}

// Summarize раскладывает записи по статусам. Истёкшие записи не попадают
// ни в один счётчик; их удаление - отдельная забота вызывающей стороны.
func Summarize(records []AttendanceRecord, now time.Time) AttendanceSummary {
	var s AttendanceSummary
	for _, r := range records {
		switch r.Status(now) {
		case AttendanceActive:
			s.Active++
		case AttendanceScheduled:
			s.Scheduled++
		}
	}
	s.Total = s.Active + s.Scheduled
	s.IsEmpty = s.Total == 0
	return s
}

// SplitExpired делит записи на живые и истёкшие. Возвращает живые записи и
// ID истёкших - вызывающая сторона сама решает, когда отправить delete.
func SplitExpired(records []AttendanceRecord, now time.Time) ([]AttendanceRecord, []uuid.UUID) {
	live := make([]AttendanceRecord, 0, len(records))
	var expired []uuid.UUID

	for _, r := range records {
		if r.Status(now) == AttendanceExpired {
			expired = append(expired, r.ID)
			continue
		}
		live = append(live, r)
	}

	return live, expired
}
