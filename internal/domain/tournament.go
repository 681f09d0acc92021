package domain

import (
	"time"

	"github.com/google/uuid"
)

// TournamentFrequency - периодичность автоматических турниров
type TournamentFrequency string

const (
	FrequencyDaily   TournamentFrequency = "daily"
	FrequencyWeekly  TournamentFrequency = "weekly"
	FrequencyMonthly TournamentFrequency = "monthly"
)

// SubmissionStatus - статус заявки с трюком
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// TournamentType - шаблон автоматического турнира. Планировщик по нему
// создаёт по одному турниру на каждое окно периодичности.
type TournamentType struct {
	ID          uuid.UUID           `json:"id" db:"id"`
	Name        string              `json:"name" db:"name"`
	Description string              `json:"description" db:"description"`
	Frequency   TournamentFrequency `json:"frequency" db:"frequency"`
	IsActive    bool                `json:"is_active" db:"is_active"`
}

// Tournament - конкретный розыгрыш, привязанный к окну времени
type Tournament struct {
	ID        uuid.UUID `json:"id" db:"id"`
	TypeID    uuid.UUID `json:"type_id" db:"type_id"`
	Name      string    `json:"name" db:"name"`
	StartTime time.Time `json:"start_time" db:"start_time"`
	EndTime   time.Time `json:"end_time" db:"end_time"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// IsOpen сообщает, принимает ли турнир заявки в данный момент
func (t Tournament) IsOpen(now time.Time) bool {
	return !now.Before(t.StartTime) && !now.After(t.EndTime)
}

// TrickSubmission - заявка участника с видео трюка
type TrickSubmission struct {
	ID           uuid.UUID        `json:"id" db:"id"`
	TournamentID uuid.UUID        `json:"tournament_id" db:"tournament_id"`
	UserID       uuid.UUID        `json:"user_id" db:"user_id"`
	Username     string           `json:"username" db:"username"`
	TrickName    string           `json:"trick_name" db:"trick_name"`
	VideoURL     string           `json:"video_url" db:"video_url"`
	Status       SubmissionStatus `json:"status" db:"status"`
	Score        int              `json:"score" db:"score"`
	CreatedAt    time.Time        `json:"created_at" db:"created_at"`
}

// LeaderboardEntry - строка таблицы лидеров турнира
type LeaderboardEntry struct {
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	Username   string    `json:"username" db:"username"`
	TotalScore int       `json:"total_score" db:"total_score"`
	Tricks     int       `json:"tricks" db:"tricks"`
}

// FrequencyWindow возвращает границы текущего окна для периодичности.
// Окна детерминированы: любой момент внутри окна даёт одни и те же границы,
// поэтому планировщик идемпотентен. Неделя начинается с воскресенья.
func FrequencyWindow(freq TournamentFrequency, now time.Time) (time.Time, time.Time) {
	y, m, d := now.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	switch freq {
	case FrequencyDaily:
		return dayStart, dayStart.AddDate(0, 0, 1).Add(-time.Second)
	case FrequencyWeekly:
		weekStart := dayStart.AddDate(0, 0, -int(now.Weekday()))
		return weekStart, weekStart.AddDate(0, 0, 7).Add(-time.Second)
	case FrequencyMonthly:
		monthStart := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
		return monthStart, monthStart.AddDate(0, 1, 0).Add(-time.Second)
	default:
		return dayStart, dayStart.AddDate(0, 0, 1).Add(-time.Second)
	}
}

// Leaderboard агрегирует одобренные заявки в таблицу лидеров,
// отсортированную по сумме очков по убыванию
func Leaderboard(submissions []TrickSubmission) []LeaderboardEntry {
	totals := make(map[uuid.UUID]*LeaderboardEntry)
	order := make([]uuid.UUID, 0)

	for _, s := range submissions {
		if s.Status != SubmissionApproved {
			continue
		}
		entry, ok := totals[s.UserID]
		if !ok {
			entry = &LeaderboardEntry{UserID: s.UserID, Username: s.Username}
			totals[s.UserID] = entry
			order = append(order, s.UserID)
		}
		entry.TotalScore += s.Score
		entry.Tricks++
	}

	result := make([]LeaderboardEntry, 0, len(order))
	for _, id := range order {
		result = append(result, *totals[id])
	}

	// Стабильная сортировка: при равных очках сохраняется порядок заявок
	for i := 1; i < len(result); i++ {
		for j := i; j > 0 && result[j].TotalScore > result[j-1].TotalScore; j-- {
			result[j], result[j-1] = result[j-1], result[j]
		}
	}

	return result
}
