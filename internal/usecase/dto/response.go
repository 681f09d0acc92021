package dto

import (
	"github.com/skatespot-service/internal/domain"
)

// SpotResponse - спот с адресом и сводкой посещаемости
type SpotResponse struct {
	Spot           domain.Spot              `json:"spot"`
	Address        string                   `json:"address"`
	City           string                   `json:"city"`
	Summary        domain.AttendanceSummary `json:"summary"`
	DistanceMeters *float64                 `json:"distance_meters,omitempty"`
}

// DiscoveryResponse - страница поисковой выдачи
type DiscoveryResponse struct {
	Spots      []SpotResponse `json:"spots"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
}

// AttendanceResponse - записи посещаемости спота со сводкой
type AttendanceResponse struct {
	Records []domain.AttendanceRecord `json:"records"`
	Summary domain.AttendanceSummary  `json:"summary"`
}

// LeaderboardResponse - таблица лидеров турнира
type LeaderboardResponse struct {
	Tournament domain.Tournament        `json:"tournament"`
	Entries    []domain.LeaderboardEntry `json:"entries"`
}
