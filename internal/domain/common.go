package domain

import "time"

type Point struct {
	Lat float64 `json:"lat" db:"lat"`
	Lon float64 `json:"lon" db:"lon"`
}

// Statistics представляет общую статистику по данным сервиса
type Statistics struct {
	Spots       SpotStats       `json:"spots"`
	Attendance  AttendanceStats `json:"attendance"`
	Market      MarketStats     `json:"market"`
	Tournaments TournamentStats `json:"tournaments"`
	LastUpdated time.Time       `json:"last_updated"`
}

// SpotStats статистика по спотам
type SpotStats struct {
	Total      int            `json:"total"`
	Approved   int            `json:"approved"`
	Pending    int            `json:"pending"`
	ByCategory map[string]int `json:"by_category"`
}

// AttendanceStats статистика по посещениям
type AttendanceStats struct {
	Active    int `json:"active"`
	Scheduled int `json:"scheduled"`
}

// MarketStats статистика по маркетплейсу
type MarketStats struct {
	TotalItems int `json:"total_items"`
	SoldItems  int `json:"sold_items"`
}

// TournamentStats статистика по турнирам
type TournamentStats struct {
	Active int `json:"active"`
	Total  int `json:"total"`
}
