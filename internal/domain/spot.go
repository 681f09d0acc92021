package domain

import (
	"time"

	"github.com/google/uuid"
)

// SpotCategory - тип спота
type SpotCategory string

const (
	CategorySkatepark SpotCategory = "skatepark"
	CategoryRail      SpotCategory = "rail"
	CategoryStairs    SpotCategory = "stairs"
	CategoryLedge     SpotCategory = "ledge"
	CategoryFlatbar   SpotCategory = "flatbar"
	CategoryPark      SpotCategory = "park"
	CategoryBox       SpotCategory = "box"

	// CategoryAll - сентинел для фильтров, не хранится в БД
	CategoryAll = "all"
)

var spotCategories = map[SpotCategory]struct{}{
	CategorySkatepark: {},
	CategoryRail:      {},
	CategoryStairs:    {},
	CategoryLedge:     {},
	CategoryFlatbar:   {},
	CategoryPark:      {},
	CategoryBox:       {},
}

// IsValidCategory проверяет, что категория известна сервису
func IsValidCategory(c string) bool {
	_, ok := spotCategories[SpotCategory(c)]
	return ok
}

// SpotCategories возвращает список всех категорий
func SpotCategories() []SpotCategory {
	return []SpotCategory{
		CategorySkatepark, CategoryRail, CategoryStairs, CategoryLedge,
		CategoryFlatbar, CategoryPark, CategoryBox,
	}
}

// Spot - точка для катания, добавленная пользователем
type Spot struct {
	ID         uuid.UUID    `json:"id" db:"id"`
	UserID     uuid.UUID    `json:"user_id" db:"user_id"`
	Title      string       `json:"title" db:"title"`
	Category   SpotCategory `json:"category" db:"category"`
	Latitude   float64      `json:"latitude" db:"latitude"`
	Longitude  float64      `json:"longitude" db:"longitude"`
	ImageURL   *string      `json:"image_url,omitempty" db:"image_url"`
	IsApproved bool         `json:"is_approved" db:"is_approved"`
	CreatedAt  time.Time    `json:"created_at" db:"created_at"`
}
