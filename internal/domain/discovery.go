package domain

import (
	"sort"
	"strings"

	"github.com/skatespot-service/internal/pkg/utils"
)

// Фильтры по посещаемости
const (
	StatusFilterAll       = "all"
	StatusFilterActive    = "active"
	StatusFilterScheduled = "scheduled"
	StatusFilterPopular   = "popular"
	StatusFilterEmpty     = "empty"
)

// PopularAttendanceThreshold - минимум заявок для статуса "popular"
const PopularAttendanceThreshold = 3

// Viewer - контекст смотрящего: геолокация (если известна) и признак админа.
// Неодобренные споты видят только админы.
type Viewer struct {
	Location *Point
	IsAdmin  bool
}

// DiscoveryQuery - иммутабельное состояние поисковой выдачи. Любое изменение
// фильтра идёт через With*-методы, каждый из которых сбрасывает страницу на 1.
type DiscoveryQuery struct {
	Search       string  `json:"search"`
	Category     string  `json:"category"`
	City         string  `json:"city"`
	Status       string  `json:"status"`
	RadiusMeters float64 `json:"radius_meters"` // 0 = без ограничения
	Page         int     `json:"page"`
	PageSize     int     `json:"page_size"`
}

// NewDiscoveryQuery создает запрос без фильтров на первой странице
func NewDiscoveryQuery(pageSize int) DiscoveryQuery {
	return DiscoveryQuery{
		Category: CategoryAll,
		City:     "all",
		Status:   StatusFilterAll,
		Page:     1,
		PageSize: pageSize,
	}
}

func (q DiscoveryQuery) WithSearch(search string) DiscoveryQuery {
	q.Search = search
	q.Page = 1
	return q
}

func (q DiscoveryQuery) WithCategory(category string) DiscoveryQuery {
	q.Category = category
	q.Page = 1
	return q
}

func (q DiscoveryQuery) WithCity(city string) DiscoveryQuery {
	q.City = city
	q.Page = 1
	return q
}

func (q DiscoveryQuery) WithStatus(status string) DiscoveryQuery {
	q.Status = status
	q.Page = 1
	return q
}

func (q DiscoveryQuery) WithRadius(radiusMeters float64) DiscoveryQuery {
	q.RadiusMeters = radiusMeters
	q.Page = 1
	return q
}

func (q DiscoveryQuery) WithPage(page int) DiscoveryQuery {
	if page < 1 {
		page = 1
	}
	q.Page = page
	return q
}

// DiscoveryEntry - спот, обогащённый городом и сводкой посещаемости
type DiscoveryEntry struct {
	Spot           Spot              `json:"spot"`
	City           string            `json:"city"`
	Summary        AttendanceSummary `json:"summary"`
	DistanceMeters *float64          `json:"distance_meters,omitempty"`
}

// DiscoveryResult - отфильтрованная, отсортированная и постраничная выдача
type DiscoveryResult struct {
	Entries    []DiscoveryEntry `json:"entries"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
}

// Discover применяет предикаты запроса к обогащённым спотам, сортирует по
// удалённости от зрителя (стабильно) и нарезает страницу. Чистая функция:
// вход не мутируется, повторный вызов с теми же аргументами даёт тот же результат.
//
// Порядок предикатов: одобренность -> текст -> категория -> город ->
// посещаемость -> радиус. Все предикаты соединены через AND.
func Discover(entries []DiscoveryEntry, q DiscoveryQuery, viewer Viewer) DiscoveryResult {
	search := strings.ToLower(q.Search)

	filtered := make([]DiscoveryEntry, 0, len(entries))
	for _, e := range entries {
		if !viewer.IsAdmin && !e.Spot.IsApproved {
			continue
		}

		if search != "" &&
			!strings.Contains(strings.ToLower(e.Spot.Title), search) &&
			!strings.Contains(strings.ToLower(string(e.Spot.Category)), search) {
			continue
		}

		if q.Category != "" && q.Category != CategoryAll && string(e.Spot.Category) != q.Category {
			continue
		}

		if q.City != "" && q.City != "all" && e.City != q.City {
			continue
		}

		if !matchesStatus(e.Summary, q.Status) {
			continue
		}

		if viewer.Location != nil {
			d := utils.DistanceMeters(
				viewer.Location.Lat, viewer.Location.Lon,
				e.Spot.Latitude, e.Spot.Longitude,
			)
			e.DistanceMeters = &d
		}

		if q.RadiusMeters > 0 && viewer.Location != nil && *e.DistanceMeters > q.RadiusMeters {
			continue
		}

		filtered = append(filtered, e)
	}

	// Сортировка по удалённости только при известной геолокации;
	// иначе сохраняем порядок выборки (обычно newest-first)
	if viewer.Location != nil {
		sort.SliceStable(filtered, func(i, j int) bool {
			return *filtered[i].DistanceMeters < *filtered[j].DistanceMeters
		})
	}

	total := len(filtered)
	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}

	totalPages := (total + pageSize - 1) / pageSize

	page := q.Page
	if page < 1 {
		page = 1
	}
	// Clamp вниз: страница за пределами выдачи схлопывается на последнюю валидную
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	if total == 0 {
		page = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return DiscoveryResult{
		Entries:    filtered[start:end],
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}
}

func matchesStatus(s AttendanceSummary, filter string) bool {
	switch filter {
	case "", StatusFilterAll:
		return true
	case StatusFilterActive:
		return s.Active > 0
	case StatusFilterScheduled:
		return s.Scheduled > 0
	case StatusFilterPopular:
		return s.Total >= PopularAttendanceThreshold
	case StatusFilterEmpty:
		return s.IsEmpty
	default:
		return true
	}
}
