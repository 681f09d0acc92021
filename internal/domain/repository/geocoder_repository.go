package repository

import (
	"context"

	"github.com/skatespot-service/internal/domain"
)

// GeocoderRepository определяет методы обратного геокодирования
type GeocoderRepository interface {
	// ReverseGeocode возвращает адрес по координатам одним запросом к провайдеру
	ReverseGeocode(ctx context.Context, lat, lon float64) (*domain.AddressInfo, error)
}
