package nominatim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/skatespot-service/internal/config"
	"github.com/skatespot-service/internal/domain"
	"github.com/skatespot-service/internal/domain/repository"
)

// ErrRateLimited возвращается при HTTP 429 от провайдера
var ErrRateLimited = errors.New("geocoder rate limited")

// reverseResponse - ответ Nominatim /reverse в формате json
type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
	} `json:"address"`
}

type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// NewClient создает клиент обратного геокодирования Nominatim.
// Публичный Nominatim требует не более одного запроса в секунду и
// обязательный User-Agent, поэтому клиент несёт собственный rate limiter.
func NewClient(cfg *config.GeocoderConfig, logger *zap.Logger) repository.GeocoderRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		limiter:   rate.NewLimiter(rate.Limit(1), 1),
		logger:    logger,
	}
}

// ReverseGeocode возвращает адрес по координатам одним запросом к провайдеру
func (c *client) ReverseGeocode(ctx context.Context, lat, lon float64) (*domain.AddressInfo, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	reqURL := fmt.Sprintf("%s/reverse?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create geocode request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Geocode request failed",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		c.logger.Warn("Geocoder rate limit hit",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon))
		return nil, ErrRateLimited
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Geocoder returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("geocoder error: status %d", resp.StatusCode)
	}

	var parsed reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.logger.Error("Failed to decode geocoder response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	info := &domain.AddressInfo{
		Address: parsed.DisplayName,
		City:    cityFromAddress(parsed),
	}

	c.logger.Debug("Reverse geocode successful",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
		zap.String("city", info.City))

	return info, nil
}

// cityFromAddress выбирает город по убыванию размера населённого пункта
func cityFromAddress(r reverseResponse) string {
	switch {
	case r.Address.City != "":
		return r.Address.City
	case r.Address.Town != "":
		return r.Address.Town
	case r.Address.Village != "":
		return r.Address.Village
	default:
		return domain.UnknownCity
	}
}
