package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters(t *testing.T) {
	t.Run("distance to itself is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, DistanceMeters(56.95, 24.10, 56.95, 24.10))
	})

	t.Run("one degree of longitude at the equator", func(t *testing.T) {
		// Known fixture: (0,0) -> (0,1) is ~111195 m on a 6371 km sphere
		d := DistanceMeters(0, 0, 0, 1)
		assert.InDelta(t, 111195, d, 50)
	})

	t.Run("symmetric", func(t *testing.T) {
		d1 := DistanceMeters(56.95, 24.10, 54.68, 25.27)
		d2 := DistanceMeters(54.68, 25.27, 56.95, 24.10)
		assert.InDelta(t, d1, d2, 1e-6)
	})

	t.Run("always non-negative for valid inputs", func(t *testing.T) {
		points := [][4]float64{
			{90, 180, -90, -180},
			{0, 0, 0, 0},
			{56.9496, 24.1052, 56.9497, 24.1053},
		}
		for _, p := range points {
			d := DistanceMeters(p[0], p[1], p[2], p[3])
			assert.False(t, math.IsNaN(d))
			assert.GreaterOrEqual(t, d, 0.0)
		}
	})

	t.Run("neighbouring spots are within placement threshold", func(t *testing.T) {
		// ~22 m apart, closer than the 50 m separation rule
		d := DistanceMeters(56.95000, 24.10000, 56.95020, 24.10000)
		assert.Less(t, d, 50.0)
	})
}

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		expected bool
	}{
		{"valid riga", 56.95, 24.10, true},
		{"boundary values", 90, 180, true},
		{"lat too big", 90.1, 0, false},
		{"lon too small", 0, -180.5, false},
		{"NaN lat", math.NaN(), 0, false},
		{"infinite lon", 0, math.Inf(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateCoordinates(tt.lat, tt.lon))
		})
	}
}

func TestValidateRadius(t *testing.T) {
	assert.True(t, ValidateRadius(500))
	assert.True(t, ValidateRadius(10000))
	assert.False(t, ValidateRadius(10))
	assert.False(t, ValidateRadius(200000))
}
