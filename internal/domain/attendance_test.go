package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAttendanceRecord_Status(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		record   AttendanceRecord
		expected AttendanceStatus
	}{
		{
			name: "started 10 minutes ago for an hour is active",
			record: AttendanceRecord{
				StartTime:       now.Add(-10 * time.Minute),
				DurationMinutes: 60,
			},
			expected: AttendanceActive,
		},
		{
			name: "starts in 10 minutes is scheduled",
			record: AttendanceRecord{
				StartTime:       now.Add(10 * time.Minute),
				DurationMinutes: 60,
			},
			expected: AttendanceScheduled,
		},
		{
			name: "started two hours ago for an hour is expired",
			record: AttendanceRecord{
				StartTime:       now.Add(-2 * time.Hour),
				DurationMinutes: 60,
			},
			expected: AttendanceExpired,
		},
		{
			name: "starting exactly now is active",
			record: AttendanceRecord{
				StartTime:       now,
				DurationMinutes: 30,
			},
			expected: AttendanceActive,
		},
		{
			name: "sub-minute duration is treated as 30 seconds",
			record: AttendanceRecord{
				StartTime:       now.Add(-20 * time.Second),
				DurationMinutes: 0.1,
			},
			expected: AttendanceActive,
		},
		{
			name: "sub-minute duration expires after 30 seconds",
			record: AttendanceRecord{
				StartTime:       now.Add(-45 * time.Second),
				DurationMinutes: 0.1,
			},
			expected: AttendanceExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.Status(now))
		})
	}
}

func TestSummarize(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("empty input", func(t *testing.T) {
		s := Summarize(nil, now)
		assert.Equal(t, AttendanceSummary{Active: 0, Scheduled: 0, Total: 0, IsEmpty: true}, s)
	})

	t.Run("mixed statuses", func(t *testing.T) {
		records := []AttendanceRecord{
			{StartTime: now.Add(-10 * time.Minute), DurationMinutes: 60}, // active
			{StartTime: now.Add(-5 * time.Minute), DurationMinutes: 30},  // active
			{StartTime: now.Add(10 * time.Minute), DurationMinutes: 60},  // scheduled
			{StartTime: now.Add(-2 * time.Hour), DurationMinutes: 60},    // expired
		}

		s := Summarize(records, now)
		assert.Equal(t, 2, s.Active)
		assert.Equal(t, 1, s.Scheduled)
		assert.Equal(t, 3, s.Total)
		assert.False(t, s.IsEmpty)
	})

	t.Run("expired records alone yield empty summary", func(t *testing.T) {
		records := []AttendanceRecord{
			{StartTime: now.Add(-3 * time.Hour), DurationMinutes: 60},
		}

		s := Summarize(records, now)
		assert.True(t, s.IsEmpty)
		assert.Equal(t, 0, s.Total)
	})
}

func TestSplitExpired(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	expiredID := uuid.New()
	records := []AttendanceRecord{
		{ID: uuid.New(), StartTime: now.Add(-10 * time.Minute), DurationMinutes: 60},
		{ID: expiredID, StartTime: now.Add(-2 * time.Hour), DurationMinutes: 60},
		{ID: uuid.New(), StartTime: now.Add(30 * time.Minute), DurationMinutes: 60},
	}

	live, expired := SplitExpired(records, now)

	assert.Len(t, live, 2)
	assert.Equal(t, []uuid.UUID{expiredID}, expired)

	// Input slice is not mutated
	assert.Len(t, records, 3)
}
