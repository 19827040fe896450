package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_NoRecordsIsInsufficientTotal(t *testing.T) {
	stats := &stubStats{}

	result, err := Validate(context.Background(), stats, 1, 7)
	require.NoError(t, err)

	assert.Equal(t, StatusInsufficientTotal, result.Status)
	assert.False(t, result.Valid())
	assert.Equal(t, int64(0), result.Context["total_count"])
	assert.Equal(t, int64(5), result.Context["needed"])
	assert.Zero(t, stats.sinceCalls, "no date-range query should run for an empty history")
}

func TestValidate_ExactThresholdsAreSufficient(t *testing.T) {
	stats := &stubStats{total: 5, recent: 3, activeDays: 3, categories: 2, jobs: 1}

	result, err := Validate(context.Background(), stats, 1, 7)
	require.NoError(t, err)

	assert.Equal(t, StatusSufficient, result.Status)
	assert.True(t, result.Valid())
	assert.Equal(t, int64(2), result.Context["category_count"])
	assert.Equal(t, int64(1), result.Context["job_count"])
}

func TestValidate_TotalPassesButRecencyFails(t *testing.T) {
	stats := &stubStats{total: 10, recent: 2, activeDays: 6}

	result, err := Validate(context.Background(), stats, 1, 7)
	require.NoError(t, err)

	assert.Equal(t, StatusInsufficientRecent, result.Status)
	assert.Equal(t, int64(2), result.Context["recent_count"])
	assert.Equal(t, int64(3), result.Context["needed"])
	assert.Equal(t, int64(10), result.Context["total_count"])
}

func TestValidate_SingleDayOfActivityFailsSpread(t *testing.T) {
	stats := &stubStats{total: 6, recent: 4, activeDays: 1}

	result, err := Validate(context.Background(), stats, 1, 7)
	require.NoError(t, err)

	assert.Equal(t, StatusInsufficientDays, result.Status)
	assert.Equal(t, int64(1), result.Context["active_days"])
	assert.Equal(t, int64(3), result.Context["needed_days"])
}

func TestValidate_TotalCheckedBeforeRecency(t *testing.T) {
	// Both thresholds fail; the total-volume denial wins.
	stats := &stubStats{total: 2, recent: 0}

	result, err := Validate(context.Background(), stats, 1, 7)
	require.NoError(t, err)

	assert.Equal(t, StatusInsufficientTotal, result.Status)
}

func TestValidate_WindowPassedToRecencyQuery(t *testing.T) {
	stats := &stubStats{total: 10, recent: 5, activeDays: 5}

	_, err := Validate(context.Background(), stats, 1, 14)
	require.NoError(t, err)

	expected := time.Now().AddDate(0, 0, -14)
	assert.WithinDuration(t, expected, stats.lastSince, 5*time.Second)
}

func TestValidate_IsIdempotentOverStableData(t *testing.T) {
	stats := &stubStats{total: 10, recent: 2, activeDays: 6}
	ctx := context.Background()

	first, err := Validate(ctx, stats, 1, 7)
	require.NoError(t, err)
	second, err := Validate(ctx, stats, 1, 7)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestValidate_PropagatesStatsErrors(t *testing.T) {
	queryErr := errors.New("query failed")
	stats := &stubStats{totalErr: queryErr}

	_, err := Validate(context.Background(), stats, 1, 7)

	assert.ErrorIs(t, err, queryErr)
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"7d", 7},
		{"14d", 14},
		{" 30D ", 30},
		{"0d", 0},
		{"-3d", -3},
		{"", 7},
		{"7", 7},
		{"d", 7},
		{"weekly", 7},
		{"sevend", 7},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseWindow(tt.raw), "raw %q", tt.raw)
	}
}

func TestMessage_SubstitutesContextValues(t *testing.T) {
	message := Message(StatusInsufficientTotal, map[string]any{
		"total_count": int64(2),
		"needed":      int64(5),
	})
	assert.Contains(t, message, "at least 5")
	assert.Contains(t, message, "currently have 2")

	message = Message(StatusInsufficientRecent, map[string]any{
		"recent_count": int64(2),
		"needed":       int64(3),
		"window_days":  int64(7),
	})
	assert.Contains(t, message, "2 of your expenses")
	assert.Contains(t, message, "last 7 days")

	message = Message(StatusInsufficientDays, map[string]any{
		"active_days": int64(1),
		"needed_days": int64(3),
	})
	assert.Contains(t, message, "1 day(s)")
	assert.Contains(t, message, "at least 3 days")

	assert.NotEmpty(t, Message(StatusSufficient, nil))
}

type stubStats struct {
	total      int64
	recent     int64
	activeDays int64
	categories int64
	jobs       int64

	totalErr error

	sinceCalls int
	lastSince  time.Time
}

func (s *stubStats) TotalExpenses(_ context.Context, _ int64) (int64, error) {
	return s.total, s.totalErr
}

func (s *stubStats) ExpensesSince(_ context.Context, _ int64, since time.Time) (int64, error) {
	s.sinceCalls++
	s.lastSince = since
	return s.recent, nil
}

func (s *stubStats) ActiveDays(_ context.Context, _ int64) (int64, error) {
	return s.activeDays, nil
}

func (s *stubStats) Categories(_ context.Context, _ int64) (int64, error) {
	return s.categories, nil
}

func (s *stubStats) Jobs(_ context.Context, _ int64) (int64, error) {
	return s.jobs, nil
}
