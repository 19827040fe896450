package report

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// Status classifies whether a user's expense history can back a weekly report.
type Status string

const (
	StatusSufficient         Status = "sufficient"
	StatusInsufficientTotal  Status = "insufficient_total"
	StatusInsufficientRecent Status = "insufficient_recent"
	StatusInsufficientDays   Status = "insufficient_days"
)

// Sufficiency thresholds: lifetime volume, activity inside the report window,
// and spread across distinct calendar days.
const (
	MinTotalExpenses  = 5
	MinRecentExpenses = 3
	MinActiveDays     = 3
)

// DefaultWindowDays is used when the requested window cannot be parsed.
const DefaultWindowDays = 7

// Stats is the read-only data access the validator needs. Implementations run
// aggregate queries scoped to a single user and never write.
type Stats interface {
	TotalExpenses(ctx context.Context, userID int64) (int64, error)
	ExpensesSince(ctx context.Context, userID int64, since time.Time) (int64, error)
	ActiveDays(ctx context.Context, userID int64) (int64, error)
	Categories(ctx context.Context, userID int64) (int64, error)
	Jobs(ctx context.Context, userID int64) (int64, error)
}

// Result carries the decision plus the numbers behind it, so messages and API
// responses can be rendered without further queries.
type Result struct {
	Status  Status         `json:"status"`
	Context map[string]any `json:"context"`
}

func (r Result) Valid() bool {
	return r.Status == StatusSufficient
}

// Validate decides whether userID has enough expense history for a report
// covering the last windowDays days. The three thresholds are checked in a
// fixed order: lifetime total first, then recent activity, then day spread.
// A user with almost no data gets the total-volume message rather than a more
// specific but less actionable one.
func Validate(ctx context.Context, stats Stats, userID int64, windowDays int) (Result, error) {
	total, err := stats.TotalExpenses(ctx, userID)
	if err != nil {
		return Result{}, err
	}

	if total < MinTotalExpenses {
		return Result{
			Status: StatusInsufficientTotal,
			Context: map[string]any{
				"total_count": total,
				"needed":      int64(MinTotalExpenses),
				"window_days": int64(windowDays),
			},
		}, nil
	}

	// A zero or negative window yields an empty range and a recent count of
	// zero, which flows into the recency denial without special casing.
	since := time.Now().AddDate(0, 0, -windowDays)
	recent, err := stats.ExpensesSince(ctx, userID, since)
	if err != nil {
		return Result{}, err
	}

	if recent < MinRecentExpenses {
		return Result{
			Status: StatusInsufficientRecent,
			Context: map[string]any{
				"recent_count": recent,
				"needed":       int64(MinRecentExpenses),
				"window_days":  int64(windowDays),
				"total_count":  total,
			},
		}, nil
	}

	activeDays, err := stats.ActiveDays(ctx, userID)
	if err != nil {
		return Result{}, err
	}

	if activeDays < MinActiveDays {
		return Result{
			Status: StatusInsufficientDays,
			Context: map[string]any{
				"active_days": activeDays,
				"needed_days": int64(MinActiveDays),
				"window_days": int64(windowDays),
			},
		}, nil
	}

	categories, err := stats.Categories(ctx, userID)
	if err != nil {
		return Result{}, err
	}

	jobs, err := stats.Jobs(ctx, userID)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Status: StatusSufficient,
		Context: map[string]any{
			"total_count":    total,
			"recent_count":   recent,
			"active_days":    activeDays,
			"window_days":    int64(windowDays),
			"category_count": categories,
			"job_count":      jobs,
		},
	}, nil
}

// ParseWindow parses a window string like "7d" into a day count. Anything
// without a numeric part and a "d" suffix falls back to DefaultWindowDays.
func ParseWindow(raw string) int {
	raw = strings.ToLower(strings.TrimSpace(raw))

	if !strings.HasSuffix(raw, "d") {
		return DefaultWindowDays
	}

	days, err := strconv.Atoi(strings.TrimSuffix(raw, "d"))
	if err != nil {
		return DefaultWindowDays
	}

	return days
}
