package report

import "fmt"

// Message renders the human-readable explanation for a validation result.
// Every number it needs is already in the result context.
func Message(status Status, context map[string]any) string {
	switch status {
	case StatusInsufficientTotal:
		return fmt.Sprintf(
			"You need at least %d expenses to generate a report. You currently have %d, so add a few more expenses first.",
			contextInt(context, "needed"), contextInt(context, "total_count"),
		)
	case StatusInsufficientRecent:
		return fmt.Sprintf(
			"Only %d of your expenses fall in the last %d days. Log at least %d recent expenses to get an up-to-date report.",
			contextInt(context, "recent_count"), contextInt(context, "window_days"), contextInt(context, "needed"),
		)
	case StatusInsufficientDays:
		return fmt.Sprintf(
			"Your expenses cover %d day(s) of activity. Spending spread across at least %d days is needed to spot trends.",
			contextInt(context, "active_days"), contextInt(context, "needed_days"),
		)
	case StatusSufficient:
		return "You have enough expense data to generate your weekly report."
	default:
		return "Unable to validate expense data."
	}
}

func contextInt(context map[string]any, key string) int64 {
	switch value := context[key].(type) {
	case int64:
		return value
	case int:
		return int64(value)
	default:
		return 0
	}
}
