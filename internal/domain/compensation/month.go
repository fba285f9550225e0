package compensation

import (
	"encoding/json"
	"fmt"
	"time"
)

// MonthLabel builds the human month label that keys compensation records,
// e.g. "January 2025".
func MonthLabel(month time.Month, year int) string {
	return fmt.Sprintf("%s %d", month.String(), year)
}

// ResolveMonthLabel normalizes the month a caller supplied. A string is used
// as-is; a number is the gateway clients' zero-based month index (0 = January)
// and is combined with year into a label.
func ResolveMonthLabel(month any, year int) (string, error) {
	switch m := month.(type) {
	case string:
		if m == "" {
			return "", ErrInvalidMonth
		}
		return m, nil
	case float64:
		return labelFromIndex(int(m), year)
	case int:
		return labelFromIndex(m, year)
	case json.Number:
		n, err := m.Int64()
		if err != nil {
			return "", ErrInvalidMonth
		}
		return labelFromIndex(int(n), year)
	default:
		return "", ErrInvalidMonth
	}
}

func labelFromIndex(index, year int) (string, error) {
	if index < 0 || index > 11 {
		return "", ErrInvalidMonth
	}
	return MonthLabel(time.Month(index+1), year), nil
}
