package attendance

import (
	"regexp"
	"strconv"
	"strings"
)

// Accepts "9h 30m" or "9h". The UI has historically sent arbitrary strings
// here, so anything else degrades to zero minutes rather than failing the
// write; an unknown duration must never produce overtime pay.
var workHoursRegex = regexp.MustCompile(`^(\d+)h(?:\s+(\d+)m)?$`)

// ParseWorkHours converts a "Xh Ym" display string into total minutes.
// The second return reports whether the string was parseable.
func ParseWorkHours(s string) (int, bool) {
	m := workHoursRegex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}

	minutes := 0
	if m[2] != "" {
		minutes, err = strconv.Atoi(m[2])
		if err != nil {
			return 0, false
		}
	}

	return hours*60 + minutes, true
}
