package availability

import (
	"strconv"
	"strings"
)

// ClockMinutes converts a 24-hour wall-clock time string ("HH:MM" or
// "HH:MM:SS") to minutes since local midnight. Seconds are ignored.
//
// The second result is false when the input is empty or unparsable. An
// unknown time must never be treated as an error downstream: the conflict
// policy reads it as "cannot prove overlap". No timezone handling.
func ClockMinutes(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, false
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}

	return hours*60 + minutes, true
}
