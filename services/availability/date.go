package availability

import (
	"fmt"
	"strconv"
	"strings"
)

// monthAbbrevs is the fixed month vocabulary of the booking wire format.
// The remote side expects exactly these tokens, so conversion never goes
// through a locale-dependent formatter.
var monthAbbrevs = [12]string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

// ToISODate converts a wire date ("DD-MON-YYYY", e.g. "05-JAN-2025") to an
// ISO calendar key ("YYYY-MM-DD"). The second result is false for malformed
// input; callers skip the record rather than fail, since one bad historical
// booking must not sink the whole availability computation.
func ToISODate(s string) (string, bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return "", false
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil || day < 1 || day > 31 {
		return "", false
	}

	month := 0
	upper := strings.ToUpper(parts[1])
	for i, abbrev := range monthAbbrevs {
		if upper == abbrev {
			month = i + 1
			break
		}
	}
	if month == 0 {
		return "", false
	}

	year, err := strconv.Atoi(parts[2])
	if err != nil || year < 1 {
		return "", false
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

// FromISODate converts an ISO calendar key back to the wire format for
// outgoing requests. The day is zero-padded and the month mapped through
// the fixed table.
func FromISODate(s string) (string, bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return "", false
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1 {
		return "", false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return "", false
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > 31 {
		return "", false
	}

	return fmt.Sprintf("%02d-%s-%04d", day, monthAbbrevs[month-1], year), true
}
