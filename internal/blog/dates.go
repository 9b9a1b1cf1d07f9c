package blog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate turns a metadata date into a timestamp. It accepts RFC 3339 (a
// trailing Z is read as +00:00), ISO dates and date-times without a zone
// (read as UTC), Unix seconds of up to ten digits, and finally anything
// araddon/dateparse understands, again in UTC.
func ParseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, ErrDateEmpty
	}

	if len(trimmed) <= 10 && isDigits(trimmed) {
		seconds, err := strconv.ParseInt(trimmed, 10, 64)
		if err == nil {
			return time.Unix(seconds, 0).UTC(), nil
		}
	}

	normalized := trimmed
	if last := normalized[len(normalized)-1]; last == 'Z' || last == 'z' {
		normalized = normalized[:len(normalized)-1] + "+00:00"
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, normalized); err == nil {
			return ts, nil
		}
	}

	ts, err := dateparse.ParseIn(trimmed, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDateInvalid, value)
	}
	return ts, nil
}

func isDigits(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return value != ""
}
