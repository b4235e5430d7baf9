package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidDuration  = errors.New("invalid ISO 8601 duration")
	ErrInvalidTimestamp = errors.New("invalid mm:ss timestamp")
)

// youtube reports lengths like PT1H2M3S, P1DT2H for very long streams and
// P0D for live broadcasts.
var isoDurationRE = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

func ParseISODuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	m := isoDurationRE.FindStringSubmatch(s)
	if m == nil || s == "P" || strings.HasSuffix(s, "T") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}

	units := []time.Duration{24 * time.Hour, time.Hour, time.Minute, time.Second}
	var d time.Duration
	for i, unit := range units {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
		}
		d += time.Duration(n) * unit
	}

	return d, nil
}

// FormatDuration renders d as H:MM:SS, or M:SS when shorter than an hour.
func FormatDuration(d time.Duration) string {
	total := int(d / time.Second)
	hours, minutes, seconds := total/3600, total%3600/60, total%60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// ParseTimestamp parses a timeline timestamp. Minutes are not capped at 59.
func ParseTimestamp(s string) (time.Duration, error) {
	mins, secs, ok := strings.Cut(s, ":")
	if !ok || !isDigits(mins) || !isDigits(secs) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
	}
	m, err := strconv.Atoi(mins)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
	}
	sec, err := strconv.Atoi(secs)
	if err != nil || sec > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
	}

	return time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
}

func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
