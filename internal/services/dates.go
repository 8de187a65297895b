package services

import (
	"strings"
	"time"

	apperrors "tradelog/internal/errors"
)

// NormalizeTimestamp parses a client-supplied date. Strings without a time
// component ("2025-12-15") are widened to midnight UTC; full RFC 3339
// timestamps are kept and converted to UTC.
func NormalizeTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "T") {
		t, err := time.ParseInLocation(time.DateOnly, s, time.UTC)
		if err != nil {
			return time.Time{}, apperrors.Wrap(apperrors.ErrInvalidDate, err)
		}
		return t, nil
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, apperrors.Wrap(apperrors.ErrInvalidDate, err)
	}
	return t.UTC(), nil
}
