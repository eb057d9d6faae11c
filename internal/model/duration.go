package model

import (
	"fmt"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/apperrors"
)

// Duration is a relative time-window selector for a derived series. The set
// is closed: anything outside it is rejected with ErrUnknownDurationToken
// rather than silently passing through.
type Duration string

// The recognized duration tokens, in display order ("Total" first).
const (
	DurationTotal Duration = "Total"
	DurationYTD   Duration = "YTD"
	Duration1YR   Duration = "1YR"
	Duration3MO   Duration = "3MO"
	Duration1MO   Duration = "1MO"
	Duration1WK   Duration = "1WK"
)

// Durations returns all recognized duration tokens in display order.
func Durations() []Duration {
	return []Duration{
		DurationTotal,
		DurationYTD,
		Duration1YR,
		Duration3MO,
		Duration1MO,
		Duration1WK,
	}
}

// ParseDuration validates a raw token against the closed duration set.
// An empty token defaults to DurationTotal, matching the first-load state of
// the duration button group.
func ParseDuration(token string) (Duration, error) {
	if token == "" {
		return DurationTotal, nil
	}
	for _, d := range Durations() {
		if Duration(token) == d {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownDurationToken, token)
}
