package service

import (
	"fmt"
	"time"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/apperrors"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/model"
)

// durationCutoff maps a duration token to its cutoff date, computed relative
// to the latest date of the unfiltered series. The mapping is total over the
// closed token set; DurationTotal has no cutoff (second return false).
func durationCutoff(token model.Duration, latest time.Time) (time.Time, bool, error) {
	switch token {
	case model.DurationTotal:
		return time.Time{}, false, nil
	case model.DurationYTD:
		return time.Date(latest.Year(), time.January, 1, 0, 0, 0, 0, latest.Location()), true, nil
	case model.Duration1YR:
		return monthsBack(latest, 12), true, nil
	case model.Duration3MO:
		return monthsBack(latest, 3), true, nil
	case model.Duration1MO:
		return monthsBack(latest, 1), true, nil
	case model.Duration1WK:
		return latest.AddDate(0, 0, -7), true, nil
	default:
		return time.Time{}, false, fmt.Errorf("%w: %q", apperrors.ErrUnknownDurationToken, token)
	}
}

// monthsBack steps a date back n calendar months, clamping to the last day of
// the target month when the source day does not exist there: one month before
// March 31 is February 28 (or 29), not a normalized March date. AddDate would
// normalize the overflow and push the cutoff forward, silently dropping rows
// near the window boundary.
func monthsBack(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month-time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if lastDay := first.AddDate(0, 1, -1).Day(); day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

// FilterByDuration returns the subset of a derived series on or after the
// token's cutoff date. The cutoff is computed from the unfiltered series'
// latest date, so filtering is stable regardless of prior filtering.
//
// DurationTotal is the identity filter. An empty series filters to an empty
// series without error. Unknown tokens fail with ErrUnknownDurationToken;
// there is no silent fall-through.
func FilterByDuration(series []model.PositionRecord, token model.Duration) ([]model.PositionRecord, error) {
	if len(series) == 0 {
		// Still reject unknown tokens on empty input.
		if _, _, err := durationCutoff(token, time.Time{}); err != nil {
			return nil, err
		}
		return []model.PositionRecord{}, nil
	}

	latest := series[0].Date
	for _, r := range series[1:] {
		if r.Date.After(latest) {
			latest = r.Date
		}
	}

	cutoff, bounded, err := durationCutoff(token, latest)
	if err != nil {
		return nil, err
	}
	if !bounded {
		return series, nil
	}

	filtered := []model.PositionRecord{}
	for _, r := range series {
		if !r.Date.Before(cutoff) {
			filtered = append(filtered, r)
		}
	}

	return filtered, nil
}
