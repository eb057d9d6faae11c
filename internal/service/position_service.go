package service

import (
	"fmt"
	"time"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/apperrors"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/model"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/repository"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/store"
)

// PositionService orchestrates the ledger-to-performance pipeline for one
// fund: open store, load entries, derive, filter. Each call opens its own
// scoped connection and releases it before returning; nothing is shared
// across requests.
type PositionService struct{}

// NewPositionService creates a new PositionService.
func NewPositionService() *PositionService {
	return &PositionService{}
}

// ComputeSeries derives the full (unfiltered) position series for a fund in
// the store at storePath.
//
// Returns ErrFundNotFound if the fund has no ledger table. A fund with a
// table but zero rows yields an empty series and no error; callers
// distinguish that empty state from failure.
func (s *PositionService) ComputeSeries(storePath, fund string) ([]model.PositionRecord, error) {
	st, err := store.Open(storePath)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	return computeSeries(st, fund)
}

// WindowSummary describes the performance of one (fund, duration) slice:
// the window bounds and span, the closing value, and the value and percent
// earned within the window. All monetary and percentage values are rounded
// to two decimal places.
//
// EarnedValue is the final close minus the window's starting close and minus
// contributions made during the window (the first row's credit is treated as
// pre-existing capital, not window income). EarnedPercent re-bases the
// cumulative Percentage column to the window's first row; it is nil when
// either endpoint's Percentage is undefined.
type WindowSummary struct {
	Fund          string         `json:"fund"`
	Duration      model.Duration `json:"duration"`
	StartDate     string         `json:"startDate"`
	EndDate       string         `json:"endDate"`
	Years         int            `json:"years"`
	Months        int            `json:"months"`
	Days          int            `json:"days"`
	FinalValue    float64        `json:"finalValue"`
	EarnedValue   float64        `json:"earnedValue"`
	EarnedPercent *float64       `json:"earnedPercent"`
}

// Summarize computes the window summary for a fund over a duration window.
// Returns ErrEmptyResult when the fund's ledger is empty (a summary needs at
// least one row; series endpoints render the empty state instead).
func (s *PositionService) Summarize(storePath, fund string, token model.Duration) (WindowSummary, error) {
	st, err := store.Open(storePath)
	if err != nil {
		return WindowSummary{}, err
	}
	defer st.Close()

	series, err := computeSeries(st, fund)
	if err != nil {
		return WindowSummary{}, err
	}

	window, err := FilterByDuration(series, token)
	if err != nil {
		return WindowSummary{}, err
	}
	if len(window) == 0 {
		return WindowSummary{}, fmt.Errorf("%w: fund %s", apperrors.ErrEmptyResult, fund)
	}

	first := window[0]
	last := window[len(window)-1]

	contributions := 0.0
	for _, r := range window {
		contributions += r.Credit
	}
	// Capital present before the window opened is not income earned in it.
	if first.Credit > 0.0 {
		contributions -= first.Credit
	}
	earned := last.Close - first.Close - contributions

	var earnedPercent *float64
	if first.Percentage != nil && last.Percentage != nil {
		p := round(*last.Percentage - *first.Percentage)
		earnedPercent = &p
	}

	years, months, days := calendarSpan(first.Date, last.Date)

	return WindowSummary{
		Fund:          fund,
		Duration:      token,
		StartDate:     first.Date.Format("2006-01-02"),
		EndDate:       last.Date.Format("2006-01-02"),
		Years:         years,
		Months:        months,
		Days:          days,
		FinalValue:    round(last.Close),
		EarnedValue:   round(earned),
		EarnedPercent: earnedPercent,
	}, nil
}

// computeSeries loads and derives over an already-open store connection.
func computeSeries(st *store.Store, fund string) ([]model.PositionRecord, error) {
	fundRepo := repository.NewFundRepository(st)
	exists, err := fundRepo.HasLedgerTable(fund)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrFundNotFound, fund)
	}

	entries, err := repository.NewLedgerRepository(st).GetEntries(fund)
	if err != nil {
		return nil, err
	}

	return DeriveSeries(entries), nil
}

// calendarSpan returns the calendar difference between two dates as whole
// years, months and days, borrowing from the next-larger unit when needed.
func calendarSpan(from, to time.Time) (years, months, days int) {
	years = to.Year() - from.Year()
	months = int(to.Month()) - int(from.Month())
	days = to.Day() - from.Day()

	if days < 0 {
		// Days in the month preceding 'to'.
		prev := time.Date(to.Year(), to.Month(), 0, 0, 0, 0, 0, to.Location())
		days += prev.Day()
		months--
	}
	if months < 0 {
		months += 12
		years--
	}
	return years, months, days
}
