package service

import (
	"math"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/model"
)

// RoundingPrecision is the multiplier used for two-decimal rounding of values
// leaving the service layer. The derivation engine itself never rounds.
const RoundingPrecision = 100.0

// round rounds a float64 value to two decimal places.
func round(value float64) float64 {
	return math.Round(value*RoundingPrecision) / RoundingPrecision
}

func roundPtr(value *float64) *float64 {
	if value == nil {
		return nil
	}
	r := round(*value)
	return &r
}

// RoundSeries returns a copy of a derived series with every value rounded to
// two decimal places for display. Undefined values stay undefined.
func RoundSeries(series []model.PositionRecord) []model.PositionRecord {
	rounded := make([]model.PositionRecord, len(series))
	for i, r := range series {
		r.Credit = round(r.Credit)
		r.Close = round(r.Close)
		r.CumCredit = round(r.CumCredit)
		r.DollarDelta = roundPtr(r.DollarDelta)
		r.PercDelta = roundPtr(r.PercDelta)
		r.Percentage = roundPtr(r.Percentage)
		rounded[i] = r
	}
	return rounded
}
