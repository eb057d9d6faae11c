package service

import (
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/model"
)

// DeriveSeries turns a fund's raw ledger entries into derived position
// records. This is the core calculation engine: every column is recomputed
// from scratch on each call and nothing is persisted.
//
// For row index i (0-based):
//   - CumCredit[i] is the running sum of Credit through row i.
//   - DollarDelta[i] = Close[i] - (Close[i-1] + Credit[i]), the change in
//     value not explained by a new contribution. Undefined at i = 0.
//   - PercDelta[i] = DollarDelta[i] / Close[i] * 100. Undefined where
//     DollarDelta is.
//   - Percentage[i] = (Close[i] / CumCredit[i] - 1) * 100, the cumulative
//     return over contributed capital. Undefined while CumCredit is zero;
//     an explicit nil, never a NaN or a panic, so downstream filtering and
//     display decide how to render it.
//
// Entries must already be in ascending date order; the engine does not
// reorder. Values are not rounded here: the display boundary rounds, the
// engine preserves precision for chained computation. Zero entries in,
// zero records out: an empty ledger is an empty result, not an error.
func DeriveSeries(entries []model.LedgerEntry) []model.PositionRecord {
	records := make([]model.PositionRecord, 0, len(entries))

	var cumCredit float64
	for i, entry := range entries {
		cumCredit += entry.Credit

		record := model.PositionRecord{
			Date:      entry.Date,
			Credit:    entry.Credit,
			Close:     entry.Close,
			CumCredit: cumCredit,
		}

		if i > 0 {
			delta := entry.Close - (entries[i-1].Close + entry.Credit)
			record.DollarDelta = &delta
			if entry.Close != 0 {
				percDelta := delta / entry.Close * 100.0
				record.PercDelta = &percDelta
			}
		}

		if cumCredit != 0 {
			percentage := (entry.Close/cumCredit - 1.0) * 100.0
			record.Percentage = &percentage
		}

		records = append(records, record)
	}

	return records
}
