package model

import "time"

// LedgerEntry is one dated record in a fund's ledger table: a contribution
// (Credit) and the account's closing value (Close) on that date.
type LedgerEntry struct {
	Date   time.Time
	Credit float64
	Close  float64
}

// PositionRecord is a LedgerEntry extended with the derived performance
// columns. It is computed on every request and never persisted.
//
// DollarDelta, PercDelta and Percentage are pointers because they are
// undefined on some rows: DollarDelta and PercDelta have no value on the
// first row (no prior close to difference against), and Percentage has no
// value while CumCredit is zero. Undefined values encode as JSON null.
type PositionRecord struct {
	Date        time.Time `json:"date"`
	Credit      float64   `json:"credit"`
	Close       float64   `json:"close"`
	CumCredit   float64   `json:"cumCredit"`
	DollarDelta *float64  `json:"dollarDelta"`
	PercDelta   *float64  `json:"percDelta"`
	Percentage  *float64  `json:"percentage"`
}
