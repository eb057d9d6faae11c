package model

// FundStatus is the lifecycle state of a fund in the Funds table.
type FundStatus string

// Valid fund statuses. The Funds table enforces the same set with a CHECK
// constraint.
const (
	FundStatusActive   FundStatus = "Active"
	FundStatusInactive FundStatus = "Inactive"
)

// Fund represents one row of the Funds table: a short fund code and its
// status. The code doubles as the name of the fund's ledger table.
type Fund struct {
	Code   string     `json:"fund"`
	Status FundStatus `json:"status"`
}

// FundSnapshot is a point-in-time view of one fund used by the overview
// endpoint: the latest ledger row plus the cumulative return at that row.
// LatestClose and Percentage are nil for funds with an empty ledger.
type FundSnapshot struct {
	Fund       string     `json:"fund"`
	Status     FundStatus `json:"status"`
	LatestDate string     `json:"latestDate,omitempty"`
	Close      *float64   `json:"close"`
	Percentage *float64   `json:"percentage"`
}
