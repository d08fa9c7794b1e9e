package domain

// PaidJobRow is one paid job inside a reporting window, reduced to the
// columns the aggregates need.
type PaidJobRow struct {
	PriceCents   int64
	ContractorID int64
	ClientID     int64
}

// BestClient is one entry of the best-clients ranking, ordered by amount
// paid descending.
type BestClient struct {
	ID        int64  `json:"id"`
	FullName  string `json:"fullName"`
	PaidCents int64  `json:"paid"`
}
