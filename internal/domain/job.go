package domain

import "time"

// Job belongs to exactly one contract. Paid is terminal: once true the
// price and the flag never change again, and PaymentDate records the
// moment of the transition.
type Job struct {
	ID          int64      `json:"id"`
	ContractID  int64      `json:"contractId"`
	Description string     `json:"description"`
	PriceCents  int64      `json:"price"`
	Paid        bool       `json:"paid"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
}

// JobWithContract carries the contract ownership columns a payment needs
// alongside the job itself.
type JobWithContract struct {
	Job
	ClientID       int64
	ContractorID   int64
	ContractStatus ContractStatus
}
