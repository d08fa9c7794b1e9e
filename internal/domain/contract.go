package domain

type ContractStatus string

const (
	ContractStatusNew        ContractStatus = "new"
	ContractStatusInProgress ContractStatus = "in_progress"
	ContractStatusTerminated ContractStatus = "terminated"
)

// Contract links one client profile with one contractor profile. A
// terminated contract accepts no further payment or listing operations.
type Contract struct {
	ID           int64          `json:"id"`
	ClientID     int64          `json:"clientId"`
	ContractorID int64          `json:"contractorId"`
	Terms        string         `json:"terms"`
	Status       ContractStatus `json:"status"`
}
