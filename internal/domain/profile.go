package domain

type ProfileType string

const (
	ProfileTypeClient     ProfileType = "client"
	ProfileTypeContractor ProfileType = "contractor"
)

type Profile struct {
	ID           int64       `json:"id"`
	Type         ProfileType `json:"type"`
	FirstName    string      `json:"firstName"`
	LastName     string      `json:"lastName"`
	Profession   string      `json:"profession,omitempty"`
	Email        string      `json:"email,omitempty"`
	BalanceCents int64       `json:"balance"`
}

func (p *Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}
