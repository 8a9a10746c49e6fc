package entities

type TeamType string

const (
	TeamMechanics    TeamType = "Mechanics"
	TeamElectricians TeamType = "Electricians"
	TeamIT           TeamType = "IT"
)

type Team struct {
	ID        string   `json:"id" db:"id"`
	Name      string   `json:"name" db:"name"`
	Type      TeamType `json:"type" db:"type"`
	MemberIDs []string `json:"memberIds" db:"member_ids"`
}

func (t Team) HasMember(userID string) bool {
	for _, id := range t.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
