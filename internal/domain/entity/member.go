package entity

import "time"

// Funciones ministeriales y estados civiles admitidos.
var (
	MinisterialRoles = []string{"Membro", "Obreiro", "Diácono", "Presbítero", "Pastor", "Missionário", "Evangelista"}
	MaritalStatuses  = []string{"Solteiro", "Casado", "Viúvo", "Divorciado"}
)

// Member miembro del registro de la secretaría.
type Member struct {
	ID              string
	FullName        string
	ImageURL        string
	Email           string
	Street          string
	District        string
	HouseNumber     string
	City            string
	State           string
	CEP             string
	CPF             string
	RG              string
	BirthCity       string
	BirthState      string
	BirthDate       *time.Time
	MaritalStatus   string
	Phone           string
	Profession      string
	HasChildren     bool
	Active          bool
	BaptismDate     *time.Time
	MinisterialRole string
	ChurchID        string
	RecordLink      string
	CardData        string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AgeAt edad cumplida en la fecha indicada; 0 si no hay fecha de nacimiento.
func (m *Member) AgeAt(now time.Time) int {
	if m.BirthDate == nil {
		return 0
	}
	b := *m.BirthDate
	age := now.Year() - b.Year()
	if now.Month() < b.Month() || (now.Month() == b.Month() && now.Day() < b.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// IsValidMinisterialRole indica si la función ministerial es admitida.
func IsValidMinisterialRole(r string) bool { return contains(MinisterialRoles, r) }

// IsValidMaritalStatus indica si el estado civil es admitido.
func IsValidMaritalStatus(s string) bool { return contains(MaritalStatuses, s) }
