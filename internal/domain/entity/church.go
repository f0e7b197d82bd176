package entity

import "time"

// Clasificaciones y tipos de IPDA.
var (
	ChurchClassifications = []string{"Estadual", "Setorial", "Central", "Regional", "Local"}
	ChurchTypes           = []string{"Sede", "Congregação", "Ponto de Pregação"}
)

// Address dirección postal brasileña (se persiste como JSONB).
type Address struct {
	Street   string `json:"rua"`
	Number   string `json:"numero"`
	District string `json:"bairro"`
	City     string `json:"cidade"`
	State    string `json:"estado"`
	CEP      string `json:"cep"`
}

// Pastor dirigente de la igreja (se persiste como JSONB).
type Pastor struct {
	FullName        string `json:"nomeCompleto"`
	Phone           string `json:"telefone"`
	Email           string `json:"email"`
	BirthDate       string `json:"dataNascimento"`
	BaptismDate     string `json:"dataBatismo"`
	MaritalStatus   string `json:"estadoCivil"`
	MinisterialRole string `json:"funcaoMinisterial"`
	HasCFO          bool   `json:"possuiCFO"`
	CFOCompletedAt  string `json:"dataConclusaoCFO,omitempty"`
	AssumedAt       string `json:"dataAssumiu"`
}

// Church una IPDA del registro (sede, congregação o ponto de pregação).
type Church struct {
	ID             string
	ImageURL       string
	TotvsCode      string
	Classification string
	Name           string // nomeIPDA
	Type           string
	Address        Address
	Pastor         Pastor
	InitialMembers int
	CurrentMembers int
	BaptizedSouls  int
	HasSchool      bool // Escola Pequeno Galileu
	ChildrenCount  int
	SchoolDays     []string
	Phone          string
	Email          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsValidClassification indica si la clasificación es admitida.
func IsValidClassification(c string) bool { return contains(ChurchClassifications, c) }

// IsValidChurchType indica si el tipo de IPDA es admitido.
func IsValidChurchType(t string) bool { return contains(ChurchTypes, t) }
