package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PreachingLetterRequest body de POST /api/documents/preaching-letter.
type PreachingLetterRequest struct {
	MemberID            string `json:"membroId"`
	OriginChurchID      string `json:"igrejaOrigemId"`
	DestinationChurchID string `json:"igrejaDestinoId"`
	PreachingDate       *Date  `json:"dataPregacao"`
	Template            string `json:"template,omitempty"` // vacío = plantilla por defecto
	Signature           string `json:"assinatura,omitempty"`
}

// PreachingLetterDTO carta de recomendación ya procesada.
type PreachingLetterDTO struct {
	Preacher          string    `json:"nomePregador"`
	MinisterialRole   string    `json:"funcaoMinisterial"`
	OriginChurch      string    `json:"nomeIgrejaOrigem"`
	DestinationChurch string    `json:"nomeIgrejaDestino"`
	PreachingDate     string    `json:"dataPregacao"`
	IssuedAt          string    `json:"dataEmissao"`
	Signature         string    `json:"assinatura,omitempty"`
	Text              string    `json:"texto"`
	GeneratedAt       time.Time `json:"generated_at"`
}

// ReassignmentFinancial movimiento financiero de la IPDA informado a mano.
type ReassignmentFinancial struct {
	Income   decimal.Decimal `json:"entradas"`
	Expenses decimal.Decimal `json:"saidas"`
	Balance  decimal.Decimal `json:"saldo"`
}

// ReassignmentProperty situación del inmueble de la IPDA.
type ReassignmentProperty struct {
	Type           string           `json:"tipo"` // Própria | Alugada | Cedida
	ContractExpiry *Date            `json:"vencimentoContrato,omitempty"`
	HasDeed        bool             `json:"temEscritura"`
	Rent           *decimal.Decimal `json:"valorAluguel,omitempty"`
}

// ReassignmentRequest body de POST /api/documents/reassignment.
type ReassignmentRequest struct {
	ChurchID        string                `json:"igrejaId"`
	NewLeaderID     string                `json:"novoDirigenteId"`
	Reason          string                `json:"motivo"`
	DistanceKm      decimal.Decimal       `json:"distanciaKm"`
	ReceivesStipend bool                  `json:"recebePrebenda"`
	StipendSince    *Date                 `json:"prebendaDesde,omitempty"`
	AssumptionDate  *Date                 `json:"dataAssume"`
	Financial       ReassignmentFinancial `json:"financeiro"`
	Property        ReassignmentProperty  `json:"imovel"`
}

// LeaderDTO datos de un dirigente en el documento de remanejamento.
type LeaderDTO struct {
	Name            string `json:"nome"`
	MinisterialRole string `json:"funcaoMinisterial"`
	RG              string `json:"rg,omitempty"`
	CPF             string `json:"cpf,omitempty"`
	Phone           string `json:"telefone,omitempty"`
	Email           string `json:"email,omitempty"`
	BaptismDate     string `json:"dataBatismo,omitempty"`
}

// ReassignmentDTO documento de remanejamento de dirigente.
type ReassignmentDTO struct {
	Church          ChurchResponse        `json:"igreja"`
	CurrentLeader   *LeaderDTO            `json:"dirigenteAtual,omitempty"`
	NewLeader       LeaderDTO             `json:"novoDirigente"`
	Reason          string                `json:"motivo"`
	DistanceKm      decimal.Decimal       `json:"distanciaKm"`
	ReceivesStipend bool                  `json:"recebePrebenda"`
	StipendSince    string                `json:"prebendaDesde,omitempty"`
	AssumptionDate  string                `json:"dataAssume"`
	Financial       ReassignmentFinancial `json:"financeiro"`
	Property        ReassignmentProperty  `json:"imovel"`
	IssuedAt        string                `json:"dataEmissao"`
	GeneratedAt     time.Time             `json:"generated_at"`
}

// MemberCardDTO carteirinha de membro: frente (identificación) y verso (datos de contacto).
type MemberCardDTO struct {
	Organization  string `json:"organizacao"`
	Church        string `json:"igreja,omitempty"`
	Name          string `json:"nome"`
	Registration  string `json:"matricula"`
	Group         string `json:"grupo"`
	BirthDate     string `json:"dataNascimento,omitempty"`
	Street        string `json:"endereco,omitempty"`
	HouseNumber   string `json:"numeroCasa,omitempty"`
	District      string `json:"bairro,omitempty"`
	City          string `json:"cidade,omitempty"`
	State         string `json:"estado,omitempty"`
	MaritalStatus string `json:"estadoCivil,omitempty"`
	BaptismDate   string `json:"dataBatismo,omitempty"`
	CPF           string `json:"cpf,omitempty"`
	RG            string `json:"rg,omitempty"`
	Phone         string `json:"telefone,omitempty"`
	// CardData texto libre guardado en el cadastro (dadosCarteirinha).
	CardData    string    `json:"dadosCarteirinha,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

// MemberRecordDTO ficha de cadastro de membro.
type MemberRecordDTO struct {
	Church          string    `json:"igreja,omitempty"`
	Name            string    `json:"nomeCompleto"`
	Street          string    `json:"endereco,omitempty"`
	HouseNumber     string    `json:"numeroCasa,omitempty"`
	District        string    `json:"bairro,omitempty"`
	City            string    `json:"cidade,omitempty"`
	State           string    `json:"estado,omitempty"`
	CEP             string    `json:"cep,omitempty"`
	RG              string    `json:"rg,omitempty"`
	CPF             string    `json:"cpf,omitempty"`
	BirthDate       string    `json:"dataNascimento,omitempty"`
	Age             int       `json:"idade"`
	BirthCity       string    `json:"cidadeNascimento,omitempty"`
	BirthState      string    `json:"estadoCidadeNascimento,omitempty"`
	MaritalStatus   string    `json:"estadoCivil,omitempty"`
	Email           string    `json:"email,omitempty"`
	Profession      string    `json:"profissao,omitempty"`
	Phone           string    `json:"telefone,omitempty"`
	BaptismDate     string    `json:"dataBatismo,omitempty"`
	MinisterialRole string    `json:"funcaoMinisterial"`
	RecordLink      string    `json:"linkFicha,omitempty"`
	IssuedPlace     string    `json:"localEmissao,omitempty"`
	IssuedAt        string    `json:"dataEmissao"`
	GeneratedAt     time.Time `json:"generated_at"`
}
