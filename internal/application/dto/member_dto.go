package dto

import (
	"time"

	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
)

// MemberRequest body de alta y edición de un miembro.
type MemberRequest struct {
	FullName        string `json:"nomeCompleto"`
	ImageURL        string `json:"foto"`
	Email           string `json:"email"`
	Street          string `json:"endereco"`
	District        string `json:"bairro"`
	HouseNumber     string `json:"numeroCasa"`
	City            string `json:"cidade"`
	State           string `json:"estado"`
	CEP             string `json:"cep"`
	CPF             string `json:"cpf"`
	RG              string `json:"rg"`
	BirthCity       string `json:"cidadeNascimento"`
	BirthState      string `json:"estadoCidadeNascimento"`
	BirthDate       *Date  `json:"dataNascimento"`
	MaritalStatus   string `json:"estadoCivil"`
	Phone           string `json:"telefone"`
	Profession      string `json:"profissao"`
	HasChildren     bool   `json:"temFilhos"`
	Active          *bool  `json:"ativo"`
	BaptismDate     *Date  `json:"dataBatismo"`
	MinisterialRole string `json:"funcaoMinisterial"`
	ChurchID        string `json:"igrejaId"`
	RecordLink      string `json:"linkFicha"`
	CardData        string `json:"dadosCarteirinha"`
	Notes           string `json:"observacoes"`
}

// MemberResponse salida de un miembro; Age se calcula a partir de la fecha de nacimiento.
type MemberResponse struct {
	ID              string    `json:"id"`
	FullName        string    `json:"nomeCompleto"`
	ImageURL        string    `json:"foto"`
	Email           string    `json:"email"`
	Street          string    `json:"endereco"`
	District        string    `json:"bairro"`
	HouseNumber     string    `json:"numeroCasa"`
	City            string    `json:"cidade"`
	State           string    `json:"estado"`
	CEP             string    `json:"cep"`
	CPF             string    `json:"cpf"`
	RG              string    `json:"rg"`
	BirthCity       string    `json:"cidadeNascimento"`
	BirthState      string    `json:"estadoCidadeNascimento"`
	BirthDate       *Date     `json:"dataNascimento"`
	Age             int       `json:"idade"`
	MaritalStatus   string    `json:"estadoCivil"`
	Phone           string    `json:"telefone"`
	Profession      string    `json:"profissao"`
	HasChildren     bool      `json:"temFilhos"`
	Active          bool      `json:"ativo"`
	BaptismDate     *Date     `json:"dataBatismo"`
	MinisterialRole string    `json:"funcaoMinisterial"`
	ChurchID        string    `json:"igrejaId"`
	RecordLink      string    `json:"linkFicha"`
	CardData        string    `json:"dadosCarteirinha"`
	Notes           string    `json:"observacoes"`
	CreatedAt       time.Time `json:"dataCadastro"`
	UpdatedAt       time.Time `json:"dataAtualizacao"`
}

// MemberListResponse prefijo visible de la lista de miembros.
type MemberListResponse struct {
	Items []MemberResponse `json:"items"`
	Page  RevealPage       `json:"page"`
}

// MemberFromEntity convierte la entidad; now fija la fecha de referencia de la edad.
func MemberFromEntity(m *entity.Member, now time.Time) MemberResponse {
	return MemberResponse{
		ID:              m.ID,
		FullName:        m.FullName,
		ImageURL:        m.ImageURL,
		Email:           m.Email,
		Street:          m.Street,
		District:        m.District,
		HouseNumber:     m.HouseNumber,
		City:            m.City,
		State:           m.State,
		CEP:             m.CEP,
		CPF:             m.CPF,
		RG:              m.RG,
		BirthCity:       m.BirthCity,
		BirthState:      m.BirthState,
		BirthDate:       NewDate(m.BirthDate),
		Age:             m.AgeAt(now),
		MaritalStatus:   m.MaritalStatus,
		Phone:           m.Phone,
		Profession:      m.Profession,
		HasChildren:     m.HasChildren,
		Active:          m.Active,
		BaptismDate:     NewDate(m.BaptismDate),
		MinisterialRole: m.MinisterialRole,
		ChurchID:        m.ChurchID,
		RecordLink:      m.RecordLink,
		CardData:        m.CardData,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// MembersFromEntities convierte una lista.
func MembersFromEntities(list []*entity.Member, now time.Time) []MemberResponse {
	out := make([]MemberResponse, 0, len(list))
	for _, m := range list {
		out = append(out, MemberFromEntity(m, now))
	}
	return out
}
