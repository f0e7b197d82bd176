package dto

import (
	"time"

	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
)

// ChurchRequest body de alta y edición (PUT reemplaza todos los campos).
type ChurchRequest struct {
	ImageURL       string         `json:"foto"`
	TotvsCode      string         `json:"totvs"`
	Classification string         `json:"classificacao"`
	Name           string         `json:"nomeIPDA"`
	Type           string         `json:"tipoIPDA"`
	Address        entity.Address `json:"endereco"`
	Pastor         entity.Pastor  `json:"pastor"`
	InitialMembers int            `json:"membrosIniciais"`
	CurrentMembers int            `json:"membrosAtuais"`
	BaptizedSouls  int            `json:"almasBatizadas"`
	HasSchool      bool           `json:"temEscola"`
	ChildrenCount  int            `json:"quantidadeCriancas"`
	SchoolDays     []string       `json:"diasFuncionamento"`
	Phone          string         `json:"telefone"`
	Email          string         `json:"email"`
}

// ChurchResponse salida de una igreja.
type ChurchResponse struct {
	ID string `json:"id"`
	ChurchRequest
	CreatedAt time.Time `json:"dataCadastro"`
	UpdatedAt time.Time `json:"dataAtualizacao"`
}

// ChurchListResponse prefijo visible de la lista de igrejas.
type ChurchListResponse struct {
	Items []ChurchResponse `json:"items"`
	Page  RevealPage       `json:"page"`
}

// ChurchFromEntity convierte la entidad.
func ChurchFromEntity(c *entity.Church) ChurchResponse {
	days := c.SchoolDays
	if days == nil {
		days = []string{}
	}
	return ChurchResponse{
		ID: c.ID,
		ChurchRequest: ChurchRequest{
			ImageURL:       c.ImageURL,
			TotvsCode:      c.TotvsCode,
			Classification: c.Classification,
			Name:           c.Name,
			Type:           c.Type,
			Address:        c.Address,
			Pastor:         c.Pastor,
			InitialMembers: c.InitialMembers,
			CurrentMembers: c.CurrentMembers,
			BaptizedSouls:  c.BaptizedSouls,
			HasSchool:      c.HasSchool,
			ChildrenCount:  c.ChildrenCount,
			SchoolDays:     days,
			Phone:          c.Phone,
			Email:          c.Email,
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ChurchesFromEntities convierte una lista.
func ChurchesFromEntities(list []*entity.Church) []ChurchResponse {
	out := make([]ChurchResponse, 0, len(list))
	for _, c := range list {
		out = append(out, ChurchFromEntity(c))
	}
	return out
}
