// Package cep consulta direcciones por código postal en ViaCEP.
package cep

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ipda-secretaria/secretaria-api/internal/application/dto"
	"github.com/ipda-secretaria/secretaria-api/internal/application/ports"
	"github.com/ipda-secretaria/secretaria-api/internal/domain"
	"github.com/ipda-secretaria/secretaria-api/pkg/textutil"
)

var _ ports.CEPLookup = (*ViaCEPClient)(nil)

// ViaCEPClient cliente HTTP de https://viacep.com.br.
type ViaCEPClient struct {
	client *resty.Client
}

// NewViaCEPClient construye el cliente. baseURL vacío usa el servicio público.
func NewViaCEPClient(baseURL string, timeout time.Duration) *ViaCEPClient {
	if baseURL == "" {
		baseURL = "https://viacep.com.br"
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ViaCEPClient{
		client: resty.New().SetBaseURL(baseURL).SetTimeout(timeout),
	}
}

type viaCEPResponse struct {
	CEP        string          `json:"cep"`
	Logradouro string          `json:"logradouro"`
	Bairro     string          `json:"bairro"`
	Localidade string          `json:"localidade"`
	UF         string          `json:"uf"`
	Erro       json.RawMessage `json:"erro"` // true o "true" según la versión de la API
}

func (r viaCEPResponse) notFound() bool {
	s := string(r.Erro)
	return s == "true" || s == `"true"`
}

// Lookup busca la dirección del CEP (acepta máscara 00000-000).
func (c *ViaCEPClient) Lookup(ctx context.Context, cep string) (*dto.CEPAddressDTO, error) {
	digits := textutil.OnlyDigits(cep)
	if len(digits) != 8 {
		return nil, domain.ErrInvalidInput
	}
	var body viaCEPResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&body).
		SetPathParam("cep", digits).
		Get("/ws/{cep}/json/")
	if err != nil {
		return nil, fmt.Errorf("viacep: %w", err)
	}
	switch {
	case resp.StatusCode() == 400:
		return nil, domain.ErrInvalidInput
	case !resp.IsSuccess():
		return nil, fmt.Errorf("viacep: status %d", resp.StatusCode())
	case body.notFound():
		return nil, domain.ErrNotFound
	}
	return &dto.CEPAddressDTO{
		CEP:      digits,
		Street:   body.Logradouro,
		District: body.Bairro,
		City:     body.Localidade,
		State:    body.UF,
	}, nil
}
