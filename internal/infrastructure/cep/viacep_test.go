package cep_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipda-secretaria/secretaria-api/internal/domain"
	"github.com/ipda-secretaria/secretaria-api/internal/infrastructure/cep"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/29025023/json/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"cep":"29025-023","logradouro":"Avenida Santo Antônio","bairro":"Caratoíra",
			"localidade":"Vitória","uf":"ES","ibge":"3205309"}`))
	})
	mux.HandleFunc("/ws/99999999/json/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"erro": "true"}`))
	})
	mux.HandleFunc("/ws/11111111/json/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"erro": true}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLookup_Encontrado(t *testing.T) {
	c := cep.NewViaCEPClient(newServer(t).URL, time.Second)

	addr, err := c.Lookup(context.Background(), "29025-023")
	require.NoError(t, err)
	assert.Equal(t, "29025023", addr.CEP)
	assert.Equal(t, "Avenida Santo Antônio", addr.Street)
	assert.Equal(t, "Caratoíra", addr.District)
	assert.Equal(t, "Vitória", addr.City)
	assert.Equal(t, "ES", addr.State)
}

func TestLookup_NoEncontrado(t *testing.T) {
	c := cep.NewViaCEPClient(newServer(t).URL, time.Second)

	for _, code := range []string{"99999-999", "11111111"} {
		_, err := c.Lookup(context.Background(), code)
		assert.ErrorIs(t, err, domain.ErrNotFound, code)
	}
}

func TestLookup_FormatoInvalidoNoLlamaAlServicio(t *testing.T) {
	c := cep.NewViaCEPClient("http://127.0.0.1:1", time.Second)

	for _, code := range []string{"", "1234", "290250231"} {
		_, err := c.Lookup(context.Background(), code)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, code)
	}
}
