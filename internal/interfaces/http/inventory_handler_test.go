package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipda-secretaria/secretaria-api/internal/application/dto"
	"github.com/ipda-secretaria/secretaria-api/internal/application/ledger"
	"github.com/ipda-secretaria/secretaria-api/internal/application/ports"
	"github.com/ipda-secretaria/secretaria-api/internal/domain"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/entity"
	"github.com/ipda-secretaria/secretaria-api/internal/domain/repository"
	apphttp "github.com/ipda-secretaria/secretaria-api/internal/interfaces/http"
)

// stubLedger registra la última entrada recibida y devuelve err si está definido.
type stubLedger struct {
	err       error
	lastEntry ledger.EntryInput
	lastExit  ledger.ExitInput
	lastTr    ledger.TransferInput
	lastFilt  repository.MovementFilter
}

func (s *stubLedger) RecordEntry(_ context.Context, in ledger.EntryInput) (*entity.Movement, error) {
	s.lastEntry = in
	if s.err != nil {
		return nil, s.err
	}
	return &entity.Movement{ID: "m1", ItemID: in.ItemID, Kind: entity.MovementEntry, Quantity: in.Quantity, RecordedBy: in.Actor}, nil
}

func (s *stubLedger) RecordExit(_ context.Context, in ledger.ExitInput) (*entity.Movement, error) {
	s.lastExit = in
	if s.err != nil {
		return nil, s.err
	}
	return &entity.Movement{ID: "m2", ItemID: in.ItemID, Kind: entity.MovementExit, Quantity: in.Quantity}, nil
}

func (s *stubLedger) RecordTransfer(_ context.Context, in ledger.TransferInput) (*entity.Transfer, error) {
	s.lastTr = in
	if s.err != nil {
		return nil, s.err
	}
	return &entity.Transfer{ID: "t1", ItemID: in.ItemID, Quantity: in.Quantity, Status: entity.TransferSent}, nil
}

func (s *stubLedger) UpdateItemStock(_ context.Context, id string, delta int) (*entity.InventoryItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &entity.InventoryItem{ID: id, Stock: max(0, 5+delta)}, nil
}

func (s *stubLedger) UpdateTransferStatus(_ context.Context, id, status string) (*entity.Transfer, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &entity.Transfer{ID: id, Status: status}, nil
}

func (s *stubLedger) GetTotalStockValue(context.Context) (decimal.Decimal, error) {
	return decimal.RequireFromString("1234.567"), s.err
}

func (s *stubLedger) GetTotalItemTypes(context.Context) (int, error) { return 3, s.err }

func (s *stubLedger) GetLowStockItems(_ context.Context, limit int) ([]*entity.InventoryItem, error) {
	return []*entity.InventoryItem{{ID: "i1", Stock: 2}}, s.err
}

func (s *stubLedger) GetRecentMovements(_ context.Context, limit int) ([]*entity.Movement, error) {
	return nil, s.err
}

func (s *stubLedger) ListMovements(_ context.Context, f repository.MovementFilter) ([]*entity.Movement, error) {
	s.lastFilt = f
	return []*entity.Movement{{ID: "m1"}}, s.err
}

func (s *stubLedger) ListTransfers(_ context.Context, limit, offset int) ([]*entity.Transfer, error) {
	return nil, s.err
}

func inventoryApp(l *stubLedger) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.SetUserContext(ports.WithActor(c.UserContext(), testEmail))
		return c.Next()
	})
	h := apphttp.NewInventoryHandler(l)
	app.Post("/entries", h.RecordEntry)
	app.Post("/exits", h.RecordExit)
	app.Post("/transfers", h.RecordTransfer)
	app.Patch("/transfers/:id/status", h.UpdateTransferStatus)
	app.Patch("/items/:id/stock", h.AdjustStock)
	app.Get("/movements", h.ListMovements)
	app.Get("/stats", h.GetStats)
	return app
}

func send(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var e dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	return e
}

func TestRecordEntry_Created(t *testing.T) {
	l := &stubLedger{}
	resp := send(t, inventoryApp(l), http.MethodPost, "/entries",
		`{"item_id":"i1","quantidade":4,"origem":"Doação","responsavel":"Ana","data":"2025-03-02T10:00:00Z"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "i1", l.lastEntry.ItemID)
	assert.Equal(t, 4, l.lastEntry.Quantity)
	assert.Equal(t, testEmail, l.lastEntry.Actor)
	assert.Equal(t, time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC), l.lastEntry.Date.UTC())

	var out dto.MovementResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, entity.MovementEntry, out.Kind)
	assert.Equal(t, testEmail, out.RecordedBy)
}

func TestRecordEntry_SinFechaEnviaCero(t *testing.T) {
	l := &stubLedger{}
	resp := send(t, inventoryApp(l), http.MethodPost, "/entries", `{"item_id":"i1","quantidade":1}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, l.lastEntry.Date.IsZero())
}

func TestRecordEntry_CuerpoInvalido(t *testing.T) {
	resp := send(t, inventoryApp(&stubLedger{}), http.MethodPost, "/entries", `{"item_id":`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Code)
}

func TestInventoryHandler_MapeoDeErrores(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"stock insuficiente", fmt.Errorf("salida: %w", domain.ErrInsufficientStock), http.StatusConflict, "INSUFFICIENT_STOCK"},
		{"ítem inexistente", domain.ErrUnknownItem, http.StatusNotFound, "NOT_FOUND"},
		{"igreja inexistente", domain.ErrUnknownChurch, http.StatusNotFound, "NOT_FOUND"},
		{"cantidad inválida", fmt.Errorf("%w: quantidade", domain.ErrInvalidInput), http.StatusBadRequest, "VALIDATION"},
		{"error de BD", fmt.Errorf("conexión perdida"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := send(t, inventoryApp(&stubLedger{err: tc.err}), http.MethodPost, "/exits", `{"item_id":"i1","quantidade":9}`)
			defer resp.Body.Close()

			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, decodeError(t, resp).Code)
		})
	}
}

func TestRecordTransfer_PasaIgrejas(t *testing.T) {
	l := &stubLedger{}
	resp := send(t, inventoryApp(l), http.MethodPost, "/transfers",
		`{"item_id":"i1","quantidade":2,"igreja_origem_id":"c1","igreja_destino_id":"c2"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "c1", l.lastTr.OriginChurchID)
	assert.Equal(t, "c2", l.lastTr.DestinationChurchID)
}

func TestUpdateTransferStatus_TransicionInvalida(t *testing.T) {
	l := &stubLedger{err: domain.ErrInvalidTransition}
	resp := send(t, inventoryApp(l), http.MethodPatch, "/transfers/t1/status", `{"status":"pendente"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INVALID_TRANSITION", decodeError(t, resp).Code)
}

func TestAdjustStock(t *testing.T) {
	resp := send(t, inventoryApp(&stubLedger{}), http.MethodPatch, "/items/i1/stock", `{"delta":-9}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.ItemResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 0, out.Stock)
}

func TestListMovements_FiltrosYPagina(t *testing.T) {
	l := &stubLedger{}
	resp := send(t, inventoryApp(l), http.MethodGet, "/movements?item_id=i1&tipo=saida&limit=500", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "i1", l.lastFilt.ItemID)
	assert.Equal(t, "saida", l.lastFilt.Kind)
	assert.Equal(t, 100, l.lastFilt.Limit)
}

func TestGetStats(t *testing.T) {
	resp := send(t, inventoryApp(&stubLedger{}), http.MethodGet, "/stats", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.InventoryStatsDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, decimal.RequireFromString("1234.57").Equal(out.TotalValue))
	assert.Equal(t, 3, out.TotalItemTypes)
	assert.Len(t, out.LowStock, 1)
}
