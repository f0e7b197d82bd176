package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipda-secretaria/secretaria-api/internal/application/dto"
	"github.com/ipda-secretaria/secretaria-api/internal/domain"
	apphttp "github.com/ipda-secretaria/secretaria-api/internal/interfaces/http"
)

type stubReports struct {
	last dto.ReportRequest
}

func (s *stubReports) Catalog() []dto.ReportKindDTO {
	return []dto.ReportKindDTO{{Category: "membros", Kind: "todos", Label: "Todos os membros"}}
}

func (s *stubReports) Generate(_ context.Context, req dto.ReportRequest) (*dto.ReportDTO, error) {
	s.last = req
	if req.Kind == "nao-existe" {
		return nil, domain.ErrInvalidInput
	}
	return &dto.ReportDTO{Category: req.Category, Kind: req.Kind, Title: "Aniversariantes"}, nil
}

func (s *stubReports) GeneratePDF(ctx context.Context, req dto.ReportRequest) ([]byte, *dto.ReportDTO, error) {
	rep, err := s.Generate(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	return []byte("%PDF-1.3"), rep, nil
}

type stubDocuments struct{}

func (stubDocuments) DefaultTemplate() string { return "IPDA\n{nomePregador}" }

func (stubDocuments) PreachingLetter(_ context.Context, req dto.PreachingLetterRequest) (*dto.PreachingLetterDTO, error) {
	if req.MemberID == "" {
		return nil, domain.ErrInvalidInput
	}
	return &dto.PreachingLetterDTO{Preacher: "João da Silva"}, nil
}

func (stubDocuments) PreachingLetterPDF(context.Context, dto.PreachingLetterRequest) ([]byte, error) {
	return []byte("%PDF-1.3"), nil
}

func (stubDocuments) Reassignment(context.Context, dto.ReassignmentRequest) (*dto.ReassignmentDTO, error) {
	return nil, domain.ErrUnknownChurch
}

func (stubDocuments) ReassignmentPDF(context.Context, dto.ReassignmentRequest) ([]byte, error) {
	return nil, domain.ErrUnknownChurch
}

func (stubDocuments) MemberCard(_ context.Context, id string) (*dto.MemberCardDTO, error) {
	if id != "m1" {
		return nil, domain.ErrUnknownMember
	}
	return &dto.MemberCardDTO{Name: "ANA SOUZA", Registration: "0000M1"}, nil
}

func (stubDocuments) MemberCardPDF(context.Context, string) ([]byte, error) {
	return []byte("%PDF-carteirinha"), nil
}

func (stubDocuments) MemberRecord(_ context.Context, id string) (*dto.MemberRecordDTO, error) {
	if id != "m1" {
		return nil, domain.ErrUnknownMember
	}
	return &dto.MemberRecordDTO{Name: "Ana Souza", Age: 34}, nil
}

func (stubDocuments) MemberRecordPDF(context.Context, string) ([]byte, error) {
	return []byte("%PDF-ficha"), nil
}

type stubCEP struct{}

func (stubCEP) Lookup(_ context.Context, cep string) (*dto.CEPAddressDTO, error) {
	switch cep {
	case "01001000":
		return &dto.CEPAddressDTO{CEP: "01001-000", City: "São Paulo", State: "SP"}, nil
	case "99999999":
		return nil, domain.ErrNotFound
	}
	return nil, domain.ErrInvalidInput
}

func documentsApp(reports *stubReports) *fiber.App {
	app := fiber.New()
	rh := apphttp.NewReportHandler(reports)
	app.Get("/reports", rh.Catalog)
	app.Get("/reports/:category/:kind", rh.Generate)
	dh := apphttp.NewDocumentHandler(stubDocuments{})
	app.Get("/documents/preaching-letter/template", dh.LetterTemplate)
	app.Post("/documents/preaching-letter", dh.PreachingLetter)
	app.Post("/documents/reassignment", dh.Reassignment)
	app.Get("/documents/members/:id/card", dh.MemberCard)
	app.Get("/documents/members/:id/record", dh.MemberRecord)
	ch := apphttp.NewCEPHandler(stubCEP{})
	app.Get("/cep/:cep", ch.Lookup)
	return app
}

func TestReportHandler_Catalog(t *testing.T) {
	resp := send(t, documentsApp(&stubReports{}), http.MethodGet, "/reports", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out []dto.ReportKindDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Len(t, out, 1)
}

func TestReportHandler_ParametrosDeRutaYQuery(t *testing.T) {
	reports := &stubReports{}
	resp := send(t, documentsApp(reports), http.MethodGet, "/reports/membros/aniversariantes?mes=3", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "membros", reports.last.Category)
	assert.Equal(t, "aniversariantes", reports.last.Kind)
	assert.Equal(t, 3, reports.last.Month)
}

func TestReportHandler_PDF(t *testing.T) {
	resp := send(t, documentsApp(&stubReports{}), http.MethodGet, "/reports/igrejas/todas?format=pdf", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "relatorio-igrejas-todas.pdf")
	b, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "%PDF-1.3", string(b))
}

func TestReportHandler_TipoDesconocido(t *testing.T) {
	resp := send(t, documentsApp(&stubReports{}), http.MethodGet, "/reports/membros/nao-existe", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDocumentHandler_Template(t *testing.T) {
	resp := send(t, documentsApp(&stubReports{}), http.MethodGet, "/documents/preaching-letter/template", "")
	defer resp.Body.Close()

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Contains(t, out["template"], "{nomePregador}")
}

func TestDocumentHandler_PreachingLetter(t *testing.T) {
	app := documentsApp(&stubReports{})

	resp := send(t, app, http.MethodPost, "/documents/preaching-letter", `{"membroId":"m1"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var letter dto.PreachingLetterDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&letter))
	assert.Equal(t, "João da Silva", letter.Preacher)

	pdfResp := send(t, app, http.MethodPost, "/documents/preaching-letter?format=pdf", `{"membroId":"m1"}`)
	defer pdfResp.Body.Close()
	assert.Equal(t, "application/pdf", pdfResp.Header.Get("Content-Type"))

	bad := send(t, app, http.MethodPost, "/documents/preaching-letter", `{}`)
	defer bad.Body.Close()
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
}

func TestDocumentHandler_ReassignmentIgrejaInexistente(t *testing.T) {
	resp := send(t, documentsApp(&stubReports{}), http.MethodPost, "/documents/reassignment?format=pdf", `{"igrejaId":"x"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCEPHandler(t *testing.T) {
	app := documentsApp(&stubReports{})

	ok := send(t, app, http.MethodGet, "/cep/01001000", "")
	defer ok.Body.Close()
	require.Equal(t, http.StatusOK, ok.StatusCode)
	var addr dto.CEPAddressDTO
	require.NoError(t, json.NewDecoder(ok.Body).Decode(&addr))
	assert.Equal(t, "SP", addr.State)

	missing := send(t, app, http.MethodGet, "/cep/99999999", "")
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)

	invalid := send(t, app, http.MethodGet, "/cep/123", "")
	defer invalid.Body.Close()
	assert.Equal(t, http.StatusBadRequest, invalid.StatusCode)
}

func TestDocumentHandler_Carteirinha(t *testing.T) {
	app := documentsApp(&stubReports{})

	resp := send(t, app, http.MethodGet, "/documents/members/m1/card", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var card dto.MemberCardDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&card))
	assert.Equal(t, "0000M1", card.Registration)

	pdf := send(t, app, http.MethodGet, "/documents/members/m1/card?format=pdf", "")
	defer pdf.Body.Close()
	require.Equal(t, http.StatusOK, pdf.StatusCode)
	assert.Equal(t, "application/pdf", pdf.Header.Get("Content-Type"))
	assert.Contains(t, pdf.Header.Get("Content-Disposition"), "carteirinha.pdf")

	missing := send(t, app, http.MethodGet, "/documents/members/x/card", "")
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestDocumentHandler_Ficha(t *testing.T) {
	app := documentsApp(&stubReports{})

	resp := send(t, app, http.MethodGet, "/documents/members/m1/record", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rec dto.MemberRecordDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	assert.Equal(t, 34, rec.Age)

	pdf := send(t, app, http.MethodGet, "/documents/members/m1/record?format=pdf", "")
	defer pdf.Body.Close()
	require.Equal(t, http.StatusOK, pdf.StatusCode)
	b, _ := io.ReadAll(pdf.Body)
	assert.Equal(t, "%PDF-ficha", string(b))

	missing := send(t, app, http.MethodGet, "/documents/members/x/record", "")
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}
