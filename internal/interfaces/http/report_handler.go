package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ipda-secretaria/secretaria-api/internal/application/dto"
)

type reportService interface {
	Catalog() []dto.ReportKindDTO
	Generate(ctx context.Context, req dto.ReportRequest) (*dto.ReportDTO, error)
	GeneratePDF(ctx context.Context, req dto.ReportRequest) ([]byte, *dto.ReportDTO, error)
}

// ReportHandler expone los relatórios de membros, igrejas y depósito.
type ReportHandler struct {
	uc reportService
}

// NewReportHandler construye el handler.
func NewReportHandler(uc reportService) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Catalog godoc
// @Summary      Relatórios disponibles
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReportKindDTO
// @Router       /api/reports [get]
func (h *ReportHandler) Catalog(c *fiber.Ctx) error {
	return c.JSON(h.uc.Catalog())
}

// Generate godoc
// @Summary      Generar relatório
// @Description  Devuelve la tabla en JSON o, con format=pdf, el documento imprimible.
// @Tags         reports
// @Security     Bearer
// @Produce      json,application/pdf
// @Param        category  path   string  true   "membros | igrejas | deposito"
// @Param        kind      path   string  true   "Tipo de relatório (ver GET /api/reports)"
// @Param        mes       query  int     false  "Mes para aniversariantes (1-12)"
// @Param        inicio    query  string  false  "Inicio del período (YYYY-MM-DD)"
// @Param        fim       query  string  false  "Fin del período (YYYY-MM-DD)"
// @Param        format    query  string  false  "json | pdf"
// @Success      200  {object}  dto.ReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/{category}/{kind} [get]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var req dto.ReportRequest
	if err := c.ParamsParser(&req); err != nil {
		return invalidQuery(c)
	}
	if err := c.QueryParser(&req); err != nil {
		return invalidQuery(c)
	}
	if strings.EqualFold(req.Format, "pdf") {
		b, rep, err := h.uc.GeneratePDF(c.UserContext(), req)
		if err != nil {
			return writeError(c, err)
		}
		return sendPDF(c, "relatorio-"+rep.Category+"-"+rep.Kind+".pdf", b)
	}
	rep, err := h.uc.Generate(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rep)
}
