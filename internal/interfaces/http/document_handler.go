package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ipda-secretaria/secretaria-api/internal/application/dto"
)

type documentService interface {
	DefaultTemplate() string
	PreachingLetter(ctx context.Context, req dto.PreachingLetterRequest) (*dto.PreachingLetterDTO, error)
	PreachingLetterPDF(ctx context.Context, req dto.PreachingLetterRequest) ([]byte, error)
	Reassignment(ctx context.Context, req dto.ReassignmentRequest) (*dto.ReassignmentDTO, error)
	ReassignmentPDF(ctx context.Context, req dto.ReassignmentRequest) ([]byte, error)
	MemberCard(ctx context.Context, memberID string) (*dto.MemberCardDTO, error)
	MemberCardPDF(ctx context.Context, memberID string) ([]byte, error)
	MemberRecord(ctx context.Context, memberID string) (*dto.MemberRecordDTO, error)
	MemberRecordPDF(ctx context.Context, memberID string) ([]byte, error)
}

// DocumentHandler emite cartas de pregação, documentos de remanejamento, carteirinhas y fichas.
type DocumentHandler struct {
	uc documentService
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc documentService) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

func wantsPDF(c *fiber.Ctx) bool {
	return strings.EqualFold(c.Query("format"), "pdf")
}

// LetterTemplate godoc
// @Summary      Plantilla por defecto de la carta de pregação
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/documents/preaching-letter/template [get]
func (h *DocumentHandler) LetterTemplate(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"template": h.uc.DefaultTemplate()})
}

// PreachingLetter godoc
// @Summary      Emitir carta de pregação
// @Description  Reemplaza los marcadores {nomePregador}, {funcaoMinisterial}, {nomeIgrejaOrigem},
// @Description  {nomeIgrejaDestino}, {dataPregacao} y {dataEmissao}. Con format=pdf devuelve el PDF.
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json,application/pdf
// @Param        body    body   dto.PreachingLetterRequest  true   "membroId, igrejas, data"
// @Param        format  query  string                      false  "json | pdf"
// @Success      200  {object}  dto.PreachingLetterDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/preaching-letter [post]
func (h *DocumentHandler) PreachingLetter(c *fiber.Ctx) error {
	var in dto.PreachingLetterRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if wantsPDF(c) {
		b, err := h.uc.PreachingLetterPDF(c.UserContext(), in)
		if err != nil {
			return writeError(c, err)
		}
		return sendPDF(c, "carta-pregacao.pdf", b)
	}
	letter, err := h.uc.PreachingLetter(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(letter)
}

// Reassignment godoc
// @Summary      Emitir documento de remanejamento
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json,application/pdf
// @Param        body    body   dto.ReassignmentRequest  true   "igreja, novo dirigente, motivo"
// @Param        format  query  string                   false  "json | pdf"
// @Success      200  {object}  dto.ReassignmentDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/reassignment [post]
func (h *DocumentHandler) Reassignment(c *fiber.Ctx) error {
	var in dto.ReassignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if wantsPDF(c) {
		b, err := h.uc.ReassignmentPDF(c.UserContext(), in)
		if err != nil {
			return writeError(c, err)
		}
		return sendPDF(c, "remanejamento.pdf", b)
	}
	doc, err := h.uc.Reassignment(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(doc)
}

// MemberCard godoc
// @Summary      Carteirinha de membro
// @Description  Frente y verso en 85,6 × 53,98 mm. Con format=pdf devuelve el PDF.
// @Tags         documents
// @Security     Bearer
// @Produce      json,application/pdf
// @Param        id      path   string  true   "ID del membro"
// @Param        format  query  string  false  "json | pdf"
// @Success      200  {object}  dto.MemberCardDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/members/{id}/card [get]
func (h *DocumentHandler) MemberCard(c *fiber.Ctx) error {
	id := c.Params("id")
	if wantsPDF(c) {
		b, err := h.uc.MemberCardPDF(c.UserContext(), id)
		if err != nil {
			return writeError(c, err)
		}
		return sendPDF(c, "carteirinha.pdf", b)
	}
	card, err := h.uc.MemberCard(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(card)
}

// MemberRecord godoc
// @Summary      Ficha de cadastro de membro
// @Tags         documents
// @Security     Bearer
// @Produce      json,application/pdf
// @Param        id      path   string  true   "ID del membro"
// @Param        format  query  string  false  "json | pdf"
// @Success      200  {object}  dto.MemberRecordDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/members/{id}/record [get]
func (h *DocumentHandler) MemberRecord(c *fiber.Ctx) error {
	id := c.Params("id")
	if wantsPDF(c) {
		b, err := h.uc.MemberRecordPDF(c.UserContext(), id)
		if err != nil {
			return writeError(c, err)
		}
		return sendPDF(c, "ficha-membro.pdf", b)
	}
	rec, err := h.uc.MemberRecord(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(rec)
}
