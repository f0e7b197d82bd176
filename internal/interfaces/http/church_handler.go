package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/ipda-secretaria/secretaria-api/internal/application/dto"
)

type churchService interface {
	Create(ctx context.Context, in dto.ChurchRequest) (*dto.ChurchResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ChurchResponse, error)
	Update(ctx context.Context, id string, in dto.ChurchRequest) (*dto.ChurchResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, req dto.RevealRequest) (*dto.ChurchListResponse, error)
}

// ChurchHandler registro de igrejas (protegido).
type ChurchHandler struct {
	uc churchService
}

// NewChurchHandler construye el handler.
func NewChurchHandler(uc churchService) *ChurchHandler {
	return &ChurchHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar igreja
// @Tags         churches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChurchRequest  true  "Datos de la igreja"
// @Success      201   {object}  dto.ChurchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/churches [post]
func (h *ChurchHandler) Create(c *fiber.Ctx) error {
	var in dto.ChurchRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener igreja por ID
// @Tags         churches
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la igreja"
// @Success      200  {object}  dto.ChurchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/churches/{id} [get]
func (h *ChurchHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar igreja (reemplaza todos los campos)
// @Tags         churches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID de la igreja"
// @Param        body  body  dto.ChurchRequest  true  "Datos de la igreja"
// @Success      200   {object}  dto.ChurchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/churches/{id} [put]
func (h *ChurchHandler) Update(c *fiber.Ctx) error {
	var in dto.ChurchRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina la igreja. Los miembros vinculados quedan sin igreja.
func (h *ChurchHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar igrejas (revelado incremental)
// @Tags         churches
// @Security     Bearer
// @Produce      json
// @Param        q     query  string  false  "Búsqueda por nombre, clasificación, ciudad o estado"
// @Param        page  query  int     false  "Páginas visibles (desde 1)"
// @Success      200   {object}  dto.ChurchListResponse
// @Router       /api/churches [get]
func (h *ChurchHandler) List(c *fiber.Ctx) error {
	var req dto.RevealRequest
	if err := c.QueryParser(&req); err != nil {
		return invalidQuery(c)
	}
	out, err := h.uc.List(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
