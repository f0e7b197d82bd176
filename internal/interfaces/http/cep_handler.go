package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ipda-secretaria/secretaria-api/internal/application/ports"
)

// CEPHandler consulta direcciones por código postal.
type CEPHandler struct {
	lookup ports.CEPLookup
}

// NewCEPHandler construye el handler.
func NewCEPHandler(lookup ports.CEPLookup) *CEPHandler {
	return &CEPHandler{lookup: lookup}
}

// Lookup godoc
// @Summary      Buscar dirección por CEP
// @Tags         cep
// @Security     Bearer
// @Produce      json
// @Param        cep  path  string  true  "CEP (8 dígitos, con o sin guion)"
// @Success      200  {object}  dto.CEPAddressDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cep/{cep} [get]
func (h *CEPHandler) Lookup(c *fiber.Ctx) error {
	addr, err := h.lookup.Lookup(c.UserContext(), c.Params("cep"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(addr)
}
