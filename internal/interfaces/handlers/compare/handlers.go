package compare

import (
	cmpsvc "truckdeals-backend/internal/application/compare"
	"truckdeals-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *cmpsvc.Service
}

// GET /api/v1/listings/compare?ids=a,b,c
func (h *Handlers) Compare(c *fiber.Ctx) error {
	ids, err := cmpsvc.ParseIDs(c.Query("ids"))
	if err != nil {
		return response.FromError(c, err)
	}
	result, err := h.Service.Compare(c.Context(), ids)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Comparison built successfully", result,
		fiber.Map{"count": len(result.Listings)})
}
