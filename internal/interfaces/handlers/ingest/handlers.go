package ingest

import (
	"encoding/json"

	ingsvc "truckdeals-backend/internal/application/ingest"
	"truckdeals-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *ingsvc.Service
}

// POST /api/v1/listings/ingest — body is either a single listing object or
// an array of them.
func (h *Handlers) Ingest(c *fiber.Ctx) error {
	body := c.Body()

	var inputs []ingsvc.ListingInput
	if err := json.Unmarshal(body, &inputs); err != nil {
		var one ingsvc.ListingInput
		if err := json.Unmarshal(body, &one); err != nil {
			return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
		}
		inputs = []ingsvc.ListingInput{one}
	}
	if len(inputs) == 0 {
		return response.Error(c, "No listings to ingest", fiber.StatusBadRequest, nil)
	}

	summary, err := h.Service.UpsertBatch(c.Context(), inputs)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.SuccessCreated(c, "Listings ingested successfully", summary, nil)
}
