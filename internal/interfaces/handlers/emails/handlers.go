package emails

import (
	"encoding/json"

	emailsvc "truckdeals-backend/internal/application/emails"
	listsvc "truckdeals-backend/internal/application/listings"
	"truckdeals-backend/internal/domain"
	"truckdeals-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Draft template names.
const (
	TemplateDirect      = "direct"
	TemplateCompetitive = "competitive"
	TemplateMulti       = "multi"
)

type Handlers struct {
	Drafter  *emailsvc.Drafter
	Listings *listsvc.Service
}

type draftRequest struct {
	ListingID       string   `json:"listing_id"`
	Template        string   `json:"template"`
	CompetitorPrice *int64   `json:"competitor_price"`
	ListingIDs      []string `json:"listing_ids"`
}

// POST /api/v1/emails/draft
func (h *Handlers) Draft(c *fiber.Ctx) error {
	var req draftRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	switch req.Template {
	case TemplateDirect:
		listing, err := h.resolve(c, req.ListingID)
		if err != nil {
			return response.FromError(c, err)
		}
		return response.Success(c, "Draft created successfully", h.Drafter.DirectOTD(listing), nil)

	case TemplateCompetitive:
		if req.CompetitorPrice == nil {
			return response.Error(c, "competitor_price is required", fiber.StatusBadRequest, nil)
		}
		listing, err := h.resolve(c, req.ListingID)
		if err != nil {
			return response.FromError(c, err)
		}
		return response.Success(c, "Draft created successfully",
			h.Drafter.Competitive(listing, *req.CompetitorPrice), nil)

	case TemplateMulti:
		if len(req.ListingIDs) == 0 {
			return response.Error(c, "listing_ids is required", fiber.StatusBadRequest, nil)
		}
		listings := make([]domain.Listing, 0, len(req.ListingIDs))
		for _, idStr := range req.ListingIDs {
			listing, err := h.resolve(c, idStr)
			if err != nil {
				return response.FromError(c, err)
			}
			listings = append(listings, *listing)
		}
		dealer := ""
		if listings[0].DealerName != nil {
			dealer = *listings[0].DealerName
		}
		return response.Success(c, "Draft created successfully",
			h.Drafter.MultiVehicle(dealer, listings), nil)
	}
	return response.Error(c, "Unknown template: "+req.Template, fiber.StatusBadRequest, nil)
}

func (h *Handlers) resolve(c *fiber.Ctx, idStr string) (*domain.Listing, error) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, domain.NewValidation("invalid listing_id: %s", idStr)
	}
	return h.Listings.GetListing(c.Context(), id)
}
