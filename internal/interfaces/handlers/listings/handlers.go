package listings

import (
	"time"

	listsvc "truckdeals-backend/internal/application/listings"
	"truckdeals-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *listsvc.Service
}

func criteriaFromQuery(c *fiber.Ctx) listsvc.FilterCriteria {
	params := map[string]string{}
	for _, key := range []string{
		"make", "model", "priceMin", "priceMax", "yearMin", "yearMax",
		"trim", "cabType", "bedLength", "drivetrain", "engine",
		"exteriorColor", "interiorColor", "dealer", "features",
	} {
		if v := c.Query(key); v != "" {
			params[key] = v
		}
	}
	return listsvc.ParseCriteria(params)
}

// GET /api/v1/listings/get-listings?mode=listings|stats|drops
func (h *Handlers) GetListings(c *fiber.Ctx) error {
	mode := c.Query("mode", listsvc.ModeListings)
	switch mode {
	case listsvc.ModeStats:
		return h.GetStats(c)
	case listsvc.ModeDrops:
		return h.GetPriceDrops(c)
	case listsvc.ModeListings:
	default:
		return response.Error(c, "Unknown mode: "+mode, fiber.StatusBadRequest, nil)
	}

	rows, err := h.Service.List(c.Context(), criteriaFromQuery(c))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Listings fetched successfully", rows,
		fiber.Map{"count": len(rows)})
}

// GET /api/v1/listings/get-stats
func (h *Handlers) GetStats(c *fiber.Ctx) error {
	stats, err := h.Service.Stats(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Stats computed successfully", stats, nil)
}

// GET /api/v1/listings/get-price-drops
func (h *Handlers) GetPriceDrops(c *fiber.Ctx) error {
	drops, err := h.Service.PriceDrops(c.Context(), time.Now().UTC())
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Price drops fetched successfully", drops,
		fiber.Map{"count": len(drops)})
}

// GET /api/v1/listings/get-listing/:listing_id
func (h *Handlers) GetListingByID(c *fiber.Ctx) error {
	idStr := c.Params("listing_id")
	if idStr == "" {
		return response.Error(c, "listing_id is required", fiber.StatusBadRequest, nil)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return response.Error(c, "Invalid listing_id format", fiber.StatusBadRequest, nil)
	}
	listing, err := h.Service.GetListing(c.Context(), id)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Listing fetched successfully", listing, nil)
}

// GET /api/v1/listings/filter-options
func (h *Handlers) FilterOptions(c *fiber.Ctx) error {
	opts, err := h.Service.FilterOptions(c.Context())
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Filter options fetched successfully", opts, nil)
}
