package emails

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	emailsvc "truckdeals-backend/internal/application/emails"
	listsvc "truckdeals-backend/internal/application/listings"
	"truckdeals-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func i64p(v int64) *int64 { return &v }

func setupEmailsTest(t *testing.T) (*Handlers, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Listing{}))
	h := &Handlers{
		Drafter:  &emailsvc.Drafter{BuyerName: "Alex Doe", BuyerPhone: "555-0100"},
		Listings: &listsvc.Service{DB: db},
	}
	return h, db
}

func seed(t *testing.T, db *gorm.DB) *domain.Listing {
	l := &domain.Listing{
		Source:          "test",
		SourceListingID: uuid.NewString(),
		Make:            "Toyota",
		Model:           "Tundra",
		Year:            2025,
		Price:           i64p(52000),
	}
	require.NoError(t, db.Create(l).Error)
	return l
}

func TestDraft_Direct(t *testing.T) {
	h, db := setupEmailsTest(t)
	app := fiber.New()
	app.Post("/draft", h.Draft)
	l := seed(t, db)

	body, _ := json.Marshal(map[string]interface{}{
		"template":   "direct",
		"listing_id": l.ListingID.String(),
	})
	req := httptest.NewRequest("POST", "/draft", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result struct {
		Data emailsvc.Draft `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "OTD Price Request - 2025 Toyota Tundra", result.Data.Subject)
	assert.Contains(t, result.Data.Body, "Alex Doe")
}

func TestDraft_UnknownListing404(t *testing.T) {
	h, _ := setupEmailsTest(t)
	app := fiber.New()
	app.Post("/draft", h.Draft)

	body, _ := json.Marshal(map[string]interface{}{
		"template":   "direct",
		"listing_id": uuid.NewString(),
	})
	req := httptest.NewRequest("POST", "/draft", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestDraft_CompetitiveRequiresPrice(t *testing.T) {
	h, db := setupEmailsTest(t)
	app := fiber.New()
	app.Post("/draft", h.Draft)
	l := seed(t, db)

	body, _ := json.Marshal(map[string]interface{}{
		"template":   "competitive",
		"listing_id": l.ListingID.String(),
	})
	req := httptest.NewRequest("POST", "/draft", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestDraft_UnknownTemplate(t *testing.T) {
	h, _ := setupEmailsTest(t)
	app := fiber.New()
	app.Post("/draft", h.Draft)

	body, _ := json.Marshal(map[string]interface{}{"template": "haggle"})
	req := httptest.NewRequest("POST", "/draft", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestDraft_Multi(t *testing.T) {
	h, db := setupEmailsTest(t)
	app := fiber.New()
	app.Post("/draft", h.Draft)
	a := seed(t, db)
	b := seed(t, db)

	body, _ := json.Marshal(map[string]interface{}{
		"template":    "multi",
		"listing_ids": []string{a.ListingID.String(), b.ListingID.String()},
	})
	req := httptest.NewRequest("POST", "/draft", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result struct {
		Data emailsvc.Draft `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "Quote Request - Toyota Tundra Inventory", result.Data.Subject)
	assert.Contains(t, result.Data.Body, "1. 2025 Toyota Tundra")
	assert.Contains(t, result.Data.Body, "2. 2025 Toyota Tundra")
}
