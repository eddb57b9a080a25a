package listings

import (
	"context"
	"testing"

	"truckdeals-backend/internal/config"
	"truckdeals-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupServiceTest(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Listing{}, &domain.PriceAlert{}))
	return &Service{DB: db, Tracked: []config.TrackedVehicle{
		{Make: "toyota", Model: "tundra"},
		{Make: "ford", Model: "f-150"},
	}}
}

func seed(t *testing.T, db *gorm.DB, l *domain.Listing) *domain.Listing {
	if l.Source == "" {
		l.Source = "test"
	}
	if l.SourceListingID == "" {
		l.SourceListingID = uuid.NewString()
	}
	require.NoError(t, db.Create(l).Error)
	return l
}

func TestList_OrderedByPriceNullsLast(t *testing.T) {
	s := setupServiceTest(t)
	seed(t, s.DB, &domain.Listing{Make: "Toyota", Model: "Tundra", Year: 2025, Price: i64p(55000)})
	seed(t, s.DB, &domain.Listing{Make: "Toyota", Model: "Tundra", Year: 2025})
	seed(t, s.DB, &domain.Listing{Make: "Toyota", Model: "Tundra", Year: 2025, Price: i64p(49000)})

	rows, err := s.List(context.Background(), FilterCriteria{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, int64(49000), *rows[0].Price)
	assert.Equal(t, int64(55000), *rows[1].Price)
	assert.Nil(t, rows[2].Price)
}

func TestList_MakeAndFeatureFilter(t *testing.T) {
	s := setupServiceTest(t)
	a := seed(t, s.DB, &domain.Listing{Make: "Toyota", Model: "Tundra", Year: 2025, Price: i64p(52000), HasMoonroof: true})
	seed(t, s.DB, &domain.Listing{Make: "Toyota", Model: "Tundra", Year: 2024, Price: i64p(49000)})

	rows, err := s.List(context.Background(), ParseCriteria(map[string]string{
		"make":     "toyota",
		"features": "has_moonroof",
	}))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, a.ListingID, rows[0].ListingID)
	assert.Equal(t, 2025, rows[0].Year)
}

func TestList_Idempotent(t *testing.T) {
	s := setupServiceTest(t)
	seed(t, s.DB, &domain.Listing{Make: "Toyota", Model: "Tundra", Year: 2025, Price: i64p(52000)})
	seed(t, s.DB, &domain.Listing{Make: "Toyota", Model: "Tundra", Year: 2024, Price: i64p(52000)})
	seed(t, s.DB, &domain.Listing{Make: "Toyota", Model: "Tundra", Year: 2023, Price: i64p(49000)})

	fc := ParseCriteria(map[string]string{"make": "toyota"})
	first, err := s.List(context.Background(), fc)
	require.NoError(t, err)
	second, err := s.List(context.Background(), fc)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ListingID, second[i].ListingID)
	}
}

func TestGetListing_NotFound(t *testing.T) {
	s := setupServiceTest(t)
	_, err := s.GetListing(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestFilterOptions_Facets(t *testing.T) {
	s := setupServiceTest(t)
	seed(t, s.DB, &domain.Listing{
		Make: "Toyota", Model: "Tundra", Year: 2025,
		Trim: strp("SR5"), ExteriorColor: strp("white"), CabType: strp("CrewMax"),
		DealerName: strp("Desert Toyota"),
	})
	seed(t, s.DB, &domain.Listing{
		Make: "Toyota", Model: "Tundra", Year: 2024,
		Trim: strp("Limited"), ExteriorColor: strp("black"),
	})
	seed(t, s.DB, &domain.Listing{
		Make: "Ford", Model: "F-150", Year: 2025, Trim: strp("XLT"),
	})

	opts, err := s.FilterOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{2025, 2024}, opts.Years)
	assert.Equal(t, []string{"black", "white"}, opts.ExteriorColors)
	assert.Equal(t, []string{"Desert Toyota"}, opts.Dealers)
	assert.Equal(t, []string{"CrewMax"}, opts.CabTypes)
	assert.Equal(t, []string{"Limited", "SR5"}, opts.TrimsByMake["Toyota"])
	assert.Equal(t, []string{"XLT"}, opts.TrimsByMake["Ford"])
	require.Len(t, opts.Features, len(domain.FeatureFlags))
	assert.Equal(t, "has_moonroof", opts.Features[0].Name)
	assert.Equal(t, "Moonroof", opts.Features[0].Label)
}
