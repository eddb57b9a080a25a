package listings

import (
	"testing"

	"truckdeals-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func strp(s string) *string { return &s }
func i64p(v int64) *int64   { return &v }

func tundra(price int64) *domain.Listing {
	return &domain.Listing{
		Make:  "Toyota",
		Model: "Tundra",
		Year:  2025,
		Trim:  strp("SR5 Limited Premium"),
		Price: i64p(price),
	}
}

func TestPredicate_EmptyCriteriaMatchesAll(t *testing.T) {
	pred := BuildPredicate(FilterCriteria{})
	assert.True(t, pred(tundra(52000)))
	assert.True(t, pred(&domain.Listing{Make: "Ford", Model: "F-150"}))
}

func TestPredicate_MakeModelCaseInsensitive(t *testing.T) {
	pred := BuildPredicate(FilterCriteria{Make: "toyota", Model: "TUNDRA"})
	assert.True(t, pred(tundra(52000)))
	assert.False(t, pred(&domain.Listing{Make: "Ford", Model: "F-150"}))
}

func TestPredicate_CategoriesAreConjunctive(t *testing.T) {
	pred := BuildPredicate(FilterCriteria{Make: "toyota", Trims: []string{"sr5"}})
	assert.True(t, pred(tundra(52000)))

	ford := &domain.Listing{Make: "Ford", Model: "F-150", Trim: strp("SR5")}
	assert.False(t, pred(ford))
}

func TestPredicate_WithinCategoryIsDisjunctive(t *testing.T) {
	pred := BuildPredicate(FilterCriteria{Trims: []string{"platinum", "limited"}})
	assert.True(t, pred(tundra(52000))) // matches "limited"

	other := &domain.Listing{Trim: strp("XLT")}
	assert.False(t, pred(other))
}

func TestPredicate_TrimSubstringContainment(t *testing.T) {
	pred := BuildPredicate(FilterCriteria{Trims: []string{"limited"}})
	// "Limited" inside "SR5 Limited Premium"
	assert.True(t, pred(tundra(52000)))
}

func TestPredicate_ExactCategoriesCaseSensitive(t *testing.T) {
	l := &domain.Listing{CabType: strp("CrewMax")}
	assert.True(t, BuildPredicate(FilterCriteria{CabTypes: []string{"CrewMax"}})(l))
	assert.False(t, BuildPredicate(FilterCriteria{CabTypes: []string{"crewmax"}})(l))
}

func TestPredicate_NilAttributeFailsCategoryMatch(t *testing.T) {
	l := &domain.Listing{Make: "Toyota"}
	assert.False(t, BuildPredicate(FilterCriteria{Trims: []string{"sr5"}})(l))
	assert.False(t, BuildPredicate(FilterCriteria{Drivetrains: []string{"4WD"}})(l))
}

func TestPredicate_PriceRangeInclusive(t *testing.T) {
	pred := BuildPredicate(FilterCriteria{PriceMin: i64p(50000), PriceMax: i64p(52000)})
	assert.True(t, pred(tundra(50000)))
	assert.True(t, pred(tundra(52000)))
	assert.False(t, pred(tundra(49999)))
	assert.False(t, pred(tundra(52001)))
}

func TestPredicate_NilPricePassesRange(t *testing.T) {
	pred := BuildPredicate(FilterCriteria{PriceMin: i64p(50000)})
	assert.True(t, pred(&domain.Listing{Make: "Toyota"}))
}

func TestPredicate_YearRangeInclusive(t *testing.T) {
	pred := BuildPredicate(FilterCriteria{YearMin: intp(2024), YearMax: intp(2025)})
	assert.True(t, pred(&domain.Listing{Year: 2024}))
	assert.True(t, pred(&domain.Listing{Year: 2025}))
	assert.False(t, pred(&domain.Listing{Year: 2023}))
}

func TestPredicate_FeaturesConjunctive(t *testing.T) {
	pred := BuildPredicate(FilterCriteria{Features: []string{"has_moonroof", "has_tow_package"}})

	both := &domain.Listing{HasMoonroof: true, HasTowPackage: true}
	onlyOne := &domain.Listing{HasMoonroof: true}
	assert.True(t, pred(both))
	assert.False(t, pred(onlyOne))
}

func intp(v int) *int { return &v }
