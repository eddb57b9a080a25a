package listings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCriteria_Numbers(t *testing.T) {
	fc := ParseCriteria(map[string]string{
		"priceMin": "40000",
		"priceMax": "60000",
		"yearMin":  "2023",
		"yearMax":  "2025",
	})
	require.NotNil(t, fc.PriceMin)
	require.NotNil(t, fc.PriceMax)
	assert.Equal(t, int64(40000), *fc.PriceMin)
	assert.Equal(t, int64(60000), *fc.PriceMax)
	require.NotNil(t, fc.YearMin)
	require.NotNil(t, fc.YearMax)
	assert.Equal(t, 2023, *fc.YearMin)
	assert.Equal(t, 2025, *fc.YearMax)
}

func TestParseCriteria_BadNumberDegradesToNoConstraint(t *testing.T) {
	fc := ParseCriteria(map[string]string{
		"priceMin": "cheap",
		"yearMax":  "202x",
	})
	assert.Nil(t, fc.PriceMin)
	assert.Nil(t, fc.YearMax)
}

func TestParseCriteria_UnknownFeatureDropped(t *testing.T) {
	fc := ParseCriteria(map[string]string{
		"features": "has_moonroof,has_flux_capacitor,has_tow_package",
	})
	assert.Equal(t, []string{"has_moonroof", "has_tow_package"}, fc.Features)
}

func TestParseCriteria_CasingPerCategory(t *testing.T) {
	fc := ParseCriteria(map[string]string{
		"trim":    "SR5, Limited",
		"cabType": "CrewMax",
		"dealer":  "Bob's Trucks",
	})
	// substring categories are lower-cased, exact categories keep casing
	assert.Equal(t, []string{"sr5", "limited"}, fc.Trims)
	assert.Equal(t, []string{"CrewMax"}, fc.CabTypes)
	assert.Equal(t, []string{"bob's trucks"}, fc.Dealers)
}

func TestParseCriteria_EmptyTokensDropped(t *testing.T) {
	fc := ParseCriteria(map[string]string{"trim": " , SR5, ,"})
	assert.Equal(t, []string{"sr5"}, fc.Trims)
}

func TestParseCriteria_Empty(t *testing.T) {
	fc := ParseCriteria(map[string]string{})
	assert.Empty(t, fc.Make)
	assert.Nil(t, fc.PriceMin)
	assert.Nil(t, fc.Trims)
	assert.Nil(t, fc.Features)
}
