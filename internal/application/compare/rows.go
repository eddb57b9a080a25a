package compare

import (
	"strconv"

	"truckdeals-backend/internal/domain"
	"truckdeals-backend/internal/pkg/format"
)

// HighlightPolicy is the tagged rule for marking which listings in a
// comparison set have the best value for a row.
type HighlightPolicy int

const (
	NoHighlight HighlightPolicy = iota
	LowerIsBetter
	HigherIsBetter
	BooleanPresence
)

// Row is a declarative descriptor for one comparison table row. Format
// renders the display value; Number feeds the numeric policies and Flag the
// boolean-presence policy.
type Row struct {
	Label  string
	Key    string
	Policy HighlightPolicy
	Format func(*domain.Listing) string
	Number func(*domain.Listing) (int64, bool)
	Flag   func(*domain.Listing) bool
}

// Section groups rows under a heading. The grouping is static
// configuration, not derived data.
type Section struct {
	Title string
	Rows  []Row
}

// Sections returns the comparison table layout.
func Sections() []Section {
	sections := []Section{
		{
			Title: "Basic Info",
			Rows: []Row{
				{Label: "Year", Key: "year", Policy: HigherIsBetter,
					Format: func(l *domain.Listing) string {
						if l.Year == 0 {
							return emptyCell
						}
						return strconv.Itoa(l.Year)
					},
					Number: func(l *domain.Listing) (int64, bool) {
						if l.Year == 0 {
							return 0, false
						}
						return int64(l.Year), true
					}},
				{Label: "Trim", Key: "trim", Format: fmtString(func(l *domain.Listing) *string { return l.Trim })},
				{Label: "Price", Key: "price", Policy: LowerIsBetter,
					Format: fmtMoney(func(l *domain.Listing) *int64 { return l.Price }),
					Number: fmtNumber(func(l *domain.Listing) *int64 { return l.Price })},
				{Label: "MSRP", Key: "msrp",
					Format: fmtMoney(func(l *domain.Listing) *int64 { return l.Msrp })},
				{Label: "Savings off MSRP", Key: "savings", Policy: HigherIsBetter,
					Format: func(l *domain.Listing) string {
						if v, ok := savings(l); ok {
							return format.Money(v)
						}
						return emptyCell
					},
					Number: savings},
				{Label: "Mileage", Key: "mileage", Policy: LowerIsBetter,
					Format: func(l *domain.Listing) string {
						if l.Mileage == nil {
							return emptyCell
						}
						return format.Comma(int64(*l.Mileage)) + " mi"
					},
					Number: func(l *domain.Listing) (int64, bool) {
						if l.Mileage == nil {
							return 0, false
						}
						return int64(*l.Mileage), true
					}},
			},
		},
		{
			Title: "Configuration",
			Rows: []Row{
				{Label: "Cab Type", Key: "cab_type", Format: fmtString(func(l *domain.Listing) *string { return l.CabType })},
				{Label: "Bed Length", Key: "bed_length", Format: fmtString(func(l *domain.Listing) *string { return l.BedLength })},
				{Label: "Drivetrain", Key: "drivetrain", Format: fmtString(func(l *domain.Listing) *string { return l.Drivetrain })},
				{Label: "Engine", Key: "engine", Format: fmtString(func(l *domain.Listing) *string { return l.Engine })},
				{Label: "Exterior Color", Key: "exterior_color", Format: fmtString(func(l *domain.Listing) *string { return l.ExteriorColor })},
				{Label: "Interior Color", Key: "interior_color", Format: fmtString(func(l *domain.Listing) *string { return l.InteriorColor })},
			},
		},
		{Title: "Comfort", Rows: featureRows(
			domain.FeatureMoonroof, domain.FeatureLeather, domain.FeatureHeatedSeats,
			domain.FeatureVentilatedSeats, domain.FeaturePremiumSound, domain.FeaturePowerTailgate,
		)},
		{Title: "Technology & Safety", Rows: featureRows(
			domain.FeatureNavigation, domain.Feature360Camera, domain.FeatureHeadsUpDisplay,
			domain.FeatureWirelessCharging, domain.FeatureBlindSpot, domain.FeatureLaneKeep,
			domain.FeatureAdaptiveCruise,
		)},
		{Title: "Capability", Rows: featureRows(
			domain.FeatureTowPackage, domain.FeatureMaxTowPackage, domain.FeatureOffroadPackage,
		)},
		{
			Title: "Dealer Info",
			Rows: []Row{
				{Label: "Dealer", Key: "dealer_name", Format: fmtString(func(l *domain.Listing) *string { return l.DealerName })},
				{Label: "Phone", Key: "dealer_phone", Format: fmtString(func(l *domain.Listing) *string { return l.DealerPhone })},
				{Label: "Address", Key: "dealer_address", Format: fmtString(func(l *domain.Listing) *string { return l.DealerAddress })},
				{Label: "Source", Key: "source", Format: func(l *domain.Listing) string { return l.Source }},
				{Label: "Stock #", Key: "stock_number", Format: fmtString(func(l *domain.Listing) *string { return l.StockNumber })},
			},
		},
	}
	return sections
}

const emptyCell = "N/A"

// savings is the derived msrp-minus-price row: present only when both are
// set and msrp exceeds price.
func savings(l *domain.Listing) (int64, bool) {
	if l.Msrp == nil || l.Price == nil || *l.Msrp <= *l.Price {
		return 0, false
	}
	return *l.Msrp - *l.Price, true
}

func featureRows(names ...string) []Row {
	rows := make([]Row, 0, len(names))
	for _, name := range names {
		n := name
		rows = append(rows, Row{
			Label:  domain.FeatureLabels[n],
			Key:    n,
			Policy: BooleanPresence,
			Format: func(l *domain.Listing) string {
				if on, _ := l.Feature(n); on {
					return "Yes"
				}
				return "No"
			},
			Flag: func(l *domain.Listing) bool {
				on, _ := l.Feature(n)
				return on
			},
		})
	}
	return rows
}

func fmtString(attr func(*domain.Listing) *string) func(*domain.Listing) string {
	return func(l *domain.Listing) string {
		v := attr(l)
		if v == nil || *v == "" {
			return emptyCell
		}
		return *v
	}
}

func fmtMoney(attr func(*domain.Listing) *int64) func(*domain.Listing) string {
	return func(l *domain.Listing) string {
		v := attr(l)
		if v == nil {
			return emptyCell
		}
		return format.Money(*v)
	}
}

func fmtNumber(attr func(*domain.Listing) *int64) func(*domain.Listing) (int64, bool) {
	return func(l *domain.Listing) (int64, bool) {
		v := attr(l)
		if v == nil {
			return 0, false
		}
		return *v, true
	}
}
