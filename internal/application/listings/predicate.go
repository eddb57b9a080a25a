package listings

import (
	"strings"

	"truckdeals-backend/internal/domain"
)

// Predicate is a boolean test over a single listing record.
type Predicate func(*domain.Listing) bool

// BuildPredicate compiles criteria into one predicate: each populated
// category contributes a unit predicate (itself an OR over the category's
// values) and the result is the AND of all units. Matching rules:
//   - make/model: exact, case-insensitive equality
//   - trim, colors, dealer: case-insensitive substring containment
//   - cab type, bed length, drivetrain, engine: exact, case-sensitive
//   - numeric ranges: inclusive on both bounds; a listing without the
//     attribute passes the range check
//   - features: every requested flag must be true
func BuildPredicate(fc FilterCriteria) Predicate {
	var units []Predicate

	if fc.Make != "" {
		mk := fc.Make
		units = append(units, func(l *domain.Listing) bool { return strings.EqualFold(l.Make, mk) })
	}
	if fc.Model != "" {
		md := fc.Model
		units = append(units, func(l *domain.Listing) bool { return strings.EqualFold(l.Model, md) })
	}
	if fc.PriceMin != nil || fc.PriceMax != nil {
		min, max := fc.PriceMin, fc.PriceMax
		units = append(units, func(l *domain.Listing) bool {
			if l.Price == nil {
				return true
			}
			if min != nil && *l.Price < *min {
				return false
			}
			if max != nil && *l.Price > *max {
				return false
			}
			return true
		})
	}
	if fc.YearMin != nil || fc.YearMax != nil {
		min, max := fc.YearMin, fc.YearMax
		units = append(units, func(l *domain.Listing) bool {
			if l.Year == 0 {
				return true
			}
			if min != nil && l.Year < *min {
				return false
			}
			if max != nil && l.Year > *max {
				return false
			}
			return true
		})
	}

	if len(fc.Trims) > 0 {
		units = append(units, containsAnyUnit(fc.Trims, func(l *domain.Listing) *string { return l.Trim }))
	}
	if len(fc.ExteriorColors) > 0 {
		units = append(units, containsAnyUnit(fc.ExteriorColors, func(l *domain.Listing) *string { return l.ExteriorColor }))
	}
	if len(fc.InteriorColors) > 0 {
		units = append(units, containsAnyUnit(fc.InteriorColors, func(l *domain.Listing) *string { return l.InteriorColor }))
	}
	if len(fc.Dealers) > 0 {
		units = append(units, containsAnyUnit(fc.Dealers, func(l *domain.Listing) *string { return l.DealerName }))
	}

	if len(fc.CabTypes) > 0 {
		units = append(units, equalsAnyUnit(fc.CabTypes, func(l *domain.Listing) *string { return l.CabType }))
	}
	if len(fc.BedLengths) > 0 {
		units = append(units, equalsAnyUnit(fc.BedLengths, func(l *domain.Listing) *string { return l.BedLength }))
	}
	if len(fc.Drivetrains) > 0 {
		units = append(units, equalsAnyUnit(fc.Drivetrains, func(l *domain.Listing) *string { return l.Drivetrain }))
	}
	if len(fc.Engines) > 0 {
		units = append(units, equalsAnyUnit(fc.Engines, func(l *domain.Listing) *string { return l.Engine }))
	}

	if len(fc.Features) > 0 {
		features := fc.Features
		units = append(units, func(l *domain.Listing) bool {
			for _, name := range features {
				if on, ok := l.Feature(name); !ok || !on {
					return false
				}
			}
			return true
		})
	}

	return func(l *domain.Listing) bool {
		for _, unit := range units {
			if !unit(l) {
				return false
			}
		}
		return true
	}
}

// containsAnyUnit matches when the lower-cased attribute contains any of the
// (already lower-cased) wanted tokens. A nil attribute matches nothing.
func containsAnyUnit(wanted []string, attr func(*domain.Listing) *string) Predicate {
	return func(l *domain.Listing) bool {
		v := attr(l)
		if v == nil {
			return false
		}
		lower := strings.ToLower(*v)
		for _, w := range wanted {
			if strings.Contains(lower, w) {
				return true
			}
		}
		return false
	}
}

// equalsAnyUnit matches when the attribute equals any wanted token exactly,
// case-sensitive. A nil attribute matches nothing.
func equalsAnyUnit(wanted []string, attr func(*domain.Listing) *string) Predicate {
	return func(l *domain.Listing) bool {
		v := attr(l)
		if v == nil {
			return false
		}
		for _, w := range wanted {
			if *v == w {
				return true
			}
		}
		return false
	}
}
