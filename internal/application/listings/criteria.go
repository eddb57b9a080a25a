package listings

import (
	"strconv"
	"strings"

	"truckdeals-backend/internal/domain"
)

// FilterCriteria is the normalized query specification built once per
// request from raw string params and consumed by BuildPredicate. Multi-valued
// fields that match case-insensitively (trim, colors, dealer, features) hold
// lower-cased tokens; exact-match fields (cab type, bed length, drivetrain,
// engine) keep the caller's casing.
type FilterCriteria struct {
	Make  string
	Model string

	PriceMin *int64
	PriceMax *int64
	YearMin  *int
	YearMax  *int

	Trims          []string
	CabTypes       []string
	BedLengths     []string
	Drivetrains    []string
	Engines        []string
	ExteriorColors []string
	InteriorColors []string
	Dealers        []string

	Features []string
}

// ParseCriteria normalizes raw query params into criteria. A value that does
// not parse (bad number, unknown feature name) degrades to "no constraint"
// instead of failing the request; partial filters are common while a user is
// still typing.
func ParseCriteria(params map[string]string) FilterCriteria {
	fc := FilterCriteria{
		Make:  strings.TrimSpace(params["make"]),
		Model: strings.TrimSpace(params["model"]),

		PriceMin: parseInt64(params["priceMin"]),
		PriceMax: parseInt64(params["priceMax"]),
		YearMin:  parseInt(params["yearMin"]),
		YearMax:  parseInt(params["yearMax"]),

		Trims:          splitLower(params["trim"]),
		CabTypes:       splitExact(params["cabType"]),
		BedLengths:     splitExact(params["bedLength"]),
		Drivetrains:    splitExact(params["drivetrain"]),
		Engines:        splitExact(params["engine"]),
		ExteriorColors: splitLower(params["exteriorColor"]),
		InteriorColors: splitLower(params["interiorColor"]),
		Dealers:        splitLower(params["dealer"]),
	}
	for _, tok := range splitLower(params["features"]) {
		if domain.IsFeatureFlag(tok) {
			fc.Features = append(fc.Features, tok)
		}
	}
	return fc
}

func parseInt64(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// splitExact splits a comma-separated value, trims whitespace and drops
// empty tokens, preserving case.
func splitExact(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

func splitLower(s string) []string {
	tokens := splitExact(s)
	for i, tok := range tokens {
		tokens[i] = strings.ToLower(tok)
	}
	return tokens
}
