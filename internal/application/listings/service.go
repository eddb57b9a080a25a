package listings

import (
	"context"
	"errors"

	"truckdeals-backend/internal/config"
	"truckdeals-backend/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// List modes.
const (
	ModeListings = "listings"
	ModeStats    = "stats"
	ModeDrops    = "drops"
)

type Service struct {
	DB      *gorm.DB
	Tracked []config.TrackedVehicle
}

// List returns the filtered listing set, price ascending with unset prices
// last. Make/model equality is pushed down to the store; the remaining
// categories run as a compiled predicate over the candidate rows.
func (s *Service) List(ctx context.Context, fc FilterCriteria) ([]domain.Listing, error) {
	q := s.DB.WithContext(ctx).Model(&domain.Listing{})
	if fc.Make != "" {
		q = q.Where("LOWER(make) = LOWER(?)", fc.Make)
	}
	if fc.Model != "" {
		q = q.Where("LOWER(model) = LOWER(?)", fc.Model)
	}

	var rows []domain.Listing
	if err := q.Order("price IS NULL, price ASC, listing_id ASC").Find(&rows).Error; err != nil {
		return nil, domain.NewStoreAccess("list listings", err)
	}

	pred := BuildPredicate(fc)
	out := make([]domain.Listing, 0, len(rows))
	for i := range rows {
		if pred(&rows[i]) {
			out = append(out, rows[i])
		}
	}
	return out, nil
}

// GetListing fetches one listing by id.
func (s *Service) GetListing(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	var listing domain.Listing
	if err := s.DB.WithContext(ctx).Where("listing_id = ?", id).First(&listing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("Listing")
		}
		return nil, domain.NewStoreAccess("get listing", err)
	}
	return &listing, nil
}

// FilterOptions is the facet vocabulary used to populate filter UIs: the
// distinct observed values per facet plus the fixed feature taxonomy.
type FilterOptions struct {
	Years          []int               `json:"years"`
	ExteriorColors []string            `json:"exterior_colors"`
	InteriorColors []string            `json:"interior_colors"`
	Dealers        []string            `json:"dealers"`
	CabTypes       []string            `json:"cab_types"`
	BedLengths     []string            `json:"bed_lengths"`
	Drivetrains    []string            `json:"drivetrains"`
	Engines        []string            `json:"engines"`
	TrimsByMake    map[string][]string `json:"trims_by_make"`
	Features       []FeatureOption     `json:"features"`
}

type FeatureOption struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// FilterOptions projects the store's distinct-value sets; it carries no
// filtering logic of its own.
func (s *Service) FilterOptions(ctx context.Context) (*FilterOptions, error) {
	opts := &FilterOptions{TrimsByMake: map[string][]string{}}

	if err := s.DB.WithContext(ctx).Model(&domain.Listing{}).
		Distinct("year").Order("year DESC").Pluck("year", &opts.Years).Error; err != nil {
		return nil, domain.NewStoreAccess("filter options", err)
	}

	stringFacets := []struct {
		column string
		dest   *[]string
	}{
		{"exterior_color", &opts.ExteriorColors},
		{"interior_color", &opts.InteriorColors},
		{"dealer_name", &opts.Dealers},
		{"cab_type", &opts.CabTypes},
		{"bed_length", &opts.BedLengths},
		{"drivetrain", &opts.Drivetrains},
		{"engine", &opts.Engines},
	}
	for _, f := range stringFacets {
		if err := s.DB.WithContext(ctx).Model(&domain.Listing{}).
			Where(f.column+" IS NOT NULL AND "+f.column+" <> ''").
			Distinct(f.column).Order(f.column + " ASC").
			Pluck(f.column, f.dest).Error; err != nil {
			return nil, domain.NewStoreAccess("filter options", err)
		}
	}

	var pairs []struct {
		Make string
		Trim string
	}
	if err := s.DB.WithContext(ctx).Model(&domain.Listing{}).
		Where("trim IS NOT NULL AND trim <> ''").
		Distinct("make", "trim").Order("make ASC, trim ASC").
		Find(&pairs).Error; err != nil {
		return nil, domain.NewStoreAccess("filter options", err)
	}
	for _, p := range pairs {
		opts.TrimsByMake[p.Make] = append(opts.TrimsByMake[p.Make], p.Trim)
	}

	for _, name := range domain.FeatureFlags {
		opts.Features = append(opts.Features, FeatureOption{Name: name, Label: domain.FeatureLabels[name]})
	}
	return opts, nil
}
