package compare

import (
	"context"
	"strings"

	"truckdeals-backend/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxCompare bounds the comparison set size.
const MaxCompare = 4

type Service struct {
	DB *gorm.DB
}

// Cell is one rendered value in a comparison row. Best marks the winning
// column(s) under the row's highlight policy; ties mark every tied column.
type Cell struct {
	Value string `json:"value"`
	Best  bool   `json:"best"`
}

type RowResult struct {
	Label string `json:"label"`
	Key   string `json:"key"`
	Cells []Cell `json:"cells"`
}

type SectionResult struct {
	Title string      `json:"title"`
	Rows  []RowResult `json:"rows"`
}

// Result is the rendered comparison table. Listings appear in request order.
type Result struct {
	Listings []domain.Listing `json:"listings"`
	Sections []SectionResult  `json:"sections"`
}

// ParseIDs normalizes the raw comma-separated id list. The size bound applies
// to the raw token count before any dropping; malformed tokens and duplicates
// are then discarded, first occurrence kept. An empty surviving set is a
// validation error.
func ParseIDs(raw string) ([]uuid.UUID, error) {
	tokens := make([]string, 0, MaxCompare)
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	if len(tokens) > MaxCompare {
		return nil, domain.NewValidation("at most %d listings can be compared, got %d", MaxCompare, len(tokens))
	}

	seen := map[uuid.UUID]bool{}
	ids := make([]uuid.UUID, 0, len(tokens))
	for _, t := range tokens {
		id, err := uuid.Parse(t)
		if err != nil || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, domain.NewValidation("no valid listing ids to compare")
	}
	return ids, nil
}

// Compare fetches the requested listings and renders the comparison table.
// Ids that resolve to no listing are silently dropped; the result preserves
// the request order of the ids that resolved. When none resolve the result
// carries zero listings and no sections.
func (s *Service) Compare(ctx context.Context, ids []uuid.UUID) (*Result, error) {
	var rows []domain.Listing
	if err := s.DB.WithContext(ctx).Where("listing_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, domain.NewStoreAccess("compare listings", err)
	}

	byID := make(map[uuid.UUID]*domain.Listing, len(rows))
	for i := range rows {
		byID[rows[i].ListingID] = &rows[i]
	}
	listings := make([]domain.Listing, 0, len(ids))
	for _, id := range ids {
		if l, ok := byID[id]; ok {
			listings = append(listings, *l)
		}
	}
	// nothing resolved is not an error; the table simply has no columns
	if len(listings) == 0 {
		return &Result{Listings: listings}, nil
	}

	res := &Result{Listings: listings}
	for _, section := range Sections() {
		sr := SectionResult{Title: section.Title}
		for _, row := range section.Rows {
			sr.Rows = append(sr.Rows, renderRow(row, listings))
		}
		res.Sections = append(res.Sections, sr)
	}
	return res, nil
}

func renderRow(row Row, listings []domain.Listing) RowResult {
	rr := RowResult{Label: row.Label, Key: row.Key, Cells: make([]Cell, len(listings))}
	for i := range listings {
		rr.Cells[i].Value = row.Format(&listings[i])
	}

	switch row.Policy {
	case LowerIsBetter, HigherIsBetter:
		var best int64
		found := false
		for i := range listings {
			v, ok := row.Number(&listings[i])
			if !ok {
				continue
			}
			if !found ||
				(row.Policy == LowerIsBetter && v < best) ||
				(row.Policy == HigherIsBetter && v > best) {
				best = v
				found = true
			}
		}
		if found {
			for i := range listings {
				if v, ok := row.Number(&listings[i]); ok && v == best {
					rr.Cells[i].Best = true
				}
			}
		}
	case BooleanPresence:
		for i := range listings {
			if row.Flag(&listings[i]) {
				rr.Cells[i].Best = true
			}
		}
	}
	return rr
}
