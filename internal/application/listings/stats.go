package listings

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"truckdeals-backend/internal/domain"

	"github.com/google/uuid"
)

// DropWindow is the trailing lookback for price-drop detection.
const DropWindow = 7 * 24 * time.Hour

// PairStats is the aggregate for one tracked make/model pair.
type PairStats struct {
	Make     string `json:"make"`
	Model    string `json:"model"`
	Count    int    `json:"count"`
	MinPrice *int64 `json:"min_price"`
}

// Stats is the on-demand summary aggregate. TotalListings sums the tracked
// pairs only, not the full store; feature prevalence always covers the
// entire store, independent of any active filter.
type Stats struct {
	Pairs             []PairStats    `json:"pairs"`
	TotalListings     int            `json:"total_listings"`
	PriceDrops        int            `json:"price_drops"`
	FeaturePrevalence map[string]int `json:"feature_prevalence"`
}

// PriceDrop is one detected in-window price decrease, joined with the
// listing fields a report needs. Derived, never persisted here.
type PriceDrop struct {
	ListingID  uuid.UUID `json:"listing_id"`
	Make       string    `json:"make"`
	Model      string    `json:"model"`
	Year       int       `json:"year"`
	Trim       *string   `json:"trim"`
	DealerName *string   `json:"dealer_name"`
	ListingURL *string   `json:"listing_url"`
	OldPrice   int64     `json:"old_price"`
	NewPrice   int64     `json:"new_price"`
	ChangedAt  time.Time `json:"changed_at"`
}

// Stats computes the summary aggregate as of now.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{FeaturePrevalence: map[string]int{}}

	for _, tv := range s.Tracked {
		var count int64
		if err := s.DB.WithContext(ctx).Model(&domain.Listing{}).
			Where("LOWER(make) = ? AND LOWER(model) = ?", tv.Make, tv.Model).
			Count(&count).Error; err != nil {
			return nil, domain.NewStoreAccess("stats count", err)
		}

		var minPrice sql.NullInt64
		row := s.DB.WithContext(ctx).Model(&domain.Listing{}).
			Where("LOWER(make) = ? AND LOWER(model) = ?", tv.Make, tv.Model).
			Select("MIN(price)").Row()
		if err := row.Scan(&minPrice); err != nil {
			return nil, domain.NewStoreAccess("stats min price", err)
		}

		ps := PairStats{Make: tv.Make, Model: tv.Model, Count: int(count)}
		if minPrice.Valid {
			v := minPrice.Int64
			ps.MinPrice = &v
		}
		st.Pairs = append(st.Pairs, ps)
		st.TotalListings += ps.Count
	}

	var all []domain.Listing
	if err := s.DB.WithContext(ctx).Find(&all).Error; err != nil {
		return nil, domain.NewStoreAccess("stats prevalence", err)
	}
	for _, name := range domain.FeatureFlags {
		st.FeaturePrevalence[name] = 0
	}
	for i := range all {
		for _, name := range domain.FeatureFlags {
			if on, _ := all[i].Feature(name); on {
				st.FeaturePrevalence[name]++
			}
		}
	}

	drops, err := s.PriceDrops(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	st.PriceDrops = len(drops)
	return st, nil
}

// PriceDrops scans every listing's price-history log and emits one entry for
// each adjacent pair where the later price is strictly lower and the later
// timestamp falls within [now - DropWindow, now]. A listing that dropped
// more than once in-window emits more than once. Ordered most recent first.
func (s *Service) PriceDrops(ctx context.Context, now time.Time) ([]PriceDrop, error) {
	var all []domain.Listing
	if err := s.DB.WithContext(ctx).Find(&all).Error; err != nil {
		return nil, domain.NewStoreAccess("price drops", err)
	}

	cutoff := now.Add(-DropWindow)
	drops := make([]PriceDrop, 0)
	for i := range all {
		l := &all[i]
		h := l.PriceHistory
		for j := 1; j < len(h); j++ {
			prev, cur := h[j-1], h[j]
			if cur.Price >= prev.Price {
				continue
			}
			if cur.ObservedAt.Before(cutoff) || cur.ObservedAt.After(now) {
				continue
			}
			drops = append(drops, PriceDrop{
				ListingID:  l.ListingID,
				Make:       l.Make,
				Model:      l.Model,
				Year:       l.Year,
				Trim:       l.Trim,
				DealerName: l.DealerName,
				ListingURL: l.ListingURL,
				OldPrice:   prev.Price,
				NewPrice:   cur.Price,
				ChangedAt:  cur.ObservedAt,
			})
		}
	}

	sort.SliceStable(drops, func(a, b int) bool {
		return drops[a].ChangedAt.After(drops[b].ChangedAt)
	})
	return drops, nil
}
