package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"truckdeals-backend/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

// ListingInput is one scraped listing as submitted by a collector. Pointer
// fields distinguish "not observed" from zero; absent fields never clobber
// stored values on refresh.
type ListingInput struct {
	Source          string `json:"source"`
	SourceListingID string `json:"source_listing_id"`

	Make  string  `json:"make"`
	Model string  `json:"model"`
	Year  int     `json:"year"`
	Trim  *string `json:"trim"`

	Price   *int64 `json:"price"`
	Msrp    *int64 `json:"msrp"`
	Mileage *int   `json:"mileage"`

	DealerName    *string `json:"dealer_name"`
	DealerPhone   *string `json:"dealer_phone"`
	DealerAddress *string `json:"dealer_address"`

	ListingURL  *string `json:"listing_url"`
	VIN         *string `json:"vin"`
	StockNumber *string `json:"stock_number"`

	CabType       *string `json:"cab_type"`
	BedLength     *string `json:"bed_length"`
	Drivetrain    *string `json:"drivetrain"`
	Engine        *string `json:"engine"`
	ExteriorColor *string `json:"exterior_color"`
	InteriorColor *string `json:"interior_color"`

	Features []string `json:"features"`
}

// UpsertResult reports what one upsert did to the store.
type UpsertResult struct {
	Listing   *domain.Listing `json:"listing"`
	Action    string          `json:"action"`
	PriceDrop bool            `json:"price_drop"`
}

// Summary aggregates a batch upsert.
type Summary struct {
	Inserted   int `json:"inserted"`
	Updated    int `json:"updated"`
	Unchanged  int `json:"unchanged"`
	PriceDrops int `json:"price_drops"`
	Skipped    int `json:"skipped"`
}

func (in *ListingInput) validate() error {
	var missing []string
	if strings.TrimSpace(in.Source) == "" {
		missing = append(missing, "source")
	}
	if strings.TrimSpace(in.SourceListingID) == "" {
		missing = append(missing, "source_listing_id")
	}
	if strings.TrimSpace(in.Make) == "" {
		missing = append(missing, "make")
	}
	if strings.TrimSpace(in.Model) == "" {
		missing = append(missing, "model")
	}
	if in.Year == 0 {
		missing = append(missing, "year")
	}
	if len(missing) > 0 {
		return domain.NewValidation("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Upsert inserts a new listing or refreshes an existing one, keyed on
// (source, source_listing_id). The price history is seeded with the first
// priced observation, whether that arrives at insert or on a later refresh;
// updates append a history entry on every observed price change and raise a
// price alert recording the change. Fields absent from the input leave the
// stored value untouched.
func (s *Service) Upsert(ctx context.Context, in *ListingInput) (*UpsertResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	tx := s.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, domain.NewStoreAccess("begin upsert", tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	res, err := s.upsertTx(tx, in)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, domain.NewStoreAccess("commit upsert", err)
	}
	return res, nil
}

func (s *Service) upsertTx(tx *gorm.DB, in *ListingInput) (*UpsertResult, error) {
	now := time.Now().UTC()

	var existing domain.Listing
	err := tx.Where("source = ? AND source_listing_id = ?", in.Source, in.SourceListingID).
		First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return s.insertTx(tx, in, now)
	case err != nil:
		return nil, domain.NewStoreAccess("lookup listing", err)
	}
	return s.refreshTx(tx, &existing, in, now)
}

func (s *Service) insertTx(tx *gorm.DB, in *ListingInput, now time.Time) (*UpsertResult, error) {
	l := &domain.Listing{
		Source:          in.Source,
		SourceListingID: in.SourceListingID,
		Make:            in.Make,
		Model:           in.Model,
		Year:            in.Year,
		Trim:            in.Trim,
		Price:           in.Price,
		Msrp:            in.Msrp,
		Mileage:         in.Mileage,
		DealerName:      in.DealerName,
		DealerPhone:     in.DealerPhone,
		DealerAddress:   in.DealerAddress,
		ListingURL:      in.ListingURL,
		VIN:             in.VIN,
		StockNumber:     in.StockNumber,
		CabType:         in.CabType,
		BedLength:       in.BedLength,
		Drivetrain:      in.Drivetrain,
		Engine:          in.Engine,
		ExteriorColor:   in.ExteriorColor,
		InteriorColor:   in.InteriorColor,
		FirstSeen:       now,
		LastSeen:        now,
	}
	for _, name := range in.Features {
		l.SetFeature(name, true)
	}
	if in.Price != nil {
		l.PriceHistory = domain.PriceHistory{{ObservedAt: now, Price: *in.Price}}
	}

	if err := tx.Create(l).Error; err != nil {
		return nil, domain.NewStoreAccess("insert listing", err)
	}
	if err := s.recordEvent(tx, l, domain.IngestInserted, nil, now); err != nil {
		return nil, err
	}
	return &UpsertResult{Listing: l, Action: domain.IngestInserted}, nil
}

func (s *Service) refreshTx(tx *gorm.DB, l *domain.Listing, in *ListingInput, now time.Time) (*UpsertResult, error) {
	oldPrice := l.Price
	priceChanged := in.Price != nil && oldPrice != nil && *in.Price != *oldPrice
	firstPrice := in.Price != nil && oldPrice == nil

	fillInt64(&l.Price, in.Price)
	fillInt64(&l.Msrp, in.Msrp)
	fillInt(&l.Mileage, in.Mileage)
	fillStr(&l.Trim, in.Trim)
	fillStr(&l.DealerName, in.DealerName)
	fillStr(&l.DealerPhone, in.DealerPhone)
	fillStr(&l.DealerAddress, in.DealerAddress)
	fillStr(&l.ListingURL, in.ListingURL)
	fillStr(&l.VIN, in.VIN)
	fillStr(&l.StockNumber, in.StockNumber)
	fillStr(&l.CabType, in.CabType)
	fillStr(&l.BedLength, in.BedLength)
	fillStr(&l.Drivetrain, in.Drivetrain)
	fillStr(&l.Engine, in.Engine)
	fillStr(&l.ExteriorColor, in.ExteriorColor)
	fillStr(&l.InteriorColor, in.InteriorColor)
	for _, name := range in.Features {
		l.SetFeature(name, true)
	}
	l.LastSeen = now

	action := domain.IngestUnchanged
	drop := false
	if firstPrice {
		// late first observation; seed the log so a later change still
		// forms an adjacent pair for the drop scan
		l.PriceHistory = append(l.PriceHistory, domain.PricePoint{ObservedAt: now, Price: *in.Price})
	}
	if priceChanged {
		action = domain.IngestUpdated
		l.PriceHistory = append(l.PriceHistory, domain.PricePoint{ObservedAt: now, Price: *in.Price})
		drop = *in.Price < *oldPrice
		// every change is recorded; the drop report filters later
		alert := &domain.PriceAlert{
			ListingID:  l.ListingID,
			OldPrice:   *oldPrice,
			NewPrice:   *in.Price,
			ChangeDate: now,
		}
		if err := tx.Create(alert).Error; err != nil {
			return nil, domain.NewStoreAccess("create price alert", err)
		}
	}

	if err := tx.Save(l).Error; err != nil {
		return nil, domain.NewStoreAccess("update listing", err)
	}
	if err := s.recordEvent(tx, l, action, priceDelta(oldPrice, in.Price, priceChanged), now); err != nil {
		return nil, err
	}
	return &UpsertResult{Listing: l, Action: action, PriceDrop: drop}, nil
}

// UpsertBatch applies a batch of inputs one at a time. An input that fails
// validation is counted as skipped; a store fault aborts the batch.
func (s *Service) UpsertBatch(ctx context.Context, inputs []ListingInput) (*Summary, error) {
	sum := &Summary{}
	for i := range inputs {
		res, err := s.Upsert(ctx, &inputs[i])
		if err != nil {
			if domain.IsValidation(err) {
				sum.Skipped++
				continue
			}
			return nil, err
		}
		switch res.Action {
		case domain.IngestInserted:
			sum.Inserted++
		case domain.IngestUpdated:
			sum.Updated++
		default:
			sum.Unchanged++
		}
		if res.PriceDrop {
			sum.PriceDrops++
		}
	}
	return sum, nil
}

func (s *Service) recordEvent(tx *gorm.DB, l *domain.Listing, action string, data map[string]interface{}, now time.Time) error {
	ev := &domain.IngestEvent{
		ListingID: l.ListingID,
		EventType: action,
		CreatedAt: now,
	}
	if data != nil {
		bs, err := json.Marshal(data)
		if err != nil {
			return domain.NewStoreAccess("encode ingest event", err)
		}
		ev.EventData = bs
	}
	if err := tx.Create(ev).Error; err != nil {
		return domain.NewStoreAccess("record ingest event", err)
	}
	return nil
}

func priceDelta(oldPrice, newPrice *int64, changed bool) map[string]interface{} {
	if !changed {
		return nil
	}
	return map[string]interface{}{"old_price": *oldPrice, "new_price": *newPrice}
}

func fillStr(dst **string, src *string) {
	if src != nil && *src != "" {
		*dst = src
	}
}

func fillInt64(dst **int64, src *int64) {
	if src != nil {
		*dst = src
	}
}

func fillInt(dst **int, src *int) {
	if src != nil {
		*dst = src
	}
}
