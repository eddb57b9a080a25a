package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PricePoint is one observed price in a listing's history log.
type PricePoint struct {
	ObservedAt time.Time `json:"observed_at"`
	Price      int64     `json:"price"`
}

// PriceHistory stores the ordered price log as a JSON column but exposes it
// as a typed slice, so API responses send an array and the aggregator can
// walk adjacent entries without re-parsing.
type PriceHistory []PricePoint

// MarshalJSON sends an empty history as [] rather than null.
func (h PriceHistory) MarshalJSON() ([]byte, error) {
	if h == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]PricePoint(h))
}

// Scan implements sql.Scanner for reading from the DB (json column).
func (h *PriceHistory) Scan(value interface{}) error {
	if value == nil {
		*h = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for PriceHistory")
	}
	if len(raw) == 0 {
		*h = nil
		return nil
	}
	var points []PricePoint
	if err := json.Unmarshal(raw, &points); err != nil {
		return err
	}
	*h = points
	return nil
}

// Value implements driver.Valuer for writing to the DB.
func (h PriceHistory) Value() (driver.Value, error) {
	if h == nil {
		return "[]", nil
	}
	bs, err := json.Marshal([]PricePoint(h))
	if err != nil {
		return nil, err
	}
	return string(bs), nil
}

// Listing is one observed vehicle offer. A listing is unique per
// (source, source_listing_id); listing_id is the stable internal identifier.
// Nullable columns use pointers so an unknown price sorts after known ones
// and never reads as zero.
type Listing struct {
	ListingID       uuid.UUID `gorm:"column:listing_id;type:uuid;primaryKey" json:"listing_id"`
	Source          string    `gorm:"column:source;not null;uniqueIndex:idx_source_listing" json:"source"`
	SourceListingID string    `gorm:"column:source_listing_id;not null;uniqueIndex:idx_source_listing" json:"source_listing_id"`

	Make  string  `gorm:"column:make;not null;index:idx_make_model" json:"make"`
	Model string  `gorm:"column:model;not null;index:idx_make_model" json:"model"`
	Year  int     `gorm:"column:year;not null" json:"year"`
	Trim  *string `gorm:"column:trim" json:"trim"`

	Price   *int64 `gorm:"column:price;index" json:"price"`
	Msrp    *int64 `gorm:"column:msrp" json:"msrp"`
	Mileage *int   `gorm:"column:mileage" json:"mileage"`

	DealerName    *string `gorm:"column:dealer_name" json:"dealer_name"`
	DealerPhone   *string `gorm:"column:dealer_phone" json:"dealer_phone"`
	DealerAddress *string `gorm:"column:dealer_address" json:"dealer_address"`

	ListingURL  *string `gorm:"column:listing_url" json:"listing_url"`
	VIN         *string `gorm:"column:vin" json:"vin"`
	StockNumber *string `gorm:"column:stock_number" json:"stock_number"`

	CabType       *string `gorm:"column:cab_type" json:"cab_type"`
	BedLength     *string `gorm:"column:bed_length" json:"bed_length"`
	Drivetrain    *string `gorm:"column:drivetrain" json:"drivetrain"`
	Engine        *string `gorm:"column:engine" json:"engine"`
	ExteriorColor *string `gorm:"column:exterior_color" json:"exterior_color"`
	InteriorColor *string `gorm:"column:interior_color" json:"interior_color"`

	HasMoonroof         bool `gorm:"column:has_moonroof;not null;default:false" json:"has_moonroof"`
	HasLeather          bool `gorm:"column:has_leather;not null;default:false" json:"has_leather"`
	HasHeatedSeats      bool `gorm:"column:has_heated_seats;not null;default:false" json:"has_heated_seats"`
	HasVentilatedSeats  bool `gorm:"column:has_ventilated_seats;not null;default:false" json:"has_ventilated_seats"`
	HasPremiumSound     bool `gorm:"column:has_premium_sound;not null;default:false" json:"has_premium_sound"`
	HasPowerTailgate    bool `gorm:"column:has_power_tailgate;not null;default:false" json:"has_power_tailgate"`
	HasNavigation       bool `gorm:"column:has_navigation;not null;default:false" json:"has_navigation"`
	Has360Camera        bool `gorm:"column:has_360_camera;not null;default:false" json:"has_360_camera"`
	HasHeadsUpDisplay   bool `gorm:"column:has_heads_up_display;not null;default:false" json:"has_heads_up_display"`
	HasWirelessCharging bool `gorm:"column:has_wireless_charging;not null;default:false" json:"has_wireless_charging"`
	HasBlindSpot        bool `gorm:"column:has_blind_spot;not null;default:false" json:"has_blind_spot"`
	HasLaneKeep         bool `gorm:"column:has_lane_keep;not null;default:false" json:"has_lane_keep"`
	HasAdaptiveCruise   bool `gorm:"column:has_adaptive_cruise;not null;default:false" json:"has_adaptive_cruise"`
	HasTowPackage       bool `gorm:"column:has_tow_package;not null;default:false" json:"has_tow_package"`
	HasMaxTowPackage    bool `gorm:"column:has_max_tow_package;not null;default:false" json:"has_max_tow_package"`
	HasOffroadPackage   bool `gorm:"column:has_offroad_package;not null;default:false" json:"has_offroad_package"`

	FirstSeen time.Time `gorm:"column:first_seen" json:"first_seen"`
	LastSeen  time.Time `gorm:"column:last_seen" json:"last_seen"`

	PriceHistory PriceHistory `gorm:"column:price_history;type:json" json:"price_history"`
}

func (Listing) TableName() string {
	return "listings"
}

// BeforeCreate sets listing_id and seen timestamps when the caller left them
// unset (DBs without default uuid).
func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ListingID == uuid.Nil {
		l.ListingID = uuid.New()
	}
	now := time.Now().UTC()
	if l.FirstSeen.IsZero() {
		l.FirstSeen = now
	}
	if l.LastSeen.IsZero() {
		l.LastSeen = l.FirstSeen
	}
	return nil
}
