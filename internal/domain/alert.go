package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PriceAlert records one observed price change on a listing. Rows are
// written by the ingest upsert as an audit trail; the trailing-window drop
// report is recomputed from price histories on demand, not read from here.
type PriceAlert struct {
	AlertID    uuid.UUID `gorm:"column:alert_id;type:uuid;primaryKey" json:"alert_id"`
	ListingID  uuid.UUID `gorm:"column:listing_id;type:uuid;not null;index" json:"listing_id"`
	OldPrice   int64     `gorm:"column:old_price;not null" json:"old_price"`
	NewPrice   int64     `gorm:"column:new_price;not null" json:"new_price"`
	ChangeDate time.Time `gorm:"column:change_date;index" json:"change_date"`
	Notified   bool      `gorm:"column:notified;not null;default:false" json:"notified"`
}

func (PriceAlert) TableName() string {
	return "price_alerts"
}

func (a *PriceAlert) BeforeCreate(tx *gorm.DB) error {
	if a.AlertID == uuid.Nil {
		a.AlertID = uuid.New()
	}
	if a.ChangeDate.IsZero() {
		a.ChangeDate = time.Now().UTC()
	}
	return nil
}
