package models

import "time"

// Item is one parsed line item from a receipt. Price is stored as the
// raw parsed string: the parser does not validate the fragment after
// the currency symbol, and a non-numeric price is stored as-is.
type Item struct {
	ID           uint `gorm:"primaryKey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ReceiptID    *uint     `gorm:"index"` // nullable; items survive even if the receipt row is gone
	ItemName     string    `gorm:"size:255;not null"`
	Price        string    `gorm:"size:64;not null"`
	Quantity     int       `gorm:"not null;default:1"`
	PurchaseDate time.Time `gorm:"type:date;not null"`
}
