package models

import "time"

// Receipt holds the OCR result for one uploaded image. Rows are
// append-only; there is no update or delete path.
type Receipt struct {
	ID            uint `gorm:"primaryKey"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ImageFilename string `gorm:"size:255;not null"`
	StorePath     string `gorm:"column:store_path;size:512"` // local copy of the raw upload (e.g. uploads/xxx.png)
	ExtractedText string `gorm:"type:text"`
}
