package models

import "time"

// SoilRecord is a point-in-time soil chemistry observation. Every measurement
// is optional; nil means the value was not tested.
type SoilRecord struct {
	ID              uint      `gorm:"primaryKey"`
	FarmID          uint      `gorm:"not null;index"`
	UserID          uint      `gorm:"not null;index"`
	TestDate        time.Time `gorm:"not null"`
	PHLevel         *float64  `gorm:"column:ph_level"`
	Nitrogen        *float64
	Phosphorus      *float64
	Potassium       *float64
	OrganicMatter   *float64
	Recommendations string
	Notes           string
}
