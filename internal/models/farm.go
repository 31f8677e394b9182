package models

import "time"

const (
	FarmTypeCrops     = "crops"
	FarmTypeLivestock = "livestock"
	FarmTypeMixed     = "mixed"
)

func FarmTypes() []string {
	return []string{FarmTypeCrops, FarmTypeLivestock, FarmTypeMixed}
}

type Farm struct {
	ID             uint    `gorm:"primaryKey"`
	UserID         uint    `gorm:"not null;index"`
	FarmName       string  `gorm:"not null"`
	FarmSize       float64 `gorm:"not null"`
	FarmType       string  `gorm:"not null"`
	SoilType       string
	LocationCoords string
	MainCrops      string
	LivestockTypes string
	CreatedAt      time.Time
}

func (farm Farm) RaisesCrops() bool {
	return farm.FarmType == FarmTypeCrops || farm.FarmType == FarmTypeMixed
}

func (farm Farm) KeepsLivestock() bool {
	return farm.FarmType == FarmTypeLivestock || farm.FarmType == FarmTypeMixed
}
