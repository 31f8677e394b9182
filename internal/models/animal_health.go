package models

import "time"

const (
	RecoveryUnderTreatment = "under_treatment"
	RecoveryRecovering     = "recovering"
	RecoveryRecovered      = "recovered"
	RecoveryDeceased       = "deceased"
)

func RecoveryStatuses() []string {
	return []string{RecoveryUnderTreatment, RecoveryRecovering, RecoveryRecovered, RecoveryDeceased}
}

type AnimalHealthRecord struct {
	ID               uint   `gorm:"primaryKey"`
	FarmID           uint   `gorm:"not null;index"`
	UserID           uint   `gorm:"not null;index"`
	AnimalType       string `gorm:"not null"`
	Symptoms         string
	DiseaseDiagnosed string
	TreatmentApplied string
	TreatmentDate    time.Time `gorm:"not null"`
	RecoveryStatus   string
	Notes            string
}

func (AnimalHealthRecord) TableName() string {
	return "animal_health"
}
