package models

import "time"

const (
	LanguageEnglish  = "en"
	LanguageChichewa = "ny"
)

type User struct {
	ID           uint    `gorm:"primaryKey"`
	Username     string  `gorm:"uniqueIndex;not null"`
	Email        *string `gorm:"uniqueIndex"`
	Phone        string  `gorm:"uniqueIndex;not null"`
	PasswordHash string  `gorm:"not null"`
	FullName     string  `gorm:"not null"`
	Location     string  `gorm:"not null"`
	Language     string  `gorm:"not null;default:en"`
	CreatedAt    time.Time
}
