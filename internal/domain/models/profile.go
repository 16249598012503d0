package models

import "time"

const DefaultProfileID = "default"

type StoredProfile struct {
	ID         string        `gorm:"primaryKey"`
	FileName   string
	Profile    ResumeProfile `gorm:"serializer:json"`
	UploadedAt time.Time
	UpdatedAt  time.Time
}
