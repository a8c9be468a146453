package models

import (
	"time"

	"github.com/google/uuid"
)

// GPSCoordinate is a single location sample. Accuracy is stored when the
// device reports it but is stripped from every export view.
type GPSCoordinate struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Latitude  float64   `gorm:"column:latitude;not null" json:"latitude"`
	Longitude float64   `gorm:"column:longitude;not null" json:"longitude"`
	Accuracy  *float64  `gorm:"column:accuracy" json:"accuracy,omitempty"`
	Timestamp time.Time `gorm:"column:timestamp;not null" json:"timestamp"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (GPSCoordinate) TableName() string { return "gps_coordinates" }
