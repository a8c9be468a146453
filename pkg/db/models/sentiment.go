package models

import (
	"time"

	"github.com/google/uuid"
)

// Sentiment is a single mood rating submitted by the field-study app.
type Sentiment struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Emotion   string    `gorm:"column:emotion;not null" json:"emotion"`
	Score     int       `gorm:"column:score;not null" json:"score"`
	Note      *string   `gorm:"column:note" json:"note,omitempty"`
	Timestamp time.Time `gorm:"column:timestamp;not null" json:"timestamp"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Sentiment) TableName() string { return "sentiments" }
