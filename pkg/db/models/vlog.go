package models

import (
	"time"

	"github.com/google/uuid"
)

// Vlog is one catalog entry for an uploaded video. The binary payload lives
// in the blob store under BlobRef; the record must never outlive its blob.
type Vlog struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	BlobRef     string    `gorm:"column:blob_ref;not null;uniqueIndex" json:"-"`
	StoredName  string    `gorm:"column:stored_name;not null;uniqueIndex" json:"stored_name"`
	DisplayName string    `gorm:"column:display_name;not null" json:"display_name"`
	Description *string   `gorm:"column:description" json:"description,omitempty"`
	ContentType string    `gorm:"column:content_type;not null" json:"content_type"`
	SizeBytes   int64     `gorm:"column:size_bytes;not null" json:"size_bytes"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Vlog) TableName() string { return "vlogs" }
