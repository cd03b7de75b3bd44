package models

import (
	"time"
)

// File is an uploaded object. URL is derived from the storage backend on
// read and never persisted.
type File struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	Path      string `gorm:"size:512;uniqueIndex;not null"`
	MimeType  string `gorm:"size:128"`
	Size      int64
	URL       string `gorm:"-"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (File) TableName() string {
	return "files"
}
