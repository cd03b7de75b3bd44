package models

import (
	"time"
)

type Meetup struct {
	ID           uint      `gorm:"primaryKey"`
	Title        string    `gorm:"size:255;not null"`
	Description  string    `gorm:"type:text;not null"`
	Localization string    `gorm:"size:255;not null"`
	Date         time.Time `gorm:"not null;index"`
	BannerID     uint      `gorm:"not null;index"`
	Banner       *File     `gorm:"foreignKey:BannerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	UserID       uint      `gorm:"not null;index"`
	User         *User     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Meetup) TableName() string {
	return "meetups"
}

// IsPast reports whether the meetup date is before now. It is recomputed
// on every call and never stored.
func (m *Meetup) IsPast(now time.Time) bool {
	return m.Date.Before(now)
}

func (m *Meetup) IsOwnedBy(userID uint) bool {
	return m.UserID == userID
}
