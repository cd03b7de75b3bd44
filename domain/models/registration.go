package models

import (
	"time"
)

// Registration links an attendee to a meetup.
type Registration struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    uint    `gorm:"not null;uniqueIndex:idx_registrations_user_meetup"`
	User      *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	MeetupID  uint    `gorm:"not null;uniqueIndex:idx_registrations_user_meetup;index"`
	Meetup    *Meetup `gorm:"foreignKey:MeetupID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Registration) TableName() string {
	return "registrations"
}
