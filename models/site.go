package models

import "time"

// Notification is the site-wide banner message. At most one notification is
// active at a time; NotificationsRepository.Save enforces that.
type Notification struct {
	ID        uint   `gorm:"primaryKey"`
	Message   string `gorm:"not null"`
	IsActive  bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (n *Notification) TableName() string {
	return "notifications"
}

// TrackingCode is a named third-party script snippet (e.g. a pixel base
// code) injected into the frontend while active.
type TrackingCode struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Code      string `gorm:"not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t *TrackingCode) TableName() string {
	return "tracking_codes"
}

// SiteSettings is a singleton row holding site-wide presentation settings.
// The primary key is pinned to 1 by SettingsRepository, so a second row
// cannot exist. An empty HeroImage means the frontend uses its default.
type SiteSettings struct {
	ID        uint `gorm:"primaryKey"`
	HeroImage string
	UpdatedAt time.Time
}

func (s *SiteSettings) TableName() string {
	return "site_settings"
}
