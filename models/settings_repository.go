package models

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsRowID pins the SiteSettings primary key. Every write targets this
// id, which makes the singleton invariant a database constraint instead of
// application logic.
const settingsRowID = 1

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the settings row, or nil when none has been created yet.
func (r *SettingsRepository) Get() (*SiteSettings, error) {
	var settings SiteSettings
	err := r.db.First(&settings, settingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Upsert writes the hero image onto the single settings row, creating it on
// first use. Concurrent writers race on the same primary key, so a second
// row can never appear. There is no delete; clearing the hero image falls
// back to the frontend default.
func (r *SettingsRepository) Upsert(heroImage string) (*SiteSettings, error) {
	settings := SiteSettings{ID: settingsRowID, HeroImage: heroImage}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"hero_image", "updated_at"}),
	}).Create(&settings).Error
	if err != nil {
		return nil, err
	}
	return r.Get()
}
