package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrTrackingCodeNotFound is returned when a tracking code is not found.
var ErrTrackingCodeNotFound = errors.New("tracking code not found")

type TrackingCodesRepository struct {
	db *gorm.DB
}

func NewTrackingCodesRepository(db *gorm.DB) *TrackingCodesRepository {
	return &TrackingCodesRepository{db: db}
}

// ListActive returns the tracking codes the frontend should inject.
func (r *TrackingCodesRepository) ListActive() ([]TrackingCode, error) {
	var codes []TrackingCode
	if err := r.db.Where("is_active = ?", true).Find(&codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

// GetActive returns a single active tracking code.
func (r *TrackingCodesRepository) GetActive(id uint) (*TrackingCode, error) {
	var code TrackingCode
	err := r.db.Where("is_active = ?", true).First(&code, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrackingCodeNotFound
		}
		return nil, err
	}
	return &code, nil
}

func (r *TrackingCodesRepository) Create(t *TrackingCode) error {
	return r.db.Create(t).Error
}

func (r *TrackingCodesRepository) Update(id uint, t *TrackingCode) error {
	res := r.db.Model(&TrackingCode{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":      t.Name,
		"code":      t.Code,
		"is_active": t.IsActive,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTrackingCodeNotFound
	}
	return nil
}

func (r *TrackingCodesRepository) Delete(id uint) error {
	res := r.db.Delete(&TrackingCode{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTrackingCodeNotFound
	}
	return nil
}
