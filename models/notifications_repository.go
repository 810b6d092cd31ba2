package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

type NotificationsRepository struct {
	db *gorm.DB
}

func NewNotificationsRepository(db *gorm.DB) *NotificationsRepository {
	return &NotificationsRepository{db: db}
}

func (r *NotificationsRepository) List() ([]Notification, error) {
	var notifications []Notification
	if err := r.db.Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationsRepository) Get(id uint) (*Notification, error) {
	var notification Notification
	if err := r.db.First(&notification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

// Active returns the currently active notification, or nil when none is.
func (r *NotificationsRepository) Active() (*Notification, error) {
	var notification Notification
	err := r.db.Where("is_active = ?", true).First(&notification).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// Save stores the notification. When it is active, every other notification
// is deactivated in the same transaction, so at most one active row survives
// even under concurrent writes.
func (r *NotificationsRepository) Save(n *Notification) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if n.IsActive {
			err := tx.Model(&Notification{}).
				Where("id <> ?", n.ID).
				Update("is_active", false).Error
			if err != nil {
				return err
			}
		}
		return tx.Save(n).Error
	})
}

func (r *NotificationsRepository) Delete(id uint) error {
	res := r.db.Delete(&Notification{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
