package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrCuratedEntryNotFound is returned when a best-selling or hot entry is
// not found (or its product is inactive on the public read paths).
var ErrCuratedEntryNotFound = errors.New("curated entry not found")

// CuratedRepository serves the two curation lists: best selling and hot.
// Public reads only expose entries whose referenced product is active, and
// always preload the product with its category and active colors.
type CuratedRepository struct {
	db *gorm.DB
}

func NewCuratedRepository(db *gorm.DB) *CuratedRepository {
	return &CuratedRepository{db: db}
}

func (r *CuratedRepository) withProduct() *gorm.DB {
	return r.db.
		Preload("Product.Category.Parent").
		Preload("Product.Colors", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("sort_order, name")
		})
}

// ListBestSelling returns active entries with active products, ranked by
// entry order.
func (r *CuratedRepository) ListBestSelling() ([]BestSelling, error) {
	var entries []BestSelling
	err := r.withProduct().
		Joins("JOIN products ON products.id = best_selling.product_id").
		Where("best_selling.is_active = ? AND products.is_active = ?", true, true).
		Order("best_selling.sort_order").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetBestSelling returns a single active entry whose product is active.
func (r *CuratedRepository) GetBestSelling(id uint) (*BestSelling, error) {
	var entry BestSelling
	err := r.withProduct().
		Joins("JOIN products ON products.id = best_selling.product_id").
		Where("best_selling.id = ? AND best_selling.is_active = ? AND products.is_active = ?", id, true, true).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCuratedEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// ListHot returns active hot entries with active products, ranked by entry
// order.
func (r *CuratedRepository) ListHot() ([]Hot, error) {
	var entries []Hot
	err := r.withProduct().
		Joins("JOIN products ON products.id = hot.product_id").
		Where("hot.is_active = ? AND products.is_active = ?", true, true).
		Order("hot.sort_order").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetHot returns a single active hot entry whose product is active.
func (r *CuratedRepository) GetHot(id uint) (*Hot, error) {
	var entry Hot
	err := r.withProduct().
		Joins("JOIN products ON products.id = hot.product_id").
		Where("hot.id = ? AND hot.is_active = ? AND products.is_active = ?", id, true, true).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCuratedEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// checkProduct verifies the referenced product exists before an admin write.
func (r *CuratedRepository) checkProduct(productID uint) error {
	var count int64
	if err := r.db.Model(&Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *CuratedRepository) CreateBestSelling(e *BestSelling) error {
	if err := r.checkProduct(e.ProductID); err != nil {
		return err
	}
	return r.db.Create(e).Error
}

func (r *CuratedRepository) UpdateBestSelling(id uint, e *BestSelling) error {
	if err := r.checkProduct(e.ProductID); err != nil {
		return err
	}
	res := r.db.Model(&BestSelling{}).Where("id = ?", id).Updates(map[string]interface{}{
		"product_id": e.ProductID,
		"sort_order": e.SortOrder,
		"is_active":  e.IsActive,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCuratedEntryNotFound
	}
	return nil
}

func (r *CuratedRepository) DeleteBestSelling(id uint) error {
	res := r.db.Delete(&BestSelling{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCuratedEntryNotFound
	}
	return nil
}

func (r *CuratedRepository) CreateHot(e *Hot) error {
	if err := r.checkProduct(e.ProductID); err != nil {
		return err
	}
	return r.db.Create(e).Error
}

func (r *CuratedRepository) UpdateHot(id uint, e *Hot) error {
	if err := r.checkProduct(e.ProductID); err != nil {
		return err
	}
	res := r.db.Model(&Hot{}).Where("id = ?", id).Updates(map[string]interface{}{
		"product_id": e.ProductID,
		"sort_order": e.SortOrder,
		"is_active":  e.IsActive,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCuratedEntryNotFound
	}
	return nil
}

func (r *CuratedRepository) DeleteHot(id uint) error {
	res := r.db.Delete(&Hot{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCuratedEntryNotFound
	}
	return nil
}
