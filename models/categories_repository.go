package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrCategoryNotFound is returned when a category is not found or inactive.
var ErrCategoryNotFound = errors.New("category not found")

// ErrInvalidParent is returned when a category's parent is missing, not
// top-level, or the category itself. Deeper nesting than two levels is
// unsupported.
var ErrInvalidParent = errors.New("parent must be an existing top-level category")

type CategoriesRepository struct {
	db *gorm.DB
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{db: db}
}

func activeChildren(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true).Order("sort_order, name")
}

// ListActive returns all active categories with parent and active children
// loaded.
func (r *CategoriesRepository) ListActive() ([]Category, error) {
	var categories []Category
	err := r.db.
		Preload("Parent").
		Preload("Children", activeChildren).
		Where("is_active = ?", true).
		Order("sort_order, name").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// GetActiveBySlug returns a single active category with parent and active
// children loaded.
func (r *CategoriesRepository) GetActiveBySlug(slug string) (*Category, error) {
	var category Category
	err := r.db.
		Preload("Parent").
		Preload("Children", activeChildren).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// ListTree returns the top-level active categories, each carrying its active
// children. One level of expansion only.
func (r *CategoriesRepository) ListTree() ([]Category, error) {
	var categories []Category
	err := r.db.
		Preload("Children", activeChildren).
		Where("parent_id IS NULL AND is_active = ?", true).
		Order("sort_order, name").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Create stores a new category after validating its parent.
func (r *CategoriesRepository) Create(c *Category) error {
	if err := r.checkParent(c.ID, c.ParentID); err != nil {
		return err
	}
	return r.db.Create(c).Error
}

// Update overwrites the editable fields of an existing category.
func (r *CategoriesRepository) Update(id uint, c *Category) error {
	if err := r.checkParent(id, c.ParentID); err != nil {
		return err
	}
	res := r.db.Model(&Category{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":       c.Name,
		"slug":       c.Slug,
		"parent_id":  c.ParentID,
		"sort_order": c.SortOrder,
		"is_active":  c.IsActive,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// Delete removes a category. Products referencing it keep their rows; the
// admin is expected to re-home them first.
func (r *CategoriesRepository) Delete(id uint) error {
	res := r.db.Delete(&Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// checkParent enforces the two-level hierarchy: a parent must exist and be
// top-level, and a category cannot parent itself.
func (r *CategoriesRepository) checkParent(id uint, parentID *uint) error {
	if parentID == nil {
		return nil
	}
	if *parentID == id {
		return ErrInvalidParent
	}
	var parent Category
	if err := r.db.First(&parent, *parentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidParent
		}
		return err
	}
	if !parent.IsTopLevel() {
		return ErrInvalidParent
	}
	return nil
}
