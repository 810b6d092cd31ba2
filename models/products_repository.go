package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a product is not found or inactive.
var ErrProductNotFound = errors.New("product not found")

// ProductFilters narrows the public product listing.
type ProductFilters struct {
	// Search is a case-insensitive substring match against the product name.
	Search string
	// CategorySlug filters by category. A top-level slug includes products of
	// the category and of its active children; a child slug matches only that
	// category. A slug that resolves to no active category yields an empty
	// result, not an error.
	CategorySlug string
}

type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{db: db}
}

// withRelations preloads everything serialization reads: the category with
// its parent, and active colors in display order. Shaping a product after
// this fetch must never hit the database again — a per-product refetch is
// the N+1 defect this contract exists to prevent.
func (r *ProductsRepository) withRelations() *gorm.DB {
	return r.db.
		Preload("Category.Parent").
		Preload("Colors", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("sort_order, name")
		})
}

// ListActive returns active products matching the filters.
func (r *ProductsRepository) ListActive(filters ProductFilters) ([]Product, error) {
	query := r.withRelations().Where("products.is_active = ?", true)

	if filters.Search != "" {
		query = query.Where("products.name ILIKE ?", "%"+filters.Search+"%")
	}

	if filters.CategorySlug != "" {
		ids, found, err := r.categoryIDsForSlug(filters.CategorySlug)
		if err != nil {
			return nil, err
		}
		if !found {
			return []Product{}, nil
		}
		query = query.Where("products.category_id IN ?", ids)
	}

	var products []Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// categoryIDsForSlug resolves a slug to the category ids the filter covers.
// found is false when the slug matches no active category.
func (r *ProductsRepository) categoryIDsForSlug(slug string) (ids []uint, found bool, err error) {
	var cat Category
	err = r.db.Where("slug = ? AND is_active = ?", slug, true).First(&cat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	ids = []uint{cat.ID}
	if cat.IsTopLevel() {
		var childIDs []uint
		err = r.db.Model(&Category{}).
			Where("parent_id = ? AND is_active = ?", cat.ID, true).
			Pluck("id", &childIDs).Error
		if err != nil {
			return nil, false, err
		}
		ids = append(ids, childIDs...)
	}
	return ids, true, nil
}

// ListNewest returns up to limit active products, most recently created
// first. Used for the homepage feed.
func (r *ProductsRepository) ListNewest(limit int) ([]Product, error) {
	var products []Product
	err := r.withRelations().
		Where("products.is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetActiveByID returns a single active product with its relations loaded.
func (r *ProductsRepository) GetActiveByID(id uint) (*Product, error) {
	var product Product
	err := r.withRelations().
		Where("products.is_active = ?", true).
		First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}
