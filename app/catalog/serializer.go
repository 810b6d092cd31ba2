package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/velora-labs/storefront-api/models"
)

// CategoryRef is the flattened category embedded in product responses.
type CategoryRef struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Slug       string  `json:"slug"`
	ParentID   *uint   `json:"parent_id"`
	ParentName *string `json:"parent_name"`
	ParentSlug *string `json:"parent_slug"`
}

// Color is a product color variant as exposed to clients.
type Color struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Order    int    `json:"order"`
	IsActive bool   `json:"is_active"`
}

// Product is the full product response shape. category_slug is kept for
// backward compatibility with older storefront builds.
type Product struct {
	ID           uint             `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Category     CategoryRef      `json:"category"`
	CategorySlug string           `json:"category_slug"`
	RegularPrice decimal.Decimal  `json:"regular_price"`
	OfferPrice   *decimal.Decimal `json:"offer_price"`
	CurrentPrice decimal.Decimal  `json:"current_price"`
	HasOffer     bool             `json:"has_offer"`
	Image        string           `json:"image"`
	Image2       string           `json:"image2"`
	Image3       string           `json:"image3"`
	Image4       string           `json:"image4"`
	Stock        int              `json:"stock"`
	IsActive     bool             `json:"is_active"`
	Colors       []Color          `json:"colors"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// NewProduct shapes a product for the API. It reads only relations the
// repository preloaded; querying here would reintroduce the per-product
// fetches the preload contract exists to prevent.
func NewProduct(p models.Product) Product {
	colors := make([]Color, len(p.Colors))
	for i, c := range p.Colors {
		colors[i] = Color{
			ID:       c.ID,
			Name:     c.Name,
			Image:    c.Image,
			Order:    c.SortOrder,
			IsActive: c.IsActive,
		}
	}

	category := CategoryRef{
		ID:   p.Category.ID,
		Name: p.Category.Name,
		Slug: p.Category.Slug,
	}
	if parent := p.Category.Parent; parent != nil {
		category.ParentID = &parent.ID
		category.ParentName = &parent.Name
		category.ParentSlug = &parent.Slug
	}

	return Product{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Category:     category,
		CategorySlug: p.Category.Slug,
		RegularPrice: p.RegularPrice,
		OfferPrice:   p.OfferPrice,
		CurrentPrice: p.CurrentPrice(),
		HasOffer:     p.HasOffer(),
		Image:        p.Image,
		Image2:       p.Image2,
		Image3:       p.Image3,
		Image4:       p.Image4,
		Stock:        p.Stock,
		IsActive:     p.IsActive,
		Colors:       colors,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// NewProducts maps a slice of products, never returning nil so empty lists
// serialize as [].
func NewProducts(products []models.Product) []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = NewProduct(p)
	}
	return out
}
