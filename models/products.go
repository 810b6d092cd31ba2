package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog product. Up to four images are supported; the first
// one is the primary image shown in listings.
type Product struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Description  string
	CategoryID   uint     `gorm:"not null;index"`
	Category     Category `gorm:"foreignKey:CategoryID"`
	Image        string
	Image2       string
	Image3       string
	Image4       string
	RegularPrice decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	OfferPrice   *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Stock        int              `gorm:"not null;default:0"`
	IsActive     bool             `gorm:"not null;default:true"`
	Colors       []ProductColor   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p *Product) TableName() string {
	return "products"
}

// HasOffer reports whether the product has a discounted price. An offer
// price that is not lower than the regular price does not count.
func (p *Product) HasOffer() bool {
	return p.OfferPrice != nil && p.OfferPrice.LessThan(p.RegularPrice)
}

// CurrentPrice is the price the storefront charges: the offer price when one
// is set and lower, the regular price otherwise.
func (p *Product) CurrentPrice() decimal.Decimal {
	if p.HasOffer() {
		return *p.OfferPrice
	}
	return p.RegularPrice
}

// ProductColor is a selectable color variant owned by a product. Deleting
// the product cascades to its colors.
type ProductColor struct {
	ID        uint   `gorm:"primaryKey"`
	ProductID uint   `gorm:"not null;index"`
	Name      string `gorm:"not null"`
	Image     string
	SortOrder int  `gorm:"not null;default:0"`
	IsActive  bool `gorm:"not null;default:true"`
}

func (c *ProductColor) TableName() string {
	return "product_colors"
}
