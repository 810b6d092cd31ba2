package models

import "time"

// BestSelling is a ranked pointer into the product catalog used to build the
// "best selling" list. Several entries may reference the same product.
type BestSelling struct {
	ID        uint    `gorm:"primaryKey"`
	ProductID uint    `gorm:"not null;index"`
	Product   Product `gorm:"foreignKey:ProductID"`
	SortOrder int     `gorm:"not null;default:0"`
	IsActive  bool    `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b *BestSelling) TableName() string {
	return "best_selling"
}

// Hot is a ranked pointer into the product catalog used to build the "hot"
// section under the homepage hero.
type Hot struct {
	ID        uint    `gorm:"primaryKey"`
	ProductID uint    `gorm:"not null;index"`
	Product   Product `gorm:"foreignKey:ProductID"`
	SortOrder int     `gorm:"not null;default:0"`
	IsActive  bool    `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (h *Hot) TableName() string {
	return "hot"
}
