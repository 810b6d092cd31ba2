package models

import "time"

// Category is a catalog category. The hierarchy is two levels deep: a
// category is either top-level (no parent) or a child of a top-level one.
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Slug      string `gorm:"uniqueIndex;not null"`
	ParentID  *uint  `gorm:"index"`
	Parent    *Category
	Children  []Category `gorm:"foreignKey:ParentID"`
	SortOrder int        `gorm:"not null;default:0"`
	IsActive  bool       `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Category) TableName() string {
	return "categories"
}

// IsTopLevel reports whether the category has no parent.
func (c *Category) IsTopLevel() bool {
	return c.ParentID == nil
}
