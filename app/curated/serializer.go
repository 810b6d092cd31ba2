package curated

import (
	"time"

	"github.com/velora-labs/storefront-api/app/catalog"
	"github.com/velora-labs/storefront-api/models"
)

// Entry is a curated list entry with the full product shape embedded.
// Best-selling and hot entries share it.
type Entry struct {
	ID        uint            `json:"id"`
	Product   catalog.Product `json:"product"`
	Order     int             `json:"order"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func NewBestSellingEntry(e models.BestSelling) Entry {
	return Entry{
		ID:        e.ID,
		Product:   catalog.NewProduct(e.Product),
		Order:     e.SortOrder,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func NewBestSellingEntries(entries []models.BestSelling) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = NewBestSellingEntry(e)
	}
	return out
}

func NewHotEntry(e models.Hot) Entry {
	return Entry{
		ID:        e.ID,
		Product:   catalog.NewProduct(e.Product),
		Order:     e.SortOrder,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func NewHotEntries(entries []models.Hot) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = NewHotEntry(e)
	}
	return out
}
