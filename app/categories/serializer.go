package categories

import "github.com/velora-labs/storefront-api/models"

// Child is the flat child-category shape with no further nesting.
type Child struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Order    int    `json:"order"`
	IsActive bool   `json:"is_active"`
}

// Category is the single-category shape: parent fields plus embedded
// children.
type Category struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Slug       string  `json:"slug"`
	ParentID   *uint   `json:"parent_id"`
	ParentName *string `json:"parent_name"`
	Order      int     `json:"order"`
	IsActive   bool    `json:"is_active"`
	Children   []Child `json:"children"`
}

// TreeNode is the root-of-tree shape: a top-level category with children and
// no parent fields.
type TreeNode struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	Order    int     `json:"order"`
	IsActive bool    `json:"is_active"`
	Children []Child `json:"children"`
}

func newChildren(children []models.Category) []Child {
	out := make([]Child, len(children))
	for i, c := range children {
		out[i] = Child{
			ID:       c.ID,
			Name:     c.Name,
			Slug:     c.Slug,
			Order:    c.SortOrder,
			IsActive: c.IsActive,
		}
	}
	return out
}

func NewCategory(c models.Category) Category {
	out := Category{
		ID:       c.ID,
		Name:     c.Name,
		Slug:     c.Slug,
		Order:    c.SortOrder,
		IsActive: c.IsActive,
		Children: newChildren(c.Children),
	}
	if c.Parent != nil {
		out.ParentID = &c.Parent.ID
		out.ParentName = &c.Parent.Name
	}
	return out
}

func NewCategories(categories []models.Category) []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = NewCategory(c)
	}
	return out
}

func NewTree(categories []models.Category) []TreeNode {
	out := make([]TreeNode, len(categories))
	for i, c := range categories {
		out[i] = TreeNode{
			ID:       c.ID,
			Name:     c.Name,
			Slug:     c.Slug,
			Order:    c.SortOrder,
			IsActive: c.IsActive,
			Children: newChildren(c.Children),
		}
	}
	return out
}
