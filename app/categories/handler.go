package categories

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/velora-labs/storefront-api/models"
)

type CategoryProvider interface {
	ListActive() ([]models.Category, error)
	GetActiveBySlug(slug string) (*models.Category, error)
	ListTree() ([]models.Category, error)
	Create(c *models.Category) error
	Update(id uint, c *models.Category) error
	Delete(id uint) error
}

type Handler struct {
	repo CategoryProvider
}

func NewHandler(repo CategoryProvider) *Handler {
	return &Handler{repo: repo}
}

// List handles GET /api/categories.
func (h *Handler) List(c *gin.Context) {
	categories, err := h.repo.ListActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, NewCategories(categories))
}

// Get handles GET /api/categories/:slug.
func (h *Handler) Get(c *gin.Context) {
	category, err := h.repo.GetActiveBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch category"})
		return
	}
	c.JSON(http.StatusOK, NewCategory(*category))
}

// Tree handles GET /api/categories/tree: top-level categories with their
// children, one level only.
func (h *Handler) Tree(c *gin.Context) {
	categories, err := h.repo.ListTree()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch category tree"})
		return
	}
	c.JSON(http.StatusOK, NewTree(categories))
}

type categoryInput struct {
	Name     string `json:"name" binding:"required"`
	Slug     string `json:"slug" binding:"required"`
	ParentID *uint  `json:"parent_id"`
	Order    int    `json:"order"`
	IsActive *bool  `json:"is_active"`
}

func (in *categoryInput) toModel() *models.Category {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return &models.Category{
		Name:      in.Name,
		Slug:      in.Slug,
		ParentID:  in.ParentID,
		SortOrder: in.Order,
		IsActive:  active,
	}
}

// Create handles POST /api/admin/categories.
func (h *Handler) Create(c *gin.Context) {
	var in categoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := in.toModel()
	if err := h.repo.Create(category); err != nil {
		h.writeError(c, err, "failed to create category")
		return
	}
	c.JSON(http.StatusCreated, NewCategory(*category))
}

// Update handles PUT /api/admin/categories/:id.
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	var in categoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := in.toModel()
	if err := h.repo.Update(uint(id), category); err != nil {
		h.writeError(c, err, "failed to update category")
		return
	}
	category.ID = uint(id)
	c.JSON(http.StatusOK, NewCategory(*category))
}

// Delete handles DELETE /api/admin/categories/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	if err := h.repo.Delete(uint(id)); err != nil {
		h.writeError(c, err, "failed to delete category")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
	case errors.Is(err, models.ErrInvalidParent):
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrInvalidParent.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
