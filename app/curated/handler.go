package curated

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/velora-labs/storefront-api/models"
)

type CuratedProvider interface {
	ListBestSelling() ([]models.BestSelling, error)
	GetBestSelling(id uint) (*models.BestSelling, error)
	ListHot() ([]models.Hot, error)
	GetHot(id uint) (*models.Hot, error)

	CreateBestSelling(e *models.BestSelling) error
	UpdateBestSelling(id uint, e *models.BestSelling) error
	DeleteBestSelling(id uint) error
	CreateHot(e *models.Hot) error
	UpdateHot(id uint, e *models.Hot) error
	DeleteHot(id uint) error
}

type Handler struct {
	repo CuratedProvider
}

func NewHandler(repo CuratedProvider) *Handler {
	return &Handler{repo: repo}
}

// ListBestSelling handles GET /api/best-selling.
func (h *Handler) ListBestSelling(c *gin.Context) {
	entries, err := h.repo.ListBestSelling()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch best selling"})
		return
	}
	c.JSON(http.StatusOK, NewBestSellingEntries(entries))
}

// GetBestSelling handles GET /api/best-selling/:id.
func (h *Handler) GetBestSelling(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}
	entry, err := h.repo.GetBestSelling(id)
	if err != nil {
		h.writeError(c, err, "failed to fetch best selling entry")
		return
	}
	c.JSON(http.StatusOK, NewBestSellingEntry(*entry))
}

// ListHot handles GET /api/hot.
func (h *Handler) ListHot(c *gin.Context) {
	entries, err := h.repo.ListHot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch hot products"})
		return
	}
	c.JSON(http.StatusOK, NewHotEntries(entries))
}

// GetHot handles GET /api/hot/:id.
func (h *Handler) GetHot(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}
	entry, err := h.repo.GetHot(id)
	if err != nil {
		h.writeError(c, err, "failed to fetch hot entry")
		return
	}
	c.JSON(http.StatusOK, NewHotEntry(*entry))
}

type entryInput struct {
	ProductID uint  `json:"product_id" binding:"required"`
	Order     int   `json:"order"`
	IsActive  *bool `json:"is_active"`
}

func (in *entryInput) active() bool {
	if in.IsActive != nil {
		return *in.IsActive
	}
	return true
}

// CreateBestSelling handles POST /api/admin/best-selling.
func (h *Handler) CreateBestSelling(c *gin.Context) {
	var in entryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry := &models.BestSelling{ProductID: in.ProductID, SortOrder: in.Order, IsActive: in.active()}
	if err := h.repo.CreateBestSelling(entry); err != nil {
		h.writeError(c, err, "failed to create best selling entry")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": entry.ID})
}

// UpdateBestSelling handles PUT /api/admin/best-selling/:id.
func (h *Handler) UpdateBestSelling(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}
	var in entryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry := &models.BestSelling{ProductID: in.ProductID, SortOrder: in.Order, IsActive: in.active()}
	if err := h.repo.UpdateBestSelling(id, entry); err != nil {
		h.writeError(c, err, "failed to update best selling entry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// DeleteBestSelling handles DELETE /api/admin/best-selling/:id.
func (h *Handler) DeleteBestSelling(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}
	if err := h.repo.DeleteBestSelling(id); err != nil {
		h.writeError(c, err, "failed to delete best selling entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateHot handles POST /api/admin/hot.
func (h *Handler) CreateHot(c *gin.Context) {
	var in entryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry := &models.Hot{ProductID: in.ProductID, SortOrder: in.Order, IsActive: in.active()}
	if err := h.repo.CreateHot(entry); err != nil {
		h.writeError(c, err, "failed to create hot entry")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": entry.ID})
}

// UpdateHot handles PUT /api/admin/hot/:id.
func (h *Handler) UpdateHot(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}
	var in entryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry := &models.Hot{ProductID: in.ProductID, SortOrder: in.Order, IsActive: in.active()}
	if err := h.repo.UpdateHot(id, entry); err != nil {
		h.writeError(c, err, "failed to update hot entry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// DeleteHot handles DELETE /api/admin/hot/:id.
func (h *Handler) DeleteHot(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}
	if err := h.repo.DeleteHot(id); err != nil {
		h.writeError(c, err, "failed to delete hot entry")
		return
	}
	c.Status(http.StatusNoContent)
}

func entryID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrCuratedEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
	case errors.Is(err, models.ErrProductNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "product does not exist"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
