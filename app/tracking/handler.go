package tracking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/velora-labs/storefront-api/models"
)

type TrackingCodeProvider interface {
	ListActive() ([]models.TrackingCode, error)
	GetActive(id uint) (*models.TrackingCode, error)
	Create(t *models.TrackingCode) error
	Update(id uint, t *models.TrackingCode) error
	Delete(id uint) error
}

type Handler struct {
	repo TrackingCodeProvider
}

func NewHandler(repo TrackingCodeProvider) *Handler {
	return &Handler{repo: repo}
}

type TrackingCode struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newTrackingCode(t models.TrackingCode) TrackingCode {
	return TrackingCode{
		ID:        t.ID,
		Name:      t.Name,
		Code:      t.Code,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func newTrackingCodes(items []models.TrackingCode) []TrackingCode {
	out := make([]TrackingCode, len(items))
	for i, t := range items {
		out[i] = newTrackingCode(t)
	}
	return out
}

// List handles GET /api/tracking-codes. Only active codes are exposed;
// /active is an alias kept for the storefront injection script.
func (h *Handler) List(c *gin.Context) {
	codes, err := h.repo.ListActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tracking codes"})
		return
	}
	c.JSON(http.StatusOK, newTrackingCodes(codes))
}

// Get handles GET /api/tracking-codes/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := codeID(c)
	if !ok {
		return
	}
	code, err := h.repo.GetActive(id)
	if err != nil {
		h.writeError(c, err, "failed to fetch tracking code")
		return
	}
	c.JSON(http.StatusOK, newTrackingCode(*code))
}

type trackingCodeInput struct {
	Name     string `json:"name" binding:"required"`
	Code     string `json:"code" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

func (in *trackingCodeInput) toModel() *models.TrackingCode {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return &models.TrackingCode{Name: in.Name, Code: in.Code, IsActive: active}
}

// Create handles POST /api/admin/tracking-codes.
func (h *Handler) Create(c *gin.Context) {
	var in trackingCodeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	code := in.toModel()
	if err := h.repo.Create(code); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create tracking code"})
		return
	}
	c.JSON(http.StatusCreated, newTrackingCode(*code))
}

// Update handles PUT /api/admin/tracking-codes/:id.
func (h *Handler) Update(c *gin.Context) {
	id, ok := codeID(c)
	if !ok {
		return
	}
	var in trackingCodeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	code := in.toModel()
	if err := h.repo.Update(id, code); err != nil {
		h.writeError(c, err, "failed to update tracking code")
		return
	}
	code.ID = id
	c.JSON(http.StatusOK, newTrackingCode(*code))
}

// Delete handles DELETE /api/admin/tracking-codes/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := codeID(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(id); err != nil {
		h.writeError(c, err, "failed to delete tracking code")
		return
	}
	c.Status(http.StatusNoContent)
}

func codeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tracking code id"})
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, models.ErrTrackingCodeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "tracking code not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
