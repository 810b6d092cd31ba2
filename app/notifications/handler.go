package notifications

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/velora-labs/storefront-api/models"
)

type NotificationProvider interface {
	List() ([]models.Notification, error)
	Get(id uint) (*models.Notification, error)
	Active() (*models.Notification, error)
	Save(n *models.Notification) error
	Delete(id uint) error
}

type Handler struct {
	repo NotificationProvider
}

func NewHandler(repo NotificationProvider) *Handler {
	return &Handler{repo: repo}
}

type Notification struct {
	ID        uint      `json:"id"`
	Message   string    `json:"message"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newNotification(n models.Notification) Notification {
	return Notification{
		ID:        n.ID,
		Message:   n.Message,
		IsActive:  n.IsActive,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// List handles GET /api/notifications.
func (h *Handler) List(c *gin.Context) {
	items, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch notifications"})
		return
	}
	out := make([]Notification, len(items))
	for i, n := range items {
		out[i] = newNotification(n)
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /api/notifications/:id. Inactive notifications are
// visible here; only the public banner lookup filters them.
func (h *Handler) Get(c *gin.Context) {
	id, ok := notificationID(c)
	if !ok {
		return
	}
	n, err := h.repo.Get(id)
	if err != nil {
		h.writeError(c, err, "failed to fetch notification")
		return
	}
	c.JSON(http.StatusOK, newNotification(*n))
}

// Active handles GET /api/notifications/active. When no notification is
// active it returns the sentinel the storefront expects instead of a 404.
func (h *Handler) Active(c *gin.Context) {
	n, err := h.repo.Active()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch notification"})
		return
	}
	if n == nil {
		c.JSON(http.StatusOK, gin.H{"message": "", "is_active": false})
		return
	}
	c.JSON(http.StatusOK, newNotification(*n))
}

type notificationInput struct {
	Message  string `json:"message" binding:"required"`
	IsActive bool   `json:"is_active"`
}

// Create handles POST /api/admin/notifications. Creating an active
// notification deactivates every other one.
func (h *Handler) Create(c *gin.Context) {
	var in notificationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	n := &models.Notification{Message: in.Message, IsActive: in.IsActive}
	if err := h.repo.Save(n); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create notification"})
		return
	}
	c.JSON(http.StatusCreated, newNotification(*n))
}

// Update handles PUT /api/admin/notifications/:id.
func (h *Handler) Update(c *gin.Context) {
	id, ok := notificationID(c)
	if !ok {
		return
	}
	var in notificationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n, err := h.repo.Get(id)
	if err != nil {
		h.writeError(c, err, "failed to fetch notification")
		return
	}
	n.Message = in.Message
	n.IsActive = in.IsActive
	if err := h.repo.Save(n); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update notification"})
		return
	}
	c.JSON(http.StatusOK, newNotification(*n))
}

// Delete handles DELETE /api/admin/notifications/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := notificationID(c)
	if !ok {
		return
	}
	if err := h.repo.Delete(id); err != nil {
		h.writeError(c, err, "failed to delete notification")
		return
	}
	c.Status(http.StatusNoContent)
}

func notificationID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, models.ErrNotificationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
