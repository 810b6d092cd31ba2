package sitesettings

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/velora-labs/storefront-api/models"
)

type SettingsProvider interface {
	Get() (*models.SiteSettings, error)
	Upsert(heroImage string) (*models.SiteSettings, error)
}

type Handler struct {
	repo SettingsProvider
}

func NewHandler(repo SettingsProvider) *Handler {
	return &Handler{repo: repo}
}

type Response struct {
	HeroImage string     `json:"hero_image"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func newResponse(s *models.SiteSettings) Response {
	if s == nil {
		// No row yet: the storefront falls back to its built-in hero.
		return Response{}
	}
	updated := s.UpdatedAt
	return Response{HeroImage: s.HeroImage, UpdatedAt: &updated}
}

// Get handles GET /api/site-settings.
func (h *Handler) Get(c *gin.Context) {
	settings, err := h.repo.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch site settings"})
		return
	}
	c.JSON(http.StatusOK, newResponse(settings))
}

type settingsInput struct {
	// HeroImage may be blank to clear the hero and use the default.
	HeroImage string `json:"hero_image"`
}

// Update handles PUT /api/admin/site-settings. The settings row is a
// singleton; there is deliberately no delete route.
func (h *Handler) Update(c *gin.Context) {
	var in settingsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	settings, err := h.repo.Upsert(in.HeroImage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update site settings"})
		return
	}
	c.JSON(http.StatusOK, newResponse(settings))
}
