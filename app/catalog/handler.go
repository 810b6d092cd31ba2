package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/velora-labs/storefront-api/models"
)

type ProductProvider interface {
	ListActive(filters models.ProductFilters) ([]models.Product, error)
	GetActiveByID(id uint) (*models.Product, error)
}

type Handler struct {
	repo ProductProvider
}

func NewHandler(repo ProductProvider) *Handler {
	return &Handler{repo: repo}
}

// List handles GET /api/products. An unknown category slug yields an empty
// list, not an error.
func (h *Handler) List(c *gin.Context) {
	filters := models.ProductFilters{
		Search:       c.Query("search"),
		CategorySlug: c.Query("category"),
	}

	products, err := h.repo.ListActive(filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, NewProducts(products))
}

// Get handles GET /api/products/:id.
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	product, err := h.repo.GetActiveByID(uint(id))
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, NewProduct(*product))
}
