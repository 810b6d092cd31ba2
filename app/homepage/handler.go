package homepage

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velora-labs/storefront-api/app/catalog"
	"github.com/velora-labs/storefront-api/app/curated"
	"github.com/velora-labs/storefront-api/models"
)

// ProductsLimit caps the homepage product feed. A single uncapped request
// would otherwise grow with the catalog.
const ProductsLimit = 100

type ProductProvider interface {
	ListNewest(limit int) ([]models.Product, error)
}

type CuratedProvider interface {
	ListBestSelling() ([]models.BestSelling, error)
	ListHot() ([]models.Hot, error)
}

// Handler assembles the homepage payload: the newest products plus both
// curated lists, fetched once and returned as one object so the storefront
// issues a single request.
type Handler struct {
	products ProductProvider
	curated  CuratedProvider
}

func NewHandler(products ProductProvider, curated CuratedProvider) *Handler {
	return &Handler{products: products, curated: curated}
}

type Response struct {
	Products    []catalog.Product `json:"products"`
	BestSelling []curated.Entry   `json:"best_selling"`
	Hot         []curated.Entry   `json:"hot"`
}

// Get handles GET /api/homepage. The response is all-or-nothing: any fetch
// failure fails the whole request.
func (h *Handler) Get(c *gin.Context) {
	products, err := h.products.ListNewest(ProductsLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build homepage"})
		return
	}

	bestSelling, err := h.curated.ListBestSelling()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build homepage"})
		return
	}

	hot, err := h.curated.ListHot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build homepage"})
		return
	}

	c.JSON(http.StatusOK, Response{
		Products:    catalog.NewProducts(products),
		BestSelling: curated.NewBestSellingEntries(bestSelling),
		Hot:         curated.NewHotEntries(hot),
	})
}
