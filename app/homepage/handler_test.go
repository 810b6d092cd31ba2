package homepage

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/velora-labs/storefront-api/models"
)

// --- Mocks ---

type MockProductRepo struct {
	Products []models.Product
	Err      error

	lastCalledLimit int
}

func (m *MockProductRepo) ListNewest(limit int) ([]models.Product, error) {
	m.lastCalledLimit = limit
	if m.Err != nil {
		return nil, m.Err
	}
	if limit < len(m.Products) {
		return m.Products[:limit], nil
	}
	return m.Products, nil
}

type MockCuratedRepo struct {
	BestSelling []models.BestSelling
	Hot         []models.Hot
	Err         error
}

func (m *MockCuratedRepo) ListBestSelling() ([]models.BestSelling, error) {
	return m.BestSelling, m.Err
}

func (m *MockCuratedRepo) ListHot() ([]models.Hot, error) {
	return m.Hot, m.Err
}

// --- Helpers ---

func newTestRouter(products ProductProvider, curatedRepo CuratedProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(products, curatedRepo)
	r := gin.New()
	r.GET("/api/homepage", h.Get)
	return r
}

func newTestProduct(id uint, name string) models.Product {
	return models.Product{
		ID:           id,
		Name:         name,
		Category:     models.Category{ID: 1, Name: "Shoes", Slug: "shoes"},
		RegularPrice: decimal.RequireFromString("25.00"),
		IsActive:     true,
	}
}

// --- Tests ---

func TestHandleGet(t *testing.T) {
	products := &MockProductRepo{Products: []models.Product{
		newTestProduct(1, "Runner Pro"),
		newTestProduct(2, "Leather Boot"),
	}}
	curatedRepo := &MockCuratedRepo{
		BestSelling: []models.BestSelling{
			{ID: 1, ProductID: 1, Product: newTestProduct(1, "Runner Pro"), SortOrder: 1, IsActive: true},
		},
		Hot: []models.Hot{
			{ID: 1, ProductID: 2, Product: newTestProduct(2, "Leather Boot"), SortOrder: 1, IsActive: true},
		},
	}
	r := newTestRouter(products, curatedRepo)

	req := httptest.NewRequest(http.MethodGet, "/api/homepage", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ProductsLimit, products.lastCalledLimit,
		"the product feed must be capped at %d", ProductsLimit)

	var resp Response
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Products, 2)
	assert.Len(t, resp.BestSelling, 1)
	assert.Len(t, resp.Hot, 1)
	assert.Equal(t, "Runner Pro", resp.BestSelling[0].Product.Name)
}

func TestHandleGetEmptySections(t *testing.T) {
	r := newTestRouter(&MockProductRepo{}, &MockCuratedRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/homepage", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	// All three keys are present even when empty, as arrays rather than null.
	var raw map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	for _, key := range []string{"products", "best_selling", "hot"} {
		assert.Contains(t, raw, key)
		assert.Equal(t, "[]", string(raw[key]))
	}
}

func TestHandleGetAllOrNothing(t *testing.T) {
	products := &MockProductRepo{Products: []models.Product{newTestProduct(1, "Runner Pro")}}
	curatedRepo := &MockCuratedRepo{Err: errors.New("db down")}
	r := newTestRouter(products, curatedRepo)

	req := httptest.NewRequest(http.MethodGet, "/api/homepage", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Runner Pro",
		"a failing section must fail the whole response, not return partial data")
}
