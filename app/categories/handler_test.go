package categories

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/velora-labs/storefront-api/models"
)

// --- Mock Repo ---

type MockCategoryRepo struct {
	Categories []models.Category
	Err        error

	created     *models.Category
	updatedID   uint
	deletedID   uint
	forcedWrite error
}

func (m *MockCategoryRepo) ListActive() ([]models.Category, error) {
	return m.Categories, m.Err
}

func (m *MockCategoryRepo) GetActiveBySlug(slug string) (*models.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, c := range m.Categories {
		if c.Slug == slug {
			category := c
			return &category, nil
		}
	}
	return nil, models.ErrCategoryNotFound
}

func (m *MockCategoryRepo) ListTree() ([]models.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var tops []models.Category
	for _, c := range m.Categories {
		if c.ParentID == nil {
			tops = append(tops, c)
		}
	}
	return tops, nil
}

func (m *MockCategoryRepo) Create(c *models.Category) error {
	if m.forcedWrite != nil {
		return m.forcedWrite
	}
	c.ID = 100
	m.created = c
	return nil
}

func (m *MockCategoryRepo) Update(id uint, c *models.Category) error {
	if m.forcedWrite != nil {
		return m.forcedWrite
	}
	m.updatedID = id
	return nil
}

func (m *MockCategoryRepo) Delete(id uint) error {
	if m.forcedWrite != nil {
		return m.forcedWrite
	}
	m.deletedID = id
	return nil
}

// --- Helpers ---

func newTestRouter(repo CategoryProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(repo)
	r := gin.New()
	r.GET("/api/categories", h.List)
	r.GET("/api/categories/tree", h.Tree)
	r.GET("/api/categories/:slug", h.Get)
	r.POST("/api/admin/categories", h.Create)
	r.PUT("/api/admin/categories/:id", h.Update)
	r.DELETE("/api/admin/categories/:id", h.Delete)
	return r
}

func testCategories() []models.Category {
	shoes := models.Category{ID: 1, Name: "Shoes", Slug: "shoes", SortOrder: 1, IsActive: true}
	sneakers := models.Category{ID: 2, Name: "Sneakers", Slug: "sneakers", ParentID: &shoes.ID, Parent: &shoes, SortOrder: 1, IsActive: true}
	shoes.Children = []models.Category{sneakers}
	return []models.Category{shoes, sneakers}
}

// --- Tests ---

func TestHandleTree(t *testing.T) {
	repo := &MockCategoryRepo{Categories: testCategories()}
	r := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/categories/tree", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []TreeNode
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp, 1, "only top-level categories appear at the root")
	assert.Equal(t, "shoes", resp[0].Slug)
	assert.Len(t, resp[0].Children, 1)
	assert.Equal(t, "sneakers", resp[0].Children[0].Slug)

	// The tree shape carries no parent fields.
	assert.NotContains(t, rec.Body.String(), "parent_id")
}

func TestHandleGetBySlug(t *testing.T) {
	repo := &MockCategoryRepo{Categories: testCategories()}
	r := newTestRouter(repo)

	t.Run("child category carries parent fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/categories/sneakers", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp Category
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "sneakers", resp.Slug)
		assert.NotNil(t, resp.ParentID)
		assert.Equal(t, uint(1), *resp.ParentID)
		assert.NotNil(t, resp.ParentName)
		assert.Equal(t, "Shoes", *resp.ParentName)
	})

	t.Run("top-level category embeds its children", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/categories/shoes", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp Category
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Nil(t, resp.ParentID)
		assert.Len(t, resp.Children, 1)
	})

	t.Run("unknown slug returns 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/categories/nope", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleCreate(t *testing.T) {
	t.Run("valid payload creates a category", func(t *testing.T) {
		repo := &MockCategoryRepo{}
		r := newTestRouter(repo)

		body := `{"name": "Bags", "slug": "bags", "order": 3}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/categories", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotNil(t, repo.created)
		assert.Equal(t, "bags", repo.created.Slug)
		assert.True(t, repo.created.IsActive, "is_active defaults to true")
	})

	t.Run("missing slug is rejected", func(t *testing.T) {
		repo := &MockCategoryRepo{}
		r := newTestRouter(repo)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/categories", strings.NewReader(`{"name": "Bags"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, repo.created)
	})

	t.Run("non-top-level parent is rejected", func(t *testing.T) {
		repo := &MockCategoryRepo{forcedWrite: models.ErrInvalidParent}
		r := newTestRouter(repo)

		body := `{"name": "Laces", "slug": "laces", "parent_id": 2}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/categories", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleDelete(t *testing.T) {
	t.Run("existing category", func(t *testing.T) {
		repo := &MockCategoryRepo{}
		r := newTestRouter(repo)

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/categories/4", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, uint(4), repo.deletedID)
	})

	t.Run("missing category returns 404", func(t *testing.T) {
		repo := &MockCategoryRepo{forcedWrite: models.ErrCategoryNotFound}
		r := newTestRouter(repo)

		req := httptest.NewRequest(http.MethodDelete, "/api/admin/categories/4", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
