package tracking

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

type MockTrackingRepo struct {
	Codes []models.TrackingCode
	Err   error

	created   *models.TrackingCode
	deletedID uint
}

func (m *MockTrackingRepo) ListActive() ([]models.TrackingCode, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := []models.TrackingCode{}
	for _, c := range m.Codes {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MockTrackingRepo) GetActive(id uint) (*models.TrackingCode, error) {
	for _, c := range m.Codes {
		if c.ID == id && c.IsActive {
			code := c
			return &code, nil
		}
	}
	return nil, models.ErrTrackingCodeNotFound
}

func (m *MockTrackingRepo) Create(t *models.TrackingCode) error {
	if m.Err != nil {
		return m.Err
	}
	t.ID = 9
	m.created = t
	return nil
}

func (m *MockTrackingRepo) Update(id uint, t *models.TrackingCode) error {
	return m.Err
}

func (m *MockTrackingRepo) Delete(id uint) error {
	if m.Err != nil {
		return m.Err
	}
	m.deletedID = id
	return nil
}

func newTestRouter(repo TrackingCodeProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(repo)
	r := gin.New()
	r.GET("/api/tracking-codes", h.List)
	r.GET("/api/tracking-codes/active", h.List)
	r.GET("/api/tracking-codes/:id", h.Get)
	r.POST("/api/admin/tracking-codes", h.Create)
	return r
}

func TestHandleList(t *testing.T) {
	repo := &MockTrackingRepo{Codes: []models.TrackingCode{
		{ID: 1, Name: "Pixel", Code: "<script>fbq()</script>", IsActive: true},
		{ID: 2, Name: "Old pixel", Code: "<script></script>", IsActive: false},
	}}
	r := newTestRouter(repo)

	for _, url := range []string{"/api/tracking-codes", "/api/tracking-codes/active"} {
		req := httptest.NewRequest(http.MethodGet, url, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp []TrackingCode
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Len(t, resp, 1, "only active codes are injected")
		assert.Equal(t, "Pixel", resp[0].Name)
	}
}

func TestHandleGet(t *testing.T) {
	repo := &MockTrackingRepo{Codes: []models.TrackingCode{
		{ID: 1, Name: "Pixel", Code: "<script>fbq()</script>", IsActive: true},
		{ID: 2, Name: "Old pixel", Code: "<script></script>", IsActive: false},
	}}
	r := newTestRouter(repo)

	t.Run("active code", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/tracking-codes/1", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("inactive code is hidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/tracking-codes/2", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleCreate(t *testing.T) {
	repo := &MockTrackingRepo{}
	r := newTestRouter(repo)

	body := `{"name": "Pixel", "code": "<script>fbq()</script>"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/tracking-codes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotNil(t, repo.created)
	assert.True(t, repo.created.IsActive, "is_active defaults to true")
}
