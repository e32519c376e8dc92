package v1_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"go-portfolio-backend/internal/delivery/http/middleware"
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/repository/unconfigured"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

// newTestRouter wires the real usecases over the unconfigured backend: every
// data endpoint must fail per-request with a 500 while the process itself
// keeps serving.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()

	validate := validator.New()
	var maint sync.RWMutex
	portfolioUC := usecase.NewPortfolioUsecase(unconfigured.NewPortfolioRepository(), validate, &maint)
	contactUC := usecase.NewContactUsecase(unconfigured.NewContactRepository(), nil)
	seedUC := usecase.NewSeedUsecase(unconfigured.NewPortfolioRepository(), validate, &maint)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	api := r.Group("/api")
	v1.NewPortfolioHandler(api, portfolioUC)
	v1.NewContactHandler(api, api, contactUC)
	v1.NewAdminHandler(api, seedUC)
	return r
}

func TestUnconfiguredBackend(t *testing.T) {
	r := newTestRouter()

	t.Run("Data reads fail with 500 and a clear message", func(t *testing.T) {
		for _, path := range []string{
			"/api/portfolio/personal",
			"/api/portfolio/education",
			"/api/portfolio/projects",
			"/api/portfolio/skills",
			"/api/portfolio/complete",
			"/api/contact/messages",
		} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, path, nil)
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusInternalServerError, w.Code, path)
			assert.Contains(t, w.Body.String(), "No database configured", path)
		}
	})

	t.Run("Seed fails with 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/seed", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestBulkCreateValidation(t *testing.T) {
	r := newTestRouter()

	t.Run("Malformed body is a 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/portfolio/projects/bulk", strings.NewReader(`{"not":"a list"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown status is a 400 before any backend call", func(t *testing.T) {
		body := `[{"title":"X","description":"d","category":"c","github":"https://github.com/x","status":"abandoned"}]`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/portfolio/projects/bulk", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestContactSubmissionBinding(t *testing.T) {
	r := newTestRouter()

	t.Run("Missing required fields is a 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":"Jamie"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
