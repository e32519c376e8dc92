package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	seedUC domain.SeedUsecase
}

// NewAdminHandler registers the admin routes
func NewAdminHandler(public *gin.RouterGroup, seedUC domain.SeedUsecase) {
	handler := &AdminHandler{
		seedUC: seedUC,
	}

	public.POST("/admin/seed", handler.Seed)
}

// Seed clears and reloads all portfolio collections from the literal seed
// dataset. Destructive; intended for initialization and resets only.
func (h *AdminHandler) Seed(c *gin.Context) {
	if err := h.seedUC.Reseed(c.Request.Context()); err != nil {
		c.Error(mapDomainError(err, "Failed to seed database"))
		return
	}
	response.Success(c, http.StatusOK, "Database seeded successfully", nil)
}
