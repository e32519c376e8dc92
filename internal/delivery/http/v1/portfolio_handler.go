package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	portfolioUC domain.PortfolioUsecase
}

// NewPortfolioHandler registers the portfolio routes (public, read-mostly)
func NewPortfolioHandler(public *gin.RouterGroup, portfolioUC domain.PortfolioUsecase) {
	handler := &PortfolioHandler{
		portfolioUC: portfolioUC,
	}

	group := public.Group("/portfolio")
	group.GET("/personal", handler.GetPersonal)
	group.GET("/education", handler.ListEducation)
	group.GET("/experience", handler.ListExperience)
	group.GET("/projects", handler.ListProjects)
	group.GET("/projects/featured", handler.ListFeaturedProjects)
	group.POST("/projects/bulk", handler.CreateProjectsBulk)
	group.GET("/skills", handler.GetSkills)
	group.GET("/complete", handler.GetComplete)
}

// GetPersonal returns the personal info singleton. Its absence is a 404,
// never an empty result.
func (h *PortfolioHandler) GetPersonal(c *gin.Context) {
	info, err := h.portfolioUC.GetPersonal(c.Request.Context())
	if err != nil {
		c.Error(mapDomainError(err, "Failed to fetch personal information"))
		return
	}
	response.Success(c, http.StatusOK, "Personal information retrieved", info)
}

func (h *PortfolioHandler) ListEducation(c *gin.Context) {
	records, err := h.portfolioUC.ListEducation(c.Request.Context())
	if err != nil {
		c.Error(mapDomainError(err, "Failed to fetch education"))
		return
	}
	response.Success(c, http.StatusOK, "Education retrieved", records)
}

func (h *PortfolioHandler) ListExperience(c *gin.Context) {
	records, err := h.portfolioUC.ListExperience(c.Request.Context())
	if err != nil {
		c.Error(mapDomainError(err, "Failed to fetch experience"))
		return
	}
	response.Success(c, http.StatusOK, "Experience retrieved", records)
}

// ListProjects supports ?category= and ?featured_only= query filters.
func (h *PortfolioHandler) ListProjects(c *gin.Context) {
	category := c.Query("category")
	featuredOnly := c.Query("featured_only") == "true"

	records, err := h.portfolioUC.ListProjects(c.Request.Context(), category, featuredOnly)
	if err != nil {
		c.Error(mapDomainError(err, "Failed to fetch projects"))
		return
	}
	response.Success(c, http.StatusOK, "Projects retrieved", records)
}

func (h *PortfolioHandler) ListFeaturedProjects(c *gin.Context) {
	records, err := h.portfolioUC.ListFeaturedProjects(c.Request.Context())
	if err != nil {
		c.Error(mapDomainError(err, "Failed to fetch featured projects"))
		return
	}
	response.Success(c, http.StatusOK, "Featured projects retrieved", records)
}

func (h *PortfolioHandler) CreateProjectsBulk(c *gin.Context) {
	var inputs []domain.ProjectCreate
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	records, err := h.portfolioUC.CreateProjectsBulk(c.Request.Context(), inputs)
	if err != nil {
		c.Error(mapDomainError(err, "Failed to create projects"))
		return
	}
	response.Success(c, http.StatusOK, "Projects created", records)
}

// GetSkills returns skills grouped into the four canonical buckets; every
// bucket is present even when empty.
func (h *PortfolioHandler) GetSkills(c *gin.Context) {
	grouped, err := h.portfolioUC.GetSkillsGrouped(c.Request.Context())
	if err != nil {
		c.Error(mapDomainError(err, "Failed to fetch skills"))
		return
	}
	response.Success(c, http.StatusOK, "Skills retrieved", grouped)
}

func (h *PortfolioHandler) GetComplete(c *gin.Context) {
	complete, err := h.portfolioUC.GetComplete(c.Request.Context())
	if err != nil {
		c.Error(mapDomainError(err, "Failed to assemble portfolio"))
		return
	}
	response.Success(c, http.StatusOK, "Portfolio retrieved", complete)
}
