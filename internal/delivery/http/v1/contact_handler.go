package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes. strict is the rate-limited
// group for the public submission endpoint.
func NewContactHandler(public, strict *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	strict.POST("/contact", handler.SubmitContact)
	public.GET("/contact/messages", handler.ListMessages)
}

// SubmitContact stores a visitor message. The server assigns status "new";
// any client-supplied status is ignored by shape.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var input domain.ContactMessageCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	msg, err := h.contactUC.Submit(c.Request.Context(), &input)
	if err != nil {
		c.Error(mapDomainError(err, "Failed to submit message. Please try again later."))
		return
	}
	response.Success(c, http.StatusOK, "Your message has been sent successfully!", msg)
}

// ListMessages returns all messages newest first.
func (h *ContactHandler) ListMessages(c *gin.Context) {
	messages, err := h.contactUC.ListMessages(c.Request.Context())
	if err != nil {
		c.Error(mapDomainError(err, "Failed to fetch messages"))
		return
	}
	response.Success(c, http.StatusOK, "Messages retrieved", messages)
}
