package v1

import (
	"errors"
	"net/http"

	"go-form-relay/internal/delivery/http/response"
	"go-form-relay/internal/domain"
	"go-form-relay/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	msgContactOK       = "Email sent successfully!"
	msgContactRequired = "Name, email, and message are required"
	msgContactFailed   = "Error sending email"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact route (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/send-contact-email", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Forward a contact message to the operator mailbox. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      plain
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {string}  string  "Email sent successfully!"
// @Failure      400      {string}  string  "Name, email, and message are required"
// @Failure      500      {string}  string  "Error sending email"
// @Router       /send-contact-email [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.New(http.StatusBadRequest, msgContactRequired, err))
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &req); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			c.Error(apperror.BadRequest(msgContactRequired))
			return
		}
		c.Error(apperror.New(http.StatusInternalServerError, msgContactFailed, err))
		return
	}

	response.Success(c, http.StatusOK, msgContactOK)
}
