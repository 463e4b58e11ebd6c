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
	msgSubscribeOK           = "Subscription successful!"
	msgSubscribeInvalid      = "Invalid email address"
	msgSubscribeFailed       = "Error subscribing. Please try again later."
	msgSubscribeNotConfirmed = "Subscription saved but the confirmation email could not be sent."
)

type SubscriptionHandler struct {
	subscriptionUC domain.SubscriptionUsecase
}

func NewSubscriptionHandler(public *gin.RouterGroup, subscriptionUC domain.SubscriptionUsecase) {
	handler := &SubscriptionHandler{
		subscriptionUC: subscriptionUC,
	}

	public.POST("/subscribe", handler.Subscribe)
}

// Subscribe godoc
// @Summary      Subscribe
// @Description  Store the address in the subscriber sheet and send a welcome email.
// @Tags         subscription
// @Accept       json
// @Produce      plain
// @Param        subscription  body      domain.SubscriptionRequest  true  "Subscriber"
// @Success      200           {string}  string  "Subscription successful!"
// @Failure      400           {string}  string  "Invalid email address"
// @Failure      500           {string}  string  "Error subscribing. Please try again later."
// @Router       /subscribe [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	var req domain.SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.New(http.StatusBadRequest, msgSubscribeInvalid, err))
		return
	}

	if err := h.subscriptionUC.Subscribe(c.Request.Context(), &req); err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			c.Error(apperror.BadRequest(msgSubscribeInvalid))
		case domain.ReasonOf(err) == domain.DeliveryFailed:
			c.Error(apperror.New(http.StatusInternalServerError, msgSubscribeNotConfirmed, err))
		default:
			c.Error(apperror.New(http.StatusInternalServerError, msgSubscribeFailed, err))
		}
		return
	}

	response.Success(c, http.StatusOK, msgSubscribeOK)
}
