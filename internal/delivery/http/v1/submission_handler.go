package v1

import (
	"fmt"
	"net/http"

	"go-form-relay/internal/delivery/http/response"
	"go-form-relay/internal/domain"
	"go-form-relay/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	msgSubmitOK     = "Form data saved and emails sent successfully!"
	msgSubmitFailed = "Error saving form data or sending emails"
	msgBadBody      = "Invalid request body"
)

type SubmissionHandler struct {
	submissionUC domain.SubmissionUsecase
}

func NewSubmissionHandler(public *gin.RouterGroup, submissionUC domain.SubmissionUsecase) {
	handler := &SubmissionHandler{
		submissionUC: submissionUC,
	}

	public.POST("/submit", handler.Submit)
}

// Submit godoc
// @Summary      Submit Form
// @Description  Append the form to the sheet, then email every recipient listed in the sheet's recipient cells. All recipients must succeed.
// @Tags         forms
// @Accept       json
// @Produce      plain
// @Param        form  body      domain.FormSubmission  true  "Form Data"
// @Success      200   {string}  string  "Form data saved and emails sent successfully!"
// @Failure      400   {string}  string  "Invalid request body"
// @Failure      500   {string}  string  "Error saving form data or sending emails: <detail>"
// @Router       /submit [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var form domain.FormSubmission
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(apperror.New(http.StatusBadRequest, msgBadBody, err))
		return
	}

	if _, err := h.submissionUC.Submit(c.Request.Context(), &form); err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, submitFailureMessage(err), err))
		return
	}

	response.Success(c, http.StatusOK, msgSubmitOK)
}

// submitFailureMessage names the stage that failed without leaking the underlying cause
func submitFailureMessage(err error) string {
	var detail string
	switch domain.ReasonOf(err) {
	case domain.StoreWriteFailed:
		detail = "could not save form data"
	case domain.StoreReadFailed:
		detail = "could not read recipient addresses"
	case domain.NoValidRecipients:
		detail = domain.ErrNoValidRecipients.Error()
	case domain.DeliveryFailed:
		detail = "could not send notification emails"
	default:
		return msgSubmitFailed
	}
	return fmt.Sprintf("%s: %s", msgSubmitFailed, detail)
}
