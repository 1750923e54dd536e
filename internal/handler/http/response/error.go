package response

import (
	"errors"
	"net/http"

	"github.com/worklane-hq/worklane-bff-go/internal/domain/attendance"
	"github.com/worklane-hq/worklane-bff-go/internal/domain/document"
	"github.com/worklane-hq/worklane-bff-go/internal/domain/employee"
	"github.com/worklane-hq/worklane-bff-go/internal/domain/inventory"
	"github.com/worklane-hq/worklane-bff-go/internal/domain/leave"
	"github.com/worklane-hq/worklane-bff-go/internal/domain/memo"
	"github.com/worklane-hq/worklane-bff-go/internal/domain/review"
	"github.com/worklane-hq/worklane-bff-go/internal/pkg/validator"
	"github.com/worklane-hq/worklane-bff-go/internal/upstream"
)

// HandleError maps domain and upstream errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Upstream rejections keep their status; network failures become 502.
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		UpstreamError(w, apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	if errors.Is(err, upstream.ErrUnavailable) {
		BadGateway(w, "Upstream API is unavailable")
		return
	}

	switch {
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, "Document not found")
	case errors.Is(err, memo.ErrMemoNotFound):
		NotFound(w, "Memo not found")
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, review.ErrReviewNotFound):
		NotFound(w, "Performance review not found")
	case errors.Is(err, inventory.ErrTransactionNotFound):
		NotFound(w, "Inventory transaction not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
