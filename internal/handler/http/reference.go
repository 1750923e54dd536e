package http

import (
	"net/http"

	"github.com/worklane-hq/worklane-bff-go/internal/domain/reference"
	"github.com/worklane-hq/worklane-bff-go/internal/handler/http/response"
)

// ReferenceHandler serves the dropdown datasets shared across pages.
type ReferenceHandler interface {
	Departments(w http.ResponseWriter, r *http.Request)
	DocumentTypes(w http.ResponseWriter, r *http.Request)
	LeaveTypes(w http.ResponseWriter, r *http.Request)
}

type referenceHandlerImpl struct {
	referenceService reference.Service
}

func NewReferenceHandler(referenceService reference.Service) ReferenceHandler {
	return &referenceHandlerImpl{
		referenceService: referenceService,
	}
}

// Departments implements ReferenceHandler.
func (h *referenceHandlerImpl) Departments(w http.ResponseWriter, r *http.Request) {
	result, err := h.referenceService.Departments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DocumentTypes implements ReferenceHandler.
func (h *referenceHandlerImpl) DocumentTypes(w http.ResponseWriter, r *http.Request) {
	result, err := h.referenceService.DocumentTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// LeaveTypes implements ReferenceHandler.
func (h *referenceHandlerImpl) LeaveTypes(w http.ResponseWriter, r *http.Request) {
	result, err := h.referenceService.LeaveTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
