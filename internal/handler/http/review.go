package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/worklane-hq/worklane-bff-go/internal/domain/review"
	"github.com/worklane-hq/worklane-bff-go/internal/handler/http/response"
)

type ReviewHandler interface {
	GetView(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type reviewHandlerImpl struct {
	reviewService review.Service
}

func NewReviewHandler(reviewService review.Service) ReviewHandler {
	return &reviewHandlerImpl{
		reviewService: reviewService,
	}
}

// GetView implements ReviewHandler.
func (h *reviewHandlerImpl) GetView(w http.ResponseWriter, r *http.Request) {
	result, err := h.reviewService.GetView(r.Context(), parseFilterState(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Refresh implements ReviewHandler.
func (h *reviewHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.reviewService.Refresh(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance reviews refreshed", nil)
}

// Create implements ReviewHandler.
func (h *reviewHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req review.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reviewService.CreateRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Performance review created", result)
}

// Update implements ReviewHandler.
func (h *reviewHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req review.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reviewService.UpdateRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance review updated", result)
}

// Delete implements ReviewHandler.
func (h *reviewHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.reviewService.DeleteRecord(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance review deleted", nil)
}
