package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/worklane-hq/worklane-bff-go/internal/domain/memo"
	"github.com/worklane-hq/worklane-bff-go/internal/handler/http/response"
)

type MemoHandler interface {
	GetView(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type memoHandlerImpl struct {
	memoService memo.Service
}

func NewMemoHandler(memoService memo.Service) MemoHandler {
	return &memoHandlerImpl{
		memoService: memoService,
	}
}

// GetView implements MemoHandler.
func (h *memoHandlerImpl) GetView(w http.ResponseWriter, r *http.Request) {
	result, err := h.memoService.GetView(r.Context(), parseFilterState(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Refresh implements MemoHandler.
func (h *memoHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.memoService.Refresh(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Memos refreshed", nil)
}

// Create implements MemoHandler.
func (h *memoHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req memo.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.memoService.CreateRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Memo created", result)
}

// Update implements MemoHandler.
func (h *memoHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req memo.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.memoService.UpdateRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Memo updated", result)
}

// Delete implements MemoHandler.
func (h *memoHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.memoService.DeleteRecord(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Memo deleted", nil)
}
