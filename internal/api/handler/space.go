package handler

import (
	"net/http"

	"github.com/Rrens/content-portal/internal/api/response"
	"github.com/Rrens/content-portal/internal/domain"
	"github.com/Rrens/content-portal/internal/service"
)

// SpaceHandler handles space endpoints
type SpaceHandler struct {
	spaceService *service.SpaceService
}

// NewSpaceHandler creates a new space handler
func NewSpaceHandler(spaceService *service.SpaceService) *SpaceHandler {
	return &SpaceHandler{spaceService: spaceService}
}

// List handles listing the caller's spaces
func (h *SpaceHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	spaces, err := h.spaceService.List(r.Context(), user.ID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, spaces)
}

// Create handles space creation
func (h *SpaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var input domain.SpaceCreate
	if !decode(w, r, &input) {
		return
	}

	space, err := h.spaceService.Create(r.Context(), user, input)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, space)
}
