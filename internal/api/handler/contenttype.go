package handler

import (
	"net/http"

	"github.com/Rrens/content-portal/internal/api/response"
	"github.com/Rrens/content-portal/internal/domain"
	"github.com/Rrens/content-portal/internal/service"
	"github.com/go-chi/chi/v5"
)

// ContentTypeHandler handles content type endpoints
type ContentTypeHandler struct {
	contentTypeService *service.ContentTypeService
}

// NewContentTypeHandler creates a new content type handler
func NewContentTypeHandler(contentTypeService *service.ContentTypeService) *ContentTypeHandler {
	return &ContentTypeHandler{contentTypeService: contentTypeService}
}

// List handles listing the content types of a space
func (h *ContentTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	contentTypes, err := h.contentTypeService.List(r.Context(), chi.URLParam(r, "spaceId"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, contentTypes)
}

// Create handles content type creation
func (h *ContentTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.ContentTypeCreate
	if !decode(w, r, &input) {
		return
	}

	ct, err := h.contentTypeService.Create(r.Context(), chi.URLParam(r, "spaceId"), input)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, ct)
}
