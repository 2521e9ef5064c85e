package handler

import (
	"net/http"

	"github.com/Rrens/content-portal/internal/api/response"
	"github.com/Rrens/content-portal/internal/domain"
	"github.com/Rrens/content-portal/internal/service"
	"github.com/go-chi/chi/v5"
)

// FolderHandler handles content folder endpoints
type FolderHandler struct {
	folderService *service.FolderService
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(folderService *service.FolderService) *FolderHandler {
	return &FolderHandler{folderService: folderService}
}

// List handles listing the folders of a space
func (h *FolderHandler) List(w http.ResponseWriter, r *http.Request) {
	folders, err := h.folderService.List(r.Context(), chi.URLParam(r, "spaceId"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, folders)
}

// Create handles folder creation
func (h *FolderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.FolderCreate
	if !decode(w, r, &input) {
		return
	}

	folder, err := h.folderService.Create(r.Context(), chi.URLParam(r, "spaceId"), input)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, folder)
}

// Delete removes a folder. cascade=true deletes its content, anything
// else detaches it.
func (h *FolderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	mode := domain.FolderDeleteDetach
	if r.URL.Query().Get("cascade") == "true" {
		mode = domain.FolderDeleteCascade
	}

	_, err := h.folderService.Delete(r.Context(), chi.URLParam(r, "spaceId"), chi.URLParam(r, "folderId"), mode)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, map[string]any{})
}
