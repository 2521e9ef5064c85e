package handler

import (
	"net/http"
	"net/url"

	"github.com/Rrens/content-portal/internal/api/response"
	"github.com/Rrens/content-portal/internal/domain"
	"github.com/Rrens/content-portal/internal/listing"
	"github.com/Rrens/content-portal/internal/service"
	"github.com/go-chi/chi/v5"
)

// AssetHandler handles asset and asset folder endpoints
type AssetHandler struct {
	assetService   *service.AssetService
	translator     func(acceptLanguage string) func(key string) string
	maxUploadBytes int64
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(assetService *service.AssetService, translator func(string) func(string) string, maxUploadBytes int64) *AssetHandler {
	return &AssetHandler{assetService: assetService, translator: translator, maxUploadBytes: maxUploadBytes}
}

// List handles the asset listing of a space.
// Query: folder, type, status, search.
func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := parseAssetFilter(r.URL.Query())
	if err != nil {
		response.FromError(w, err)
		return
	}

	t := h.translator(r.Header.Get("Accept-Language"))
	result, err := h.assetService.List(r.Context(), chi.URLParam(r, "spaceId"), f, t)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, result)
}

// Upload handles a multipart asset upload with fields file and assetFolderId
func (h *AssetHandler) Upload(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	if h.maxUploadBytes > 0 {
		// Headroom for the multipart envelope
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+1<<20)
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		response.BadRequest(w, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "no file uploaded")
		return
	}
	defer file.Close()

	asset, err := h.assetService.Upload(r.Context(), chi.URLParam(r, "spaceId"), user, service.AssetUpload{
		Name:          header.Filename,
		Size:          header.Size,
		AssetFolderID: r.FormValue("assetFolderId"),
		Body:          file,
	})
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, asset)
}

// ListFolders handles listing the asset folders of a space
func (h *AssetHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := h.assetService.ListFolders(r.Context(), chi.URLParam(r, "spaceId"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, folders)
}

// CreateFolder handles asset folder creation
func (h *AssetHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var input domain.AssetFolderCreate
	if !decode(w, r, &input) {
		return
	}

	folder, err := h.assetService.CreateFolder(r.Context(), chi.URLParam(r, "spaceId"), input)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, folder)
}

func parseAssetFilter(v url.Values) (listing.AssetFilter, error) {
	status, err := listing.ParseAssetStatus(v.Get("status"))
	if err != nil {
		return listing.AssetFilter{}, &domain.ValidationError{Message: err.Error()}
	}

	return listing.AssetFilter{
		FolderID: v.Get("folder"),
		Type:     v.Get("type"),
		Status:   status,
		Search:   v.Get("search"),
	}, nil
}
