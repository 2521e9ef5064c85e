package handler

import (
	"net/http"
	"net/url"
	"time"

	"github.com/Rrens/content-portal/internal/api/response"
	"github.com/Rrens/content-portal/internal/domain"
	"github.com/Rrens/content-portal/internal/listing"
	"github.com/Rrens/content-portal/internal/service"
	"github.com/go-chi/chi/v5"
)

// ContentHandler handles content endpoints
type ContentHandler struct {
	contentService *service.ContentService
	translator     func(acceptLanguage string) func(key string) string
	now            func() time.Time
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentService *service.ContentService, translator func(string) func(string) string, now func() time.Time) *ContentHandler {
	return &ContentHandler{contentService: contentService, translator: translator, now: now}
}

// List handles the content listing of a space.
// Query: folder, contentType, author, status, date, search, showHidden.
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := parseContentQuery(r.URL.Query())
	if err != nil {
		response.FromError(w, err)
		return
	}

	t := h.translator(r.Header.Get("Accept-Language"))
	result, err := h.contentService.List(r.Context(), chi.URLParam(r, "spaceId"), q, h.now(), t)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, result)
}

// Create handles draft creation
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var input domain.ContentCreate
	if !decode(w, r, &input) {
		return
	}

	t := h.translator(r.Header.Get("Accept-Language"))
	content, err := h.contentService.Create(r.Context(), chi.URLParam(r, "spaceId"), user, input, t)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, content)
}

func parseContentQuery(v url.Values) (service.ContentQuery, error) {
	status, err := listing.ParseStatusFilter(v.Get("status"))
	if err != nil {
		return service.ContentQuery{}, &domain.ValidationError{Message: err.Error()}
	}

	date, err := listing.ParseDateBucket(v.Get("date"))
	if err != nil {
		return service.ContentQuery{}, &domain.ValidationError{Message: err.Error()}
	}

	return service.ContentQuery{
		Filter: listing.ContentFilter{
			FolderID:      v.Get("folder"),
			ContentTypeID: v.Get("contentType"),
			AuthorID:      v.Get("author"),
			Status:        status,
			Date:          date,
			Search:        v.Get("search"),
		},
		ShowHidden: v.Get("showHidden") == "true",
	}, nil
}
