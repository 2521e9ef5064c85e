package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Rrens/content-portal/internal/api/middleware"
	"github.com/Rrens/content-portal/internal/api/response"
	"github.com/Rrens/content-portal/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// decode reads a JSON body into input and validates it.
// It writes the error response itself and reports whether to continue.
func decode(w http.ResponseWriter, r *http.Request, input any) bool {
	if err := json.NewDecoder(r.Body).Decode(input); err != nil {
		response.BadRequest(w, "invalid request body")
		return false
	}

	if err := validate.Struct(input); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make(map[string]string)
			for _, e := range validationErrors {
				switch e.Tag() {
				case "required":
					fields[e.Field()] = "field is required"
				case "max":
					fields[e.Field()] = "must be at most " + e.Param() + " characters"
				default:
					fields[e.Field()] = "validation failed on " + e.Tag()
				}
			}
			response.BadRequest(w, fields)
			return false
		}
		response.BadRequest(w, err.Error())
		return false
	}

	return true
}

// currentUser returns the authenticated user or writes 401
func currentUser(w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
	}
	return user, ok
}
