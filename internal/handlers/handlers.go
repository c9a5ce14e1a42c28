// Package handlers contains one HTTP handler per route. Each handler declares
// the minimal service interface it needs.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxUploadSize bounds multipart product image uploads.
const maxUploadSize = 10 << 20 // 10 MiB

// productIDFromRequest parses the {id} path parameter.
func productIDFromRequest(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}
