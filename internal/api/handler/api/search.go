// internal/api/handler/api/search.go
package api

import (
	"net/http"

	"github.com/stocklight/stocklight/internal/api/response"
	"github.com/stocklight/stocklight/internal/refdata"
)

// SearchDirectory defines the interface needed from refdata.Directory.
type SearchDirectory interface {
	Search(query string) []refdata.Entry
}

// SearchHandler serves universe lookups for the client's search box.
type SearchHandler struct {
	dir SearchDirectory
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(dir SearchDirectory) *SearchHandler {
	return &SearchHandler{dir: dir}
}

// Search serves GET /api/v1/search?q=. An empty query returns an empty
// list rather than the whole universe.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	entries := h.dir.Search(r.URL.Query().Get("q"))
	if entries == nil {
		entries = []refdata.Entry{}
	}
	response.JSON(w, http.StatusOK, entries)
}
