package handler

import "net/http"

// DocsHandler serves the documentation page rendered at startup.
type DocsHandler struct {
	page []byte
}

// NewDocsHandler wraps an already rendered page.
func NewDocsHandler(page []byte) *DocsHandler {
	return &DocsHandler{page: page}
}

func (h *DocsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(h.page)
}
