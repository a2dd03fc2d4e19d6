package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/suar-net/suar-time/internal/model"
)

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
)

// CatalogStatus reports what the message catalog managed to load.
type CatalogStatus interface {
	Languages() []string
	Degraded() bool
}

// HealthHandler reports the state of the message catalog.
type HealthHandler struct {
	catalog CatalogStatus
}

// NewHealthHandler creates the health endpoint handler.
func NewHealthHandler(c CatalogStatus) *HealthHandler {
	return &HealthHandler{
		catalog: c,
	}
}

// Check answers 200 in both states; a degraded catalog still serves
// conversions from the embedded tables.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	status := StatusOK
	if h.catalog.Degraded() {
		status = StatusDegraded
		zerolog.Ctx(r.Context()).Warn().Msg("health check reports degraded catalog")
	}

	respondWithJson(w, r, http.StatusOK, model.HealthResponse{
		Status:    status,
		Languages: h.catalog.Languages(),
	})
}
