package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/suar-net/suar-time/internal/model"
	"github.com/suar-net/suar-time/internal/service"
)

// Converter is the contract the convert endpoint depends on.
type Converter interface {
	Convert(ctx context.Context, req *model.ConversionRequest) (any, error)
}

// ConvertHandler serves GET /api/convert.
type ConvertHandler struct {
	converter Converter
	messages  service.MessageCatalog
}

// NewConvertHandler creates the convert endpoint handler.
func NewConvertHandler(c Converter, messages service.MessageCatalog) *ConvertHandler {
	return &ConvertHandler{
		converter: c,
		messages:  messages,
	}
}

func (h *ConvertHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := RequestFromQuery(r)

	result, err := h.converter.Convert(r.Context(), req)
	if err != nil {
		h.respondWithFailure(w, r, err)
		return
	}

	respondWithJson(w, r, http.StatusOK, model.DTOResponse{Result: result})
}

func (h *ConvertHandler) respondWithFailure(w http.ResponseWriter, r *http.Request, err error) {
	var f *service.Failure
	if !errors.As(err, &f) {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("untranslated conversion error")
		respondInternal(w, r, h.messages)
		return
	}

	status := http.StatusBadRequest
	if f.Internal() {
		status = http.StatusInternalServerError
	}
	respondWithError(w, r, status, f.Code.String(), f.Message, f.Documentation)
}

// RequestFromQuery maps the query string onto a ConversionRequest. "leng" is
// accepted as an alias of "lang", and a leading space in gmt is read back as
// the '+' that form decoding turned into a space.
func RequestFromQuery(r *http.Request) *model.ConversionRequest {
	q := r.URL.Query()

	lang := q.Get("lang")
	if lang == "" {
		lang = q.Get("leng")
	}

	gmt := q.Get("gmt")
	if strings.HasPrefix(gmt, " ") {
		gmt = "+" + gmt[1:]
	}

	return &model.ConversionRequest{
		Value:         q.Get("value"),
		Type:          q.Get("type"),
		Format:        q.Get("format"),
		Offset:        gmt,
		Language:      lang,
		ErrorLanguage: q.Get("error"),
	}
}

func respondInternal(w http.ResponseWriter, r *http.Request, messages service.MessageCatalog) {
	code := service.CodeInternal.String()
	entry := messages.Lookup(model.DefaultLanguage.String(), code)
	respondWithError(w, r, http.StatusInternalServerError, code, entry.Message, messages.Documentation(code))
}
