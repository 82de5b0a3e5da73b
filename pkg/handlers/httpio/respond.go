package httpio

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
	"github.com/venture-tools/plan-atlas/pkg/store/sqlite"
)

type errorBody struct {
	Error string `json:"error"`
}

// JSON writes v with the given status. Encoding failures are logged,
// not surfaced: by then the status line is already on the wire.
func JSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}

// Error maps an error to a status and writes it as a JSON body.
// Missing records become 404, caller-fixable input becomes 400,
// everything else is a 500.
func Error(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, sqlite.ErrNotFound), errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	}

	if status >= http.StatusInternalServerError {
		zerolog.Ctx(ctx).Error().Err(err).Msg("request failed")
	}
	JSON(ctx, w, status, errorBody{Error: err.Error()})
}

// BadRequest writes a 400 with the error message.
func BadRequest(ctx context.Context, w http.ResponseWriter, err error) {
	JSON(ctx, w, http.StatusBadRequest, errorBody{Error: err.Error()})
}
