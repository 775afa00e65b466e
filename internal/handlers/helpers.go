package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/alfagnish/usuarios/internal/middleware"
	"github.com/alfagnish/usuarios/internal/users"
	"github.com/rs/zerolog/log"
)

// maxBodyBytes caps request bodies at 100 KiB.
const maxBodyBytes = 100 << 10

const msgNotFound = "Usuario no encontrado"

var errTrailingData = errors.New("unexpected data after JSON body")

// writeJSON serialises v as JSON and writes it to the response with the
// given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}

// writeError writes a JSON error response of the form {"error": "message"}.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeStoreError maps a store or validation error onto a response.
// Validation messages are written under validationKey.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error, validationKey string) {
	var verr *users.ValidationError
	switch {
	case errors.Is(err, users.ErrNotFound):
		writeError(w, http.StatusNotFound, msgNotFound)
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]string{validationKey: verr.Message})
	default:
		log.Error().
			Err(err).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Msg("store operation failed")
		writeError(w, http.StatusInternalServerError, "error interno del servidor")
	}
}

// writeBodyError answers a body that could not be read or parsed: 413 when
// it exceeds maxBodyBytes, 400 otherwise.
func writeBodyError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "cuerpo de la petición demasiado grande")
		return
	}
	writeError(w, http.StatusBadRequest, "cuerpo de la petición inválido")
}

// decodeNombre reads the "nombre" field from a JSON or form-encoded body.
// An absent field, an empty body or an unsupported content type yield nil.
func decodeNombre(w http.ResponseWriter, r *http.Request) (any, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType := ""
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, err
		}
		mediaType = mt
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		if !r.PostForm.Has("nombre") {
			return nil, nil
		}
		return r.PostForm.Get("nombre"), nil
	case "", "application/json":
		var body struct {
			Nombre any `json:"nombre"`
		}
		dec := json.NewDecoder(r.Body)
		if err := dec.Decode(&body); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, nil
			}
			return nil, err
		}
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return nil, err
			}
			return nil, errTrailingData
		}
		return body.Nombre, nil
	default:
		return nil, nil
	}
}
