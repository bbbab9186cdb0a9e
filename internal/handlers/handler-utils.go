package handlers

import (
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/zx0938013408/teamb-server/internal/dtos"
	app_error "github.com/zx0938013408/teamb-server/internal/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func DecodeJSON(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}

type HandlerFunc func(w http.ResponseWriter, r *http.Request) *app_error.AppError

// WrapHandler renders handler failures as success:false envelopes. A
// failed best-effort push never travels this path; only persistence and
// transaction errors do.
func WrapHandler(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			log.Error().Err(err).Msg(fmt.Sprintf("error occur, request id: %s", r.Header.Get("X-Request-ID")))
			WriteJSON(w, err.Code, map[string]any{
				"success": false,
				"message": "Error occur",
				"errors": map[string]any{
					"code":    err.Code,
					"field":   err.Field,
					"message": err.Message,
				},
				"data":       nil,
				"request_id": r.Header.Get("X-Request-ID"),
			})
		}
	}
}

func CreateResponse[T any](message string, data T, requestId string) dtos.Response[T] {
	return dtos.Response[T]{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestId,
	}
}
