package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/fxamacker/cbor/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/hello-service/internal/platform/logging"
)

const (
	msgNotFound          = "resource not found"
	msgInternalServerErr = "internal server error"
)

// WriteProblem renders an RFC 9457 problem document for status. The body is
// CBOR when the client prefers it and JSON otherwise. Errors at or above 500
// are logged at error level, other 4xx at warn.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string, cause error) {
	problem := &huma.ErrorModel{
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.URL.Path,
	}
	logProblem(r, problem, cause)

	contentType := mediaProblemJSON
	var (
		body []byte
		err  error
	)
	if prefersCBOR(r.Header.Get("Accept")) {
		contentType = mediaProblemCBOR
		body, err = cbor.Marshal(problem)
	} else {
		body, err = json.Marshal(problem)
	}
	if err != nil {
		applog.LogError(r.Context(), "failed to encode problem", err, zap.Int("status", status))
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		applog.LogWarn(r.Context(), "failed to write problem", zap.Error(err))
	}
}

// NotFoundHandler answers every request that matched no registered route.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteProblem(w, r, http.StatusNotFound, msgNotFound, nil)
	}
}

// Recoverer converts handler panics into 500 problem documents.
// http.ErrAbortHandler is re-panicked so net/http aborts the connection.
// If the handler already sent a status line the panic is only logged.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w}
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				err := panicError(rec)
				if rw.wroteHeader {
					applog.LogError(r.Context(), "panic after response started", err, zap.Stack("stack"))
					return
				}
				applog.LogError(r.Context(), "panic recovered", err, zap.Stack("stack"))
				WriteProblem(rw, r, http.StatusInternalServerError, msgInternalServerErr, nil)
			}()
			next.ServeHTTP(rw, r)
		})
	}
}

func panicError(rec any) error {
	if err, ok := rec.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", rec)
}

func logProblem(r *http.Request, problem *huma.ErrorModel, cause error) {
	fields := []zap.Field{
		zap.Int("status", problem.Status),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	switch {
	case problem.Status >= http.StatusInternalServerError:
		applog.LogError(r.Context(), problem.Detail, cause, fields...)
	default:
		if cause != nil {
			fields = append(fields, zap.Error(cause))
		}
		applog.LogWarn(r.Context(), problem.Detail, fields...)
	}
}

// responseWriter records whether the status line has been sent.
type responseWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *responseWriter) WriteHeader(status int) {
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
