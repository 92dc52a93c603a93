package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
)

const internalErrorText = "internal error"

type HandlerFunc func(w ResponseWriter, r *http.Request) (err error)

type Handler interface {
	Method() string
	Path() string
	Handle(w ResponseWriter, r *http.Request) error
}

type ResponseWriter interface {
	SetHeader(key, value string) ResponseWriter
	SetStatusCode(httpCode int) ResponseWriter
	SetCookie(cookie *http.Cookie) ResponseWriter
	SetJSONBody(data any) ResponseWriter
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type responseWriter struct {
	impl         http.ResponseWriter
	errorMapping errorMapping

	body     any
	httpCode int
}

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	return w
}

func (w *responseWriter) SetCookie(cookie *http.Cookie) ResponseWriter {
	http.SetCookie(w.impl, cookie)
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.body = data
	return w
}

func (w *responseWriter) Write(ctx context.Context, err error) {
	httpCode := w.httpCode
	if err != nil {
		var publicErr string
		httpCode, publicErr = w.errorStatus(err)
		if w.body == nil || httpCode >= http.StatusInternalServerError {
			w.body = ErrorResponse{Error: publicErr}
		}
	}

	WriteRawResponse(ctx, w.impl, httpCode, w.body, err)
}

func (w *responseWriter) WritePanic(ctx context.Context, panic Panic) {
	meta := getHandlerMetadata(ctx)
	meta.Panic = &panic

	WriteRawResponse(ctx, w.impl, http.StatusInternalServerError, ErrorResponse{Error: internalErrorText}, nil)
}

// errorStatus prefers the code set by the handler, then the server error mapping.
func (w *responseWriter) errorStatus(err error) (httpCode int, publicErr string) {
	if w.httpCode >= http.StatusBadRequest {
		return w.httpCode, err.Error()
	}
	if code, mapped, ok := w.errorMapping.find(err); ok {
		return code, mapped.Error()
	}
	return http.StatusInternalServerError, internalErrorText
}

// WriteRawResponse writes a JSON response outside of a Handler, e.g. from a middleware,
// and records the result for the logging and metrics middlewares.
func WriteRawResponse(ctx context.Context, w http.ResponseWriter, httpCode int, body any, err error) {
	meta := getHandlerMetadata(ctx)
	meta.Code = httpCode
	if err != nil {
		meta.Error = err
	}

	if body == nil {
		w.WriteHeader(httpCode)
		return
	}

	encoded, encodeErr := json.Marshal(body)
	if encodeErr != nil {
		meta.Code = http.StatusInternalServerError
		meta.Error = fmt.Errorf("encode body: %w", encodeErr)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpCode)
	_, _ = w.Write(encoded)
}

func httpHandlerWrapper(handler HandlerFunc, mapping errorMapping) http.HandlerFunc {
	recoverPanic := func(r *http.Request, respWriter *responseWriter) {
		msg := recover()
		if msg == nil {
			return
		}

		respWriter.WritePanic(r.Context(), Panic{
			Message:    fmt.Sprintf("%v", msg),
			Stacktrace: debug.Stack(),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respWriter := &responseWriter{
			impl:         w,
			errorMapping: mapping,
			body:         nil,
			httpCode:     http.StatusOK,
		}

		defer recoverPanic(r, respWriter)
		err := handler(respWriter, r)
		respWriter.Write(r.Context(), err)
	}
}
