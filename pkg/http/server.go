package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/gorilla/mux"
)

const (
	DefaultServerAddress = ":8080"

	defaultReadTimeout       = 10 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
)

type (
	ServerOption     func(*server)
	ServerMiddleware func(http.Handler) http.Handler
	RegisterOption   func(*mux.Router)
)

type HandlerRegistry interface {
	Register(handler Handler, opts ...RegisterOption)
	RegisterRaw(method, path string, handler http.Handler)
	Use(mws ...ServerMiddleware)
}

type Server interface {
	http.Handler
	HandlerRegistry
	Listener(context.Context) error
}

type server struct {
	srv          *http.Server
	router       *mux.Router
	handler      http.Handler
	errorMapping errorMapping
}

func NewServer(
	address string,
	opts ...ServerOption,
) Server {
	router := withHandlerMetadata(mux.NewRouter())
	srv := &server{
		srv: &http.Server{
			Addr:              address,
			ReadTimeout:       defaultReadTimeout,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
		},
		router:       router,
		handler:      router,
		errorMapping: nil,
	}

	for _, opt := range opts {
		opt(srv)
	}
	srv.srv.Handler = srv.handler

	return srv
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *server) Listener(ctx context.Context) error {
	shutdown := func() error {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()

		err := s.srv.Shutdown(shutdownCtx)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}

	serverDoneChan := make(chan error, 1)
	go func() {
		err := s.srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serverDoneChan <- err
	}()

	var err error
	select {
	case err = <-serverDoneChan:
	case <-ctx.Done():
		err = shutdown()
	}
	if err != nil {
		return fmt.Errorf("http listener %s: %w", s.srv.Addr, err)
	}

	return nil
}

func (s *server) Register(handler Handler, opts ...RegisterOption) {
	router := s.router
	if len(opts) > 0 {
		router = s.router.NewRoute().Subrouter()
		for _, opt := range opts {
			opt(router)
		}
	}

	router.
		Name(getRouteName(handler.Method(), handler.Path())).
		Methods(handler.Method()).
		Path(handler.Path()).
		Handler(httpHandlerWrapper(handler.Handle, s.errorMapping))
}

func (s *server) RegisterRaw(method, path string, handler http.Handler) {
	s.router.
		Name(getRouteName(method, path)).
		Methods(method).
		Path(path).
		Handler(handler)
}

func (s *server) Use(mws ...ServerMiddleware) {
	for _, mw := range mws {
		s.router.Use(mux.MiddlewareFunc(mw))
	}
}

func WithMW(mw ServerMiddleware) ServerOption {
	return func(srv *server) {
		srv.Use(mw)
	}
}

func WithRawHandler(method, path string, handler http.Handler) ServerOption {
	return func(srv *server) {
		srv.RegisterRaw(method, path, handler)
	}
}

func getRouteName(method, path string) string {
	path = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Latin, r) || unicode.IsDigit(r) {
			return r
		}

		if r == '{' || r == '}' {
			return -1
		}

		return '_'
	}, strings.Trim(path, "/"))
	return fmt.Sprintf("%s_%s", strings.ToUpper(method), path)
}

func getRoutePath(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return r.URL.Path
	}

	template, err := route.GetPathTemplate()
	if err != nil {
		return r.URL.Path
	}

	return template
}
