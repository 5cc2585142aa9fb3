// Package server exposes the block cipher and the hex tools over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/gokuz/internal/codec"
	"github.com/idelchi/gokuz/internal/config"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server serves the cipher and tool endpoints.
type Server struct {
	cfg     config.Server
	order   codec.ByteOrder
	version string
	log     *logrus.Entry

	decoder  *schema.Decoder
	validate *validator.Validate
}

// New returns a server for the given settings.
func New(cfg config.Server, order codec.ByteOrder, version string, log *logrus.Entry) (*Server, error) {
	validate, err := newValidator()
	if err != nil {
		return nil, err
	}

	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &Server{
		cfg:      cfg,
		order:    order,
		version:  version,
		log:      log,
		decoder:  decoder,
		validate: validate,
	}, nil
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	// Middleware only wraps matched routes, so the fallback handlers log themselves.
	router.NotFoundHandler = s.logRequests(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	}))
	router.MethodNotAllowedHandler = s.logRequests(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	}))
	router.Use(s.logRequests)

	routes := router
	if s.cfg.BasePath != "" {
		routes = router.PathPrefix(s.cfg.BasePath).Subrouter()
	}

	routes.HandleFunc("/", s.info).Methods(http.MethodGet)
	routes.HandleFunc("/health/liveness", s.liveness).Methods(http.MethodGet)

	cipher := routes.PathPrefix("/kuznechik").Subrouter()
	cipher.HandleFunc("/encrypt", s.encrypt).Methods(http.MethodPost)
	cipher.HandleFunc("/decrypt", s.decrypt).Methods(http.MethodPost)

	tools := routes.PathPrefix("/tools").Subrouter()
	tools.HandleFunc("/str-to-hex", s.strToHex).Methods(http.MethodGet)
	tools.HandleFunc("/hex-to-str", s.hexToStr).Methods(http.MethodGet)
	tools.HandleFunc("/hex-info", s.hexInfo).Methods(http.MethodGet)

	return router
}

// Addr is the listen address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		s.log.WithField("addr", srv.Addr).Info("listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		s.log.Info("shutting down")

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}

		return nil
	})

	return group.Wait() //nolint:wrapcheck // errors are wrapped inside the group
}
