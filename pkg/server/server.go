package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/yeisme/hellodemo/pkg/configs"
)

const (
	// Host is the fixed bind host.
	Host = "0.0.0.0"
	// Port is the fixed bind port.
	Port = 8000
)

// Addr is the fixed listen address, "0.0.0.0:8000".
var Addr = net.JoinHostPort(Host, strconv.Itoa(Port))

var (
	// ErrBind is returned when the listener cannot be bound.
	ErrBind = errors.New("bind listener")

	errNotListening = errors.New("server is not listening")
)

// Server serves the greeting on a single listener.
type Server struct {
	addr   string
	config configs.ServerConfig
	logger zerolog.Logger
	srv    *http.Server
	ln     net.Listener
}

// New returns a server for the fixed address.
func New(config configs.ServerConfig, logger *zerolog.Logger) *Server {
	return newServer(Addr, config, logger)
}

func newServer(addr string, config configs.ServerConfig, logger *zerolog.Logger) *Server {
	l := zerolog.Nop()
	if logger != nil {
		l = logger.With().Str("component", "server").Logger()
	}

	handler := Handler()
	if config.AccessLog {
		handler = withAccessLog(l, handler)
	}

	return &Server{
		addr:   addr,
		config: config,
		logger: l,
		srv: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: config.ReadHeaderTimeout,
			ErrorLog:          newErrorLog(l),
		},
	}
}

// Listen binds the TCP listener. A failure wraps ErrBind.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrBind, s.addr, err)
	}
	s.ln = ln
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Serve accepts connections until ctx is done, then shuts down gracefully
// within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context) error {
	if s.ln == nil {
		return errNotListening
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.Serve(s.ln)
	}()
	s.logger.Info().Str("addr", s.ln.Addr().String()).Msg("serving")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down")
	if err := s.shutdown(); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// ListenAndServe binds the listener and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}

func (s *Server) shutdown() error {
	if s.config.ShutdownTimeout <= 0 {
		return s.srv.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		_ = s.srv.Close()
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
