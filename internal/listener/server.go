package listener

import (
	"context"
	"net/http"
	"time"

	"github.com/kenelite/go-singleton/internal/observability"
)

type Server struct {
	addr   string
	srv    *http.Server
	logger *observability.Logger
}

func NewServer(addr string, handler http.Handler, logger *observability.Logger) *Server {
	return &Server{
		addr: addr,
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Start blocks until the server stops. It returns nil after Shutdown.
func (s *Server) Start() error {
	s.logger.Infow("admin server listening", "addr", s.addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
