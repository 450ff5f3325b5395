package gateway

import (
	"context"
	"net/http"
	"time"

	"github.com/viant/flowstate/service/engine"
)

// Config holds the HTTP server settings.
type Config struct {
	Addr         string        `json:"addr" yaml:"addr"`
	ReadTimeout  time.Duration `json:"readTimeout" yaml:"readTimeout"`
	WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
}

// DefaultConfig returns the default server settings.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8080",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
}

// Server serves the gateway routes.
type Server struct {
	server *http.Server
}

// New creates a gateway server over the supplied engine.
func New(eng *engine.Service, config Config, version string) *Server {
	if config.Addr == "" {
		config.Addr = DefaultConfig().Addr
	}
	return &Server{
		server: &http.Server{
			Addr:         config.Addr,
			Handler:      SetupRouter(eng, version),
			ReadTimeout:  config.ReadTimeout,
			WriteTimeout: config.WriteTimeout,
		},
	}
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
