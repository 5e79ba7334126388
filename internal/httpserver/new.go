package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"todosplus/internal/capture"
	"todosplus/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	defaultTimezone        string
	captureRateLimitPerMin int

	// Optional LLM collaborator; capture routes are skipped without it.
	extractor capture.Extractor
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DefaultTimezone        string
	CaptureRateLimitPerMin int

	Extractor capture.Extractor
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                      logger,
		gin:                    gin.Default(),
		port:                   cfg.Port,
		mode:                   cfg.Mode,
		environment:            cfg.Environment,
		defaultTimezone:        cfg.DefaultTimezone,
		captureRateLimitPerMin: cfg.CaptureRateLimitPerMin,
		extractor:              cfg.Extractor,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.defaultTimezone == "" {
		return errors.New("default timezone is required")
	}
	return nil
}
