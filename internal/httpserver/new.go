package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"timeflow/config"
	"timeflow/internal/event/usecase"
	"timeflow/pkg/gcalendar"
	"timeflow/pkg/llmprovider"
	"timeflow/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	cfg      *config.Config
	db       *sql.DB
	llm      *llmprovider.Manager
	calendar usecase.CalendarClient
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AppConfig *config.Config
	DB        *sql.DB
	LLM       *llmprovider.Manager

	// Optional: nil disables calendar mirroring.
	Calendar *gcalendar.Client
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cfg:         cfg.AppConfig,
		db:          cfg.DB,
		llm:         cfg.LLM,
	}
	if cfg.Calendar != nil {
		srv.calendar = cfg.Calendar
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
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.llm == nil {
		return errors.New("llm manager is required")
	}
	return nil
}
