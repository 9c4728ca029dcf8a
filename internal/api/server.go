package api

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"roofsite/internal/auth"
	"roofsite/internal/config"
	"roofsite/internal/database"
	"roofsite/internal/logging"
	"roofsite/internal/models"
	"roofsite/internal/websocket"
)

const (
	driverName = "postgresql"
	apiVersion = "1.0.0"
)

// Browser reads arbitrary base tables for the admin data viewer.
type Browser interface {
	Tables(ctx context.Context) ([]models.Table, error)
	ListBaseTables(ctx context.Context) []models.Table
	Rows(ctx context.Context, table string, p database.RowsParams) (*models.RowsResult, error)
	Sample(ctx context.Context, table string, limit int) (*models.RowsResult, error)
}

type HealthChecker interface {
	Ping(ctx context.Context) (bool, error)
	CheckHealth(ctx context.Context) (bool, time.Time, error)
}

// LeadStore writes and lists inspection requests through the REST service.
type LeadStore interface {
	Configured() bool
	Insert(ctx context.Context, in models.NewInspection) error
	List(ctx context.Context) ([]models.Inspection, error)
}

type Deps struct {
	Browser  Browser
	Health   HealthChecker
	Leads    LeadStore
	Attempts auth.AttemptStore
	Hub      *websocket.Hub
}

type Server struct {
	config      *config.Config
	credentials auth.Credentials
	browser     Browser
	health      HealthChecker
	leads       LeadStore
	attempts    auth.AttemptStore
	hub         *websocket.Hub
	logger      zerolog.Logger
}

func NewServer(cfg *config.Config, deps Deps, logger zerolog.Logger) *Server {
	return &Server{
		config: cfg,
		credentials: auth.Credentials{
			Username: cfg.Admin.Username,
			Password: cfg.Admin.Password,
		},
		browser:  deps.Browser,
		health:   deps.Health,
		leads:    deps.Leads,
		attempts: deps.Attempts,
		hub:      deps.Hub,
		logger:   logging.Component(logger, "api"),
	}
}
