package app

import (
	"context"
	"fmt"

	httpserver "github.com/yungbote/ethos-backend/internal/http"
	"github.com/yungbote/ethos-backend/internal/observability"
	"github.com/yungbote/ethos-backend/internal/platform/logger"
)

// version is stamped at build time via -ldflags.
var version = "dev"

type App struct {
	Log    *logger.Logger
	Config Config
	Server *httpserver.Server

	ctx          context.Context
	cancel       context.CancelFunc
	otelShutdown func(context.Context) error
}

func New() (*App, error) {
	cfg := LoadConfig()
	log, err := logger.New(cfg.Environment)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())

	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: cfg.ServiceName,
		Environment: cfg.Environment,
		Version:     cfg.Version,
	})

	metrics := observability.Init(log)
	if metrics != nil && cfg.MetricsAddr != "" {
		metrics.StartServer(ctx, log, cfg.MetricsAddr)
	}

	clients, err := wireClients(log)
	if err != nil {
		cancel()
		return nil, err
	}
	services := wireServices(log, cfg, clients)
	handlers := wireHandlers(log, cfg, services)
	server := wireRouter(log, cfg, metrics, handlers)

	return &App{
		Log:          log,
		Config:       cfg,
		Server:       server,
		ctx:          ctx,
		cancel:       cancel,
		otelShutdown: otelShutdown,
	}, nil
}

func (a *App) Run() error {
	a.Log.Info("Starting HTTP server", "env", a.Config.Environment)
	return a.Server.Run(a.Config.Host, a.Config.Port)
}

func (a *App) Close() {
	a.cancel()
	if a.otelShutdown != nil {
		if err := a.otelShutdown(context.Background()); err != nil {
			a.Log.Warn("OTel shutdown error", "error", err)
		}
	}
	a.Log.Sync()
}
