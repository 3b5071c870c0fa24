package app

import (
	httpserver "github.com/yungbote/ethos-backend/internal/http"
	httpH "github.com/yungbote/ethos-backend/internal/http/handlers"
	"github.com/yungbote/ethos-backend/internal/observability"
	"github.com/yungbote/ethos-backend/internal/platform/logger"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	Analysis *httpH.AnalysisHandler
	Eval     *httpH.EvalHandler
	Steps    *httpH.StepsHandler
	SPA      *httpH.SPAHandler
}

func wireHandlers(log *logger.Logger, cfg Config, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(),
		Analysis: httpH.NewAnalysisHandler(log, services.Ethics),
		Eval:     httpH.NewEvalHandler(log, services.Ethics),
		Steps:    httpH.NewStepsHandler(),
		SPA:      httpH.NewSPAHandler(log, cfg.StaticDir),
	}
}

func wireRouter(log *logger.Logger, cfg Config, metrics *observability.Metrics, handlers Handlers) *httpserver.Server {
	return httpserver.NewServer(httpserver.RouterConfig{
		Log:             log,
		Metrics:         metrics,
		ServiceName:     cfg.ServiceName,
		AllowOrigins:    cfg.AllowOrigins,
		HealthHandler:   handlers.Health,
		AnalysisHandler: handlers.Analysis,
		EvalHandler:     handlers.Eval,
		StepsHandler:    handlers.Steps,
		SPAHandler:      handlers.SPA,
	})
}
