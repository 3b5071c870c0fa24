package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/ethos-backend/internal/http/handlers"
	httpMW "github.com/yungbote/ethos-backend/internal/http/middleware"
	"github.com/yungbote/ethos-backend/internal/http/response"
	"github.com/yungbote/ethos-backend/internal/observability"
	"github.com/yungbote/ethos-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log          *logger.Logger
	Metrics      *observability.Metrics
	ServiceName  string
	AllowOrigins []string

	HealthHandler   *handlers.HealthHandler
	AnalysisHandler *handlers.AnalysisHandler
	EvalHandler     *handlers.EvalHandler
	StepsHandler    *handlers.StepsHandler
	SPAHandler      *handlers.SPAHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if cfg.Log != nil {
			cfg.Log.Error("panic recovered", "panic", recovered, "path", c.Request.URL.Path)
		}
		response.RespondError(c, 500, response.TypeInternal, fmt.Errorf("%v", recovered))
	}))
	// otelgin first so the span exists by the time trace context is read.
	r.Use(otelgin.Middleware(cfg.ServiceName))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.CORS(cfg.AllowOrigins))
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Model-backed endpoints
	if cfg.AnalysisHandler != nil {
		r.POST("/analysis", cfg.AnalysisHandler.Analyze)
	}
	if cfg.EvalHandler != nil {
		r.POST("/eval", cfg.EvalHandler.Evaluate)
	}

	api := r.Group("/api")
	{
		if cfg.StepsHandler != nil {
			api.GET("/steps", cfg.StepsHandler.ListSteps)
		}
	}

	// SPA fallback: unknown paths serve the frontend, never a 404.
	if cfg.SPAHandler != nil {
		r.NoRoute(cfg.SPAHandler.Serve)
	}

	return r
}
