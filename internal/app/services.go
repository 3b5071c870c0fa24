package app

import (
	"github.com/yungbote/ethos-backend/internal/ethics"
	"github.com/yungbote/ethos-backend/internal/platform/logger"
)

type Services struct {
	Ethics ethics.Service
}

func wireServices(log *logger.Logger, cfg Config, clients Clients) Services {
	log.Info("Wiring services...")
	return Services{
		Ethics: ethics.NewService(log, clients.Anthropic, ethics.Config{
			AnalysisModel: cfg.AnalysisModel,
			GraderModel:   cfg.GraderModel,
		}),
	}
}
