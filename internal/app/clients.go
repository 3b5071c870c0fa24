package app

import (
	"fmt"

	"github.com/yungbote/ethos-backend/internal/platform/anthropic"
	"github.com/yungbote/ethos-backend/internal/platform/logger"
)

type Clients struct {
	Anthropic anthropic.Client
}

func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")
	model, err := anthropic.NewClient(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init anthropic client: %w", err)
	}
	return Clients{Anthropic: model}, nil
}
