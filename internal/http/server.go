package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/ethos-backend/internal/platform/logger"
)

type Server struct {
	Engine *gin.Engine
	log    *logger.Logger
}

func NewServer(cfg RouterConfig) *Server {
	return &Server{Engine: NewRouter(cfg), log: cfg.Log}
}

func (s *Server) Run(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	if s.log != nil {
		s.log.Info("HTTP server listening", "addr", addr)
	}
	return s.Engine.Run(addr)
}
