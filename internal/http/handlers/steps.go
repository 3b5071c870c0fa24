package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/ethos-backend/internal/ethics"
	"github.com/yungbote/ethos-backend/internal/http/response"
)

type StepsHandler struct{}

func NewStepsHandler() *StepsHandler { return &StepsHandler{} }

// GET /api/steps
func (h *StepsHandler) ListSteps(c *gin.Context) {
	response.RespondOK(c, ethics.WrappedSteps())
}
