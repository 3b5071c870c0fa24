package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/ethos-backend/internal/ethics"
	"github.com/yungbote/ethos-backend/internal/http/response"
	"github.com/yungbote/ethos-backend/internal/platform/logger"
)

type AnalysisHandler struct {
	log    *logger.Logger
	ethics ethics.Service
}

func NewAnalysisHandler(log *logger.Logger, svc ethics.Service) *AnalysisHandler {
	return &AnalysisHandler{log: log, ethics: svc}
}

type analysisReq struct {
	Situation string `json:"situation"`
}

// POST /analysis
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req analysisReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Situation) == "" {
		h.log.Error("Situation not provided")
		response.RespondError(c, http.StatusBadRequest, response.TypeInvalidRequest, errors.New("Situation not provided."))
		return
	}

	h.log.Info("Performing ethical analysis")
	// The outbound model call runs to completion even if the caller
	// disconnects, so detach it from the request context.
	result, err := h.ethics.Analyze(context.WithoutCancel(c.Request.Context()), req.Situation)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.TypeInternal, err)
		return
	}
	h.log.Info("Ethical analysis completed")
	response.RespondOK(c, gin.H{"analysis": result})
}
