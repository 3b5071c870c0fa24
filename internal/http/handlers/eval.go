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

type EvalHandler struct {
	log    *logger.Logger
	ethics ethics.Service
}

func NewEvalHandler(log *logger.Logger, svc ethics.Service) *EvalHandler {
	return &EvalHandler{log: log, ethics: svc}
}

type evalReq struct {
	Prompt     string `json:"prompt"`
	Completion string `json:"completion"`
	Rubric     string `json:"rubric"`
}

// POST /eval
func (h *EvalHandler) Evaluate(c *gin.Context) {
	var req evalReq
	if err := c.ShouldBindJSON(&req); err != nil ||
		strings.TrimSpace(req.Prompt) == "" ||
		strings.TrimSpace(req.Completion) == "" ||
		strings.TrimSpace(req.Rubric) == "" {
		h.log.Error("Prompt, completion, or rubric not provided")
		response.RespondError(c, http.StatusBadRequest, response.TypeInvalidRequest, errors.New("Prompt, completion, or rubric not provided"))
		return
	}

	h.log.Info("Evaluating completion")
	result, err := h.ethics.Grade(context.WithoutCancel(c.Request.Context()), req.Completion, req.Rubric)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.TypeInternal, err)
		return
	}
	h.log.Info("Completion evaluation completed")
	response.RespondOK(c, gin.H{"response": result})
}
