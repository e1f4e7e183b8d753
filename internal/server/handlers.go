package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/HinataHamura/ai-reality-engine/internal/model"
)

// VerifyRequest is the POST /verify payload
type VerifyRequest struct {
	Text     string `json:"text" binding:"required"`
	UserID   string `json:"user_id,omitempty"`
	Language string `json:"language,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleRoot(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8",
		[]byte("<h1>AI Reality Engine</h1><p>Backend running.</p>"))
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "AI Reality Engine backend running",
	})
}

func (s *Server) handleVerify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "text must not be empty"})
		return
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	ctx := c.Request.Context()
	if s.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.RequestTimeout)
		defer cancel()
	}

	report, err := s.checker.CheckText(ctx, req.Text, language)
	if err != nil {
		s.logger.Error("verify request failed", zap.Error(err))
		var stageErr model.StageError
		if errors.As(err, &stageErr) && stageErr.Kind == model.ErrExtraction {
			c.JSON(http.StatusBadGateway, errorResponse{Error: stageErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
