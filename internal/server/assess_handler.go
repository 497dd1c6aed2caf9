// Package server exposes the analysis over a small JSON HTTP API.
package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hvnguyen/essaylens/internal/analyzer"
	"github.com/hvnguyen/essaylens/internal/assessment"
	"github.com/hvnguyen/essaylens/internal/samples"
)

type Handler struct {
	analyzer *analyzer.Analyzer
	bank     *samples.Bank
}

func NewHandler(a *analyzer.Analyzer, bank *samples.Bank) *Handler {
	return &Handler{analyzer: a, bank: bank}
}

// Register mounts every route on the engine.
func (h *Handler) Register(router *gin.Engine) {
	router.GET("/healthz", h.handleHealthz)

	v1 := router.Group("/api/v1")
	v1.GET("/topics", h.handleTopics)
	v1.GET("/sample-essay", h.handleSampleEssay)
	v1.POST("/assess", h.handleAssess)
}

func (h *Handler) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) handleTopics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"topics": h.bank.Topics()})
}

func (h *Handler) handleSampleEssay(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"essay": h.bank.Essay()})
}

type assessRequest struct {
	Topic        string `json:"topic"`
	Request      string `json:"request" binding:"required"`
	Essay        string `json:"essay" binding:"required"`
	CheckGrammar bool   `json:"checkGrammar"`
	CheckAIScore bool   `json:"checkAiScore"`
	Language     string `json:"language"`
}

func (h *Handler) handleAssess(c *gin.Context) {
	var req assessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request and essay are required"})
		return
	}

	lang := assessment.LanguageEN
	if req.Language == string(assessment.LanguageVI) {
		lang = assessment.LanguageVI
	}

	report, err := h.analyzer.Run(c.Request.Context(), analyzer.Session{
		Topic:          req.Topic,
		Request:        req.Request,
		EssayText:      req.Essay,
		CheckGrammar:   req.CheckGrammar,
		IncludeAIScore: req.CheckAIScore,
		Language:       lang,
	})
	if err != nil {
		if errors.Is(err, analyzer.ErrEmptyInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Default().Error("analysis failed",
			"topic", req.Topic,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		return
	}

	c.JSON(http.StatusOK, report)
}
