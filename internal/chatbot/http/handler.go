package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Mrjeonmacho/HousingSubscription/internal/chatbot/service"
)

// Handler exposes the chatbot pipelines over HTTP. Pipeline outcomes are
// always 200 with chat text; only malformed requests and hard pipeline
// failures map to error statuses.
type Handler struct {
	scoped    *service.ChatService
	general   *service.ChatService
	summaries *service.SummaryService
}

// NewHandler creates the chatbot HTTP handler.
func NewHandler(scoped, general *service.ChatService, summaries *service.SummaryService) *Handler {
	return &Handler{scoped: scoped, general: general, summaries: summaries}
}

func (h *Handler) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	answer, err := h.scoped.Answer(c.Request.Context(), req.Message, strings.TrimSpace(req.NoticeNo))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, chatResponse{Message: answer})
}

func (h *Handler) generalChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	answer, err := h.general.Answer(c.Request.Context(), req.Message, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, chatResponse{Message: answer})
}

func (h *Handler) summary(c *gin.Context) {
	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	summary, err := h.summaries.Summarize(c.Request.Context(), strings.TrimSpace(req.Title))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summaryResponse{Summary: summary})
}
