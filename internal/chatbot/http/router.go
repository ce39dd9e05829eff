package http

import "github.com/gin-gonic/gin"

// Register mounts the chatbot routes on r.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/chat", h.chat)
	r.POST("/chat/general", h.generalChat)
	r.POST("/summary", h.summary)
}
