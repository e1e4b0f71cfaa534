package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Social Media Reply Generator API!"})
}

type healthResponse struct {
	Status   string `json:"status"`
	LLM      bool   `json:"llm"`
	Database bool   `json:"database"`
}

// Health probes both dependencies on every call; nothing is cached between
// checks.
func (h *Handler) Health(c *gin.Context) {
	llmOK := h.Generator.Available()
	dbOK := h.Store.Probe(c.Request.Context())

	resp := healthResponse{Status: "ok", LLM: llmOK, Database: dbOK}
	if !llmOK || !dbOK {
		resp.Status = "degraded"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
