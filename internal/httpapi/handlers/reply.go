package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KevinUnadkat/social-media-reply/internal/reply"
	"github.com/KevinUnadkat/social-media-reply/internal/store/rabbitmq"
	"github.com/KevinUnadkat/social-media-reply/pkg/log"
)

type replyResponse struct {
	Platform       string `json:"platform"`
	PostText       string `json:"post_text"`
	GeneratedReply string `json:"generated_reply"`
}

// CreateReply validates the request, generates a reply, and records the
// exchange. Persistence and event publishing are best-effort: once the reply
// exists, the caller gets it regardless of what the audit trail does.
func (h *Handler) CreateReply(c *gin.Context) {
	var req reply.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusUnprocessableEntity, "platform and post_text are required")
		return
	}
	// binding:"required" only rejects absent fields; blank-after-trim is
	// still a structural failure.
	if strings.TrimSpace(req.Platform) == "" || strings.TrimSpace(req.PostText) == "" {
		fail(c, http.StatusUnprocessableEntity, "platform and post_text must not be empty")
		return
	}

	if !h.Generator.Available() {
		fail(c, http.StatusServiceUnavailable, "LLM service is not configured or unavailable")
		return
	}

	generated, err := h.Generator.Generate(c.Request.Context(), req.Platform, req.PostText)
	if err != nil {
		log.Errorw("reply generation failed",
			"platform", req.Platform,
			"error", err,
		)
		fail(c, http.StatusInternalServerError, "failed to generate reply using the language model")
		return
	}

	rec := &reply.Record{
		Platform:       req.Platform,
		PostText:       req.PostText,
		GeneratedReply: generated,
	}
	if err := h.Store.SaveReply(c.Request.Context(), rec); err != nil {
		log.Warnw("failed to save reply, returning generated reply anyway",
			"platform", req.Platform,
			"error", err,
		)
	} else if h.Events != nil {
		ev := rabbitmq.ReplyEvent{RecordID: rec.ID, Platform: rec.Platform, Timestamp: rec.Timestamp}
		if err := h.Events.PublishReplyCreated(c.Request.Context(), ev); err != nil {
			log.Warnw("failed to publish reply event",
				"record_id", rec.ID,
				"error", err,
			)
		}
	}

	c.JSON(http.StatusOK, replyResponse{
		Platform:       req.Platform,
		PostText:       req.PostText,
		GeneratedReply: generated,
	})
}
