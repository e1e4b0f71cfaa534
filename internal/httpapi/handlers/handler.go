package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/KevinUnadkat/social-media-reply/internal/reply"
	"github.com/KevinUnadkat/social-media-reply/internal/store/rabbitmq"
)

// Generator is what the handlers need from the reply generation service.
type Generator interface {
	Generate(ctx context.Context, platform, postText string) (string, error)
	Available() bool
}

// ReplyStore is what the handlers need from the persistence service.
type ReplyStore interface {
	SaveReply(ctx context.Context, rec *reply.Record) error
	Probe(ctx context.Context) bool
}

// EventPublisher emits reply.created events; nil disables publishing.
type EventPublisher interface {
	PublishReplyCreated(ctx context.Context, ev rabbitmq.ReplyEvent) error
}

type Handler struct {
	Generator Generator
	Store     ReplyStore
	Events    EventPublisher
}

func NewHandler(gen Generator, store ReplyStore, events EventPublisher) *Handler {
	return &Handler{Generator: gen, Store: store, Events: events}
}

func fail(c *gin.Context, httpStatus int, detail string) {
	c.JSON(httpStatus, gin.H{"detail": detail})
}
