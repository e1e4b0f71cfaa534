package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/KevinUnadkat/social-media-reply/internal/common"
	"github.com/KevinUnadkat/social-media-reply/internal/reply"
)

var ErrNotConfigured = errors.New("mongostore: not configured")

const (
	connectTimeout = 10 * time.Second
	probeTimeout   = 2 * time.Second
)

// Store holds one long-lived Mongo client for the process. The zero-ish
// unconfigured state (blank URI) is valid: SaveReply returns ErrNotConfigured
// and Probe reports false, so the process serves in degraded mode instead of
// crashing at startup.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// New connects lazily: the driver dials on first operation, so an unreachable
// database still yields a usable store whose Probe reflects reality per call.
func New(ctx context.Context, uri, dbName, collName string) (*Store, error) {
	if uri == "" {
		return &Store{}, nil
	}

	cctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(cctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongostore: connect: %w", err)
	}

	return &Store{
		client: client,
		coll:   client.Database(dbName).Collection(collName),
	}, nil
}

func (s *Store) Configured() bool {
	return s != nil && s.coll != nil
}

// SaveReply stamps the record id and timestamp and inserts one document.
// Errors are returned, never raised; the caller decides whether they matter.
func (s *Store) SaveReply(ctx context.Context, rec *reply.Record) error {
	if !s.Configured() {
		return ErrNotConfigured
	}

	if rec.ID == "" {
		id, err := common.NewULID()
		if err != nil {
			return fmt.Errorf("mongostore: new record id: %w", err)
		}
		rec.ID = id
	}
	rec.Timestamp = time.Now().UTC()

	if _, err := s.coll.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("mongostore: insert reply: %w", err)
	}
	return nil
}

// Probe pings the primary with a short timeout. False on any failure,
// including "not configured".
func (s *Store) Probe(ctx context.Context) bool {
	if !s.Configured() {
		return false
	}
	pctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	return s.client.Ping(pctx, readpref.Primary()) == nil
}

func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
