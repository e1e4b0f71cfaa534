package reply

import "time"

// Request is the inbound payload: which platform the post came from and the
// post itself. Both fields are required and must be non-blank after trimming.
type Request struct {
	Platform string `json:"platform" binding:"required"`
	PostText string `json:"post_text" binding:"required"`
}

// Record is the persisted exchange. Built only from a validated request plus
// a non-empty generated reply; never mutated after insert.
type Record struct {
	ID             string    `bson:"_id,omitempty" json:"id,omitempty"`
	Platform       string    `bson:"platform" json:"platform"`
	PostText       string    `bson:"post_text" json:"post_text"`
	GeneratedReply string    `bson:"generated_reply" json:"generated_reply"`
	Timestamp      time.Time `bson:"timestamp" json:"timestamp"`
}
