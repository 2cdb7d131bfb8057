package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one processing request for an uploaded document.
type Job struct {
	DocumentID  uuid.UUID
	Force       bool // reprocess even if a result already exists
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
