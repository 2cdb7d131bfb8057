package async

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

type countingProcessor struct {
	mu   sync.Mutex
	seen []uuid.UUID
}

func (p *countingProcessor) Process(ctx context.Context, documentID uuid.UUID, force bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seen = append(p.seen, documentID)
	return nil
}

func TestQueueProcessesAndDrains(t *testing.T) {
	proc := &countingProcessor{}
	q := NewPipelineQueue(proc, slog.Default(), WithWorkers(2), WithQueueSize(8))

	ids := make([]uuid.UUID, 5)
	for i := range ids {
		ids[i] = uuid.New()
		if err := q.Enqueue(context.Background(), Job{DocumentID: ids[i]}); err != nil {
			t.Fatalf("Enqueue() error = %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	proc.mu.Lock()
	defer proc.mu.Unlock()
	if len(proc.seen) != len(ids) {
		t.Errorf("processed %d jobs, want %d", len(proc.seen), len(ids))
	}
}

func TestQueueEnqueueAfterShutdownIsNoop(t *testing.T) {
	proc := &countingProcessor{}
	q := NewPipelineQueue(proc, slog.Default(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}); err != nil {
		t.Fatalf("Enqueue() after shutdown error = %v", err)
	}
	proc.mu.Lock()
	defer proc.mu.Unlock()
	if len(proc.seen) != 0 {
		t.Errorf("processed %d jobs after shutdown, want 0", len(proc.seen))
	}
}
