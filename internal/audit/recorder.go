package audit

import (
	"context"
	"sync"
)

// DefaultBufferSize is the Recorder queue length used when none is given.
const DefaultBufferSize = 256

// Logger is the subset of *logging.Logger used by the Recorder.
type Logger interface {
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Recorder queues entries and writes them to a Repository from a single
// goroutine. Record never blocks: a full queue drops the entry.
//
// Thread Safety:
//   - Record is safe for concurrent use.
//   - Run must be called exactly once.
type Recorder struct {
	repo   Repository
	logger Logger
	queue  chan *Entry

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// NewRecorder creates a Recorder writing to repo. A bufferSize <= 0 uses DefaultBufferSize.
func NewRecorder(repo Repository, bufferSize int) *Recorder {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Recorder{
		repo:   repo,
		logger: noopLogger{},
		queue:  make(chan *Entry, bufferSize),
		done:   make(chan struct{}),
	}
}

// SetLogger sets the logger for dropped and failed writes.
func (r *Recorder) SetLogger(logger Logger) {
	if logger != nil {
		r.logger = logger
	}
}

// Record enqueues entry. It returns false if the entry was dropped.
func (r *Recorder) Record(entry *Entry) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return false
	}

	select {
	case r.queue <- entry:
		return true
	default:
		r.logger.Warn("audit queue full, dropping entry",
			"action", entry.Action,
			"entity_type", entry.EntityType,
		)
		return false
	}
}

// Run writes queued entries until ctx is cancelled, then flushes what is
// left and returns. Writes use a background context so the flush survives
// the cancellation that triggered it.
func (r *Recorder) Run(ctx context.Context) {
	defer close(r.done)

	for {
		select {
		case entry := <-r.queue:
			r.write(entry)
		case <-ctx.Done():
			r.mu.Lock()
			r.closed = true
			r.mu.Unlock()

			for {
				select {
				case entry := <-r.queue:
					r.write(entry)
				default:
					return
				}
			}
		}
	}
}

// Done is closed once Run has flushed the queue and returned.
func (r *Recorder) Done() <-chan struct{} {
	return r.done
}

func (r *Recorder) write(entry *Entry) {
	if err := r.repo.Create(context.Background(), entry); err != nil {
		r.logger.Error("audit write failed",
			"action", entry.Action,
			"entity_type", entry.EntityType,
			"error", err,
		)
	}
}
