// Package fs implements a messaging.Queue persisted through the
// viant/afs abstraction. Messages travel between pending, processing,
// completed, failed and dlq directories as they progress.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/storage"
	"github.com/viant/flowstate/internal/idgen"
	"github.com/viant/flowstate/service/messaging"
)

// MessageState represents the state of a message in the queue.
type MessageState string

const (
	MessageStatePending    MessageState = "pending"
	MessageStateProcessing MessageState = "processing"
	MessageStateCompleted  MessageState = "completed"
	MessageStateFailed     MessageState = "failed"
)

// Config holds configuration for the file-system queue.
type Config struct {
	// BaseURL is the base location for queue directories
	BaseURL string

	// MaxRetries caps redelivery attempts before a message lands on dlq
	MaxRetries int

	// RetryDelay is the minimum delay between redeliveries
	RetryDelay time.Duration
}

// DefaultConfig returns a default queue configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:    "/tmp/flowstate/queue",
		MaxRetries: 3,
		RetryDelay: time.Second,
	}
}

// Message implements messaging.Message for the file-system queue.
type Message[T any] struct {
	ID        string       `json:"id"`
	Data      T            `json:"data"`
	State     MessageState `json:"state"`
	Error     string       `json:"error,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	Retries   int          `json:"retries"`

	queue     *Queue[T]
	processed bool
	mu        sync.Mutex
}

// T returns the message payload.
func (m *Message[T]) T() *T {
	return &m.Data
}

// Ack acknowledges that the message was processed successfully.
func (m *Message[T]) Ack() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.processed {
		return fmt.Errorf("message already processed")
	}
	m.processed = true
	m.State = MessageStateCompleted
	m.UpdatedAt = time.Now()
	return m.queue.move(context.Background(), m, m.queue.completedDir)
}

// Nack records a processing failure; the message is retried until
// MaxRetries, then parked on dlq.
func (m *Message[T]) Nack(err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.processed {
		return fmt.Errorf("message already processed")
	}
	m.processed = true
	m.State = MessageStateFailed
	if err != nil {
		m.Error = err.Error()
	}
	m.Retries++
	m.UpdatedAt = time.Now()
	dest := m.queue.failedDir
	if m.Retries > m.queue.config.MaxRetries {
		dest = m.queue.dlqDir
	}
	return m.queue.move(context.Background(), m, dest)
}

// Queue implements a file-system based messaging.Queue.
type Queue[T any] struct {
	fs            afs.Service
	config        Config
	pendingDir    string
	processingDir string
	completedDir  string
	failedDir     string
	dlqDir        string
	mu            sync.Mutex
}

// NewQueue creates a file-system queue rooted at config.BaseURL and
// ensures the state directories exist.
func NewQueue[T any](fs afs.Service, config Config) (*Queue[T], error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("base URL cannot be empty")
	}
	q := &Queue[T]{
		fs:            fs,
		config:        config,
		pendingDir:    path.Join(config.BaseURL, "pending"),
		processingDir: path.Join(config.BaseURL, "processing"),
		completedDir:  path.Join(config.BaseURL, "completed"),
		failedDir:     path.Join(config.BaseURL, "failed"),
		dlqDir:        path.Join(config.BaseURL, "dlq"),
	}
	ctx := context.Background()
	for _, dir := range []string{q.pendingDir, q.processingDir, q.completedDir, q.failedDir, q.dlqDir} {
		if exists, _ := fs.Exists(ctx, dir); !exists {
			if err := fs.Create(ctx, dir, file.DefaultDirOsMode, true); err != nil {
				return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
	}
	return q, nil
}

// Publish writes a new message into the pending directory.
func (q *Queue[T]) Publish(ctx context.Context, t *T) error {
	now := time.Now()
	message := &Message[T]{
		ID:        idgen.New(),
		Data:      *t,
		State:     MessageStatePending,
		CreatedAt: now,
		UpdatedAt: now,
		queue:     q,
	}
	return q.upload(ctx, path.Join(q.pendingDir, message.ID+".json"), message)
}

// Consume retrieves the oldest pending or retry-eligible message, moving
// it to the processing directory. It returns (nil, nil) when the queue
// is empty.
func (q *Queue[T]) Consume(ctx context.Context) (messaging.Message[T], error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, dir := range []string{q.failedDir, q.pendingDir} {
		object, err := q.oldest(ctx, dir)
		if err != nil {
			return nil, err
		}
		if object == nil {
			continue
		}
		message, err := q.read(ctx, object.URL())
		if err != nil {
			_ = q.fs.Move(ctx, object.URL(), path.Join(q.dlqDir, "invalid-"+object.Name()))
			return nil, err
		}
		if dir == q.failedDir && message.Retries > q.config.MaxRetries {
			if err = q.fs.Move(ctx, object.URL(), path.Join(q.dlqDir, object.Name())); err != nil {
				return nil, fmt.Errorf("failed to move message to dlq: %w", err)
			}
			continue
		}
		message.State = MessageStateProcessing
		message.UpdatedAt = time.Now()
		message.queue = q
		if err = q.upload(ctx, path.Join(q.processingDir, object.Name()), message); err != nil {
			return nil, fmt.Errorf("failed to move message to processing: %w", err)
		}
		if err = q.fs.Delete(ctx, object.URL()); err != nil {
			return nil, fmt.Errorf("failed to remove consumed message: %w", err)
		}
		return message, nil
	}
	return nil, nil
}

// oldest returns the first message object in dir or nil when none exist.
func (q *Queue[T]) oldest(ctx context.Context, dir string) (storage.Object, error) {
	objects, err := q.fs.List(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	for _, object := range objects {
		if object.IsDir() || !strings.HasSuffix(object.Name(), ".json") {
			continue
		}
		return object, nil
	}
	return nil, nil
}

// move persists the message under dest and removes its processing copy.
func (q *Queue[T]) move(ctx context.Context, m *Message[T], dest string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	name := m.ID + ".json"
	if err := q.upload(ctx, path.Join(dest, name), m); err != nil {
		return fmt.Errorf("failed to write message to %s: %w", dest, err)
	}
	processing := path.Join(q.processingDir, name)
	if exists, _ := q.fs.Exists(ctx, processing); exists {
		if err := q.fs.Delete(ctx, processing); err != nil {
			return fmt.Errorf("failed to delete processing message: %w", err)
		}
	}
	return nil
}

func (q *Queue[T]) upload(ctx context.Context, location string, m *Message[T]) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	return q.fs.Upload(ctx, location, file.DefaultFileOsMode, bytes.NewBuffer(data))
}

func (q *Queue[T]) read(ctx context.Context, URL string) (*Message[T], error) {
	data, err := q.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read message %s: %w", URL, err)
	}
	var message Message[T]
	if err = json.Unmarshal(data, &message); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message %s: %w", URL, err)
	}
	return &message, nil
}

var _ messaging.Queue[any] = (*Queue[any])(nil)
