// Package messaging defines the queue abstraction used to fan out
// workflow events. Implementations must be safe for concurrent use.
package messaging

import (
	"context"
)

// Vendor identifies a queue implementation (memory, fs).
type Vendor string

const (
	// VendorMemory selects the in-process channel backed queue.
	VendorMemory Vendor = "memory"

	// VendorFs selects the afs file-system backed queue.
	VendorFs Vendor = "fs"
)

// Queue represents an abstract message queue for any payload type.
type Queue[T any] interface {
	// Publish adds a new message with payload to the queue
	Publish(ctx context.Context, t *T) error

	// Consume retrieves a single message from the queue
	Consume(ctx context.Context) (Message[T], error)
}

// Message represents a message retrieved from a queue.
type Message[T any] interface {
	// T returns the payload of this message
	T() *T

	// Ack acknowledges successful processing of this message
	Ack() error

	// Nack indicates failure in processing this message
	Nack(err error) error
}
