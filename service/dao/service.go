package dao

import (
	"context"
)

// Service abstracts entity storage. K is the entity key type, T the
// stored entity. Implementations carry no business rules; callers are
// responsible for validation before persisting.
type Service[K comparable, T any] interface {
	Save(ctx context.Context, t *T) error

	Load(ctx context.Context, id K) (*T, error)

	Delete(ctx context.Context, id K) error

	List(ctx context.Context, parameters ...*Parameter) ([]*T, error)
}
