// Package idgen generates opaque identifiers for definitions, instances
// and messages. It lives under internal because callers must not rely on
// the identifier structure beyond uniqueness.
package idgen

import "github.com/google/uuid"

// NewFunc produces a new globally unique identifier; tests stub it for
// reproducible ids.
var NewFunc = func() string { return uuid.New().String() }

// New is a thin wrapper around NewFunc.
func New() string { return NewFunc() }
