// Package engine implements the workflow rules: whether a definition is
// well formed and whether a requested action may legally move an
// instance from its current state to a new one. It owns no storage or
// transport; DAOs hold the data and the gateway shapes the wire.
package engine
