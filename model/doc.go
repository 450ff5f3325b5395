// Package model defines the declarative workflow vocabulary: a Definition
// groups States and the Actions that connect them. The package carries no
// execution semantics; validation of authoring rules and transition guards
// lives in service/engine.
package model
