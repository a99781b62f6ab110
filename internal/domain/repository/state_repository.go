// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/internal/domain/entity"
)

// ErrStateNotFound is returned by Load when no state object exists yet.
// A first run treats it as a normal condition, not an error.
var ErrStateNotFound = errors.New("sequence state not found")

// SequenceStateRepository persists the id counters between runs as a single
// whole-object replace.
type SequenceStateRepository interface {
	// Load retrieves the persisted state. Returns ErrStateNotFound when no
	// state has been saved yet; any other error is a real read failure.
	Load(ctx context.Context) (*entity.SequenceState, error)

	// Save atomically replaces the persisted state. A failure here is fatal
	// for the caller: without a durable state the incremental design breaks.
	Save(ctx context.Context, state *entity.SequenceState) error
}
