package repository

import (
	"context"

	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/internal/domain/entity"
)

// BatchSink receives completed batches. Implementations either persist all
// payloads of a call or return an error for the whole call; the orchestrator
// aborts the run on the first failure.
type BatchSink interface {
	// SaveCatalog writes the full product catalog under a run-unique id.
	SaveCatalog(ctx context.Context, runID string, products []*entity.Product) error

	// SaveBatch writes the seven table payloads of one batch under a
	// batch-unique id, in the order given by Batch.Tables.
	SaveBatch(ctx context.Context, batchID string, batch *entity.Batch) error
}
