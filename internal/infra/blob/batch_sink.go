package blob

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/config"
	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/internal/domain/entity"
	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/internal/domain/repository"
	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
)

type batchSink struct {
	bucket *blob.Bucket
	root   string
	logger *slog.Logger
}

// BatchSinkParams holds dependencies for the batch sink, injected by Fx.
type BatchSinkParams struct {
	fx.In

	Bucket *blob.Bucket
	Config *config.Config
	Logger *slog.Logger
}

// NewBatchSink writes batch payloads as indented JSON arrays under
// <rootPrefix>/<table>/<file>_<batchID>.json.
func NewBatchSink(params BatchSinkParams) repository.BatchSink {
	return &batchSink{
		bucket: params.Bucket,
		root:   params.Config.Storage.RootPrefix,
		logger: params.Logger,
	}
}

func (s *batchSink) SaveCatalog(ctx context.Context, runID string, products []*entity.Product) error {
	return s.writeTable(ctx, entity.Table{Name: "products_raw", File: "products", Rows: products}, runID)
}

// SaveBatch writes the seven payloads in canonical order and stops at the
// first failure, leaving the run to abort without touching later batches.
func (s *batchSink) SaveBatch(ctx context.Context, batchID string, batch *entity.Batch) error {
	for _, table := range batch.Tables() {
		if err := s.writeTable(ctx, table, batchID); err != nil {
			return err
		}
	}

	return nil
}

func (s *batchSink) writeTable(ctx context.Context, table entity.Table, id string) error {
	key := fmt.Sprintf("%s/%s/%s_%s.json", s.root, table.Name, table.File, id)

	raw, err := json.MarshalIndent(table.Rows, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encode table %s", table.Name)
	}

	if err := s.bucket.WriteAll(ctx, key, raw, &blob.WriterOptions{
		ContentType: "application/json",
	}); err != nil {
		return errors.Wrapf(err, "upload %s", key)
	}

	s.logger.Debug("uploaded payload",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(int64(len(raw)))),
	)

	return nil
}
