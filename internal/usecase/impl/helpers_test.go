package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/config"
	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/internal/domain/entity"
	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/internal/domain/repository"

	"github.com/pkg/errors"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(batches, customers, orders int) *config.Config {
	cfg := &config.Config{}
	cfg.Generation = config.Generation{
		Batches:           batches,
		CustomersPerBatch: customers,
		OrdersPerBatch:    orders,
		Currency:          "EUR",
		Seed:              42,
	}
	cfg.Storage = config.Storage{
		BucketURL: "mem://",
		StateKey:  "state/generator_state.json",
	}

	return cfg
}

// memStateRepo is an in-memory SequenceStateRepository double.
type memStateRepo struct {
	state   *entity.SequenceState
	loadErr error
	saveErr error
	saves   int
}

func (r *memStateRepo) Load(context.Context) (*entity.SequenceState, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if r.state == nil {
		return nil, repository.ErrStateNotFound
	}

	clone := *r.state

	return &clone, nil
}

func (r *memStateRepo) Save(_ context.Context, state *entity.SequenceState) error {
	if r.saveErr != nil {
		return r.saveErr
	}

	clone := *state
	r.state = &clone
	r.saves++

	return nil
}

// memSink records everything handed to it and can fail at a given batch.
type memSink struct {
	catalogs    map[string][]*entity.Product
	batches     []*entity.Batch
	batchIDs    []string
	failAtBatch int // 1-based; 0 never fails
	failCatalog bool
	calls       int
}

func (s *memSink) SaveCatalog(_ context.Context, runID string, products []*entity.Product) error {
	if s.failCatalog {
		return errors.New("catalog upload failed")
	}
	if s.catalogs == nil {
		s.catalogs = make(map[string][]*entity.Product)
	}
	s.catalogs[runID] = products

	return nil
}

func (s *memSink) SaveBatch(_ context.Context, batchID string, batch *entity.Batch) error {
	s.calls++
	if s.failAtBatch != 0 && s.calls >= s.failAtBatch {
		return errors.New("batch upload failed")
	}

	s.batches = append(s.batches, batch)
	s.batchIDs = append(s.batchIDs, batchID)

	return nil
}

func newTestGenerator(t *testing.T, cfg *config.Config, repo *memStateRepo, sink *memSink) *generatorService {
	t.Helper()

	svc, ok := NewGeneratorService(GeneratorServiceParams{
		Config:    cfg,
		Logger:    newTestLogger(),
		StateRepo: repo,
		Sink:      sink,
		Catalog:   NewCatalogService(CatalogServiceParams{Config: cfg}),
	}).(*generatorService)
	if !ok {
		t.Fatal("unexpected generator implementation")
	}

	svc.now = func() time.Time {
		return time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	}

	return svc
}
