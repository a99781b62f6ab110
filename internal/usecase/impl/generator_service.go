package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/config"
	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/internal/domain/entity"
	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/internal/domain/repository"
	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/internal/usecase"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// batchIDLayout matches the payload filenames produced by earlier pipeline
// versions, e.g. customers_20240101_12_00_00.json.
const batchIDLayout = "20060102_15_04_05"

var emailDomains = []string{"gmail.com", "outlook.com", "hotmail.com", "yahoo.com", "icloud.com"}

type generatorService struct {
	cfg       *config.Config
	logger    *slog.Logger
	stateRepo repository.SequenceStateRepository
	sink      repository.BatchSink
	catalog   usecase.CatalogUsecase

	faker  *gofakeit.Faker
	engine *lifecycleEngine
	now    func() time.Time
}

// GeneratorServiceParams holds dependencies for GeneratorService, injected by Fx.
type GeneratorServiceParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	StateRepo repository.SequenceStateRepository
	Sink      repository.BatchSink
	Catalog   usecase.CatalogUsecase
}

// NewGeneratorService creates the batch orchestrator. A non-zero
// generation.seed makes the whole run reproducible; zero seeds from entropy.
func NewGeneratorService(params GeneratorServiceParams) usecase.GeneratorUsecase {
	faker := gofakeit.New(params.Config.Generation.Seed)

	return &generatorService{
		cfg:       params.Config,
		logger:    params.Logger,
		stateRepo: params.StateRepo,
		sink:      params.Sink,
		catalog:   params.Catalog,
		faker:     faker,
		engine:    newLifecycleEngine(faker, params.Config.Generation.Cancellation),
		now:       time.Now,
	}
}

// Run executes one full incremental generation run. Batches are strictly
// sequential: each batch's customer pool must exist before its orders draw
// from it, and the id counters are advanced in place with no concurrent
// writers. State is persisted only after every batch uploaded, so a failed
// run leaves the previous state, and thus sequence continuity, intact.
func (s *generatorService) Run(ctx context.Context) (*usecase.RunSummary, error) {
	gen := s.cfg.Generation

	state := s.loadState(ctx)

	products, err := s.catalog.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build product catalog")
	}

	runID := s.now().UTC().Format(batchIDLayout)
	s.logger.Info("uploading product catalog",
		slog.Int("products", len(products)),
		slog.String("run_id", runID),
	)
	if err := s.sink.SaveCatalog(ctx, runID, products); err != nil {
		return nil, errors.Wrap(err, "upload product catalog")
	}

	summary := &usecase.RunSummary{
		Batches:  gen.Batches,
		Products: len(products),
	}

	for batchNo := 1; batchNo <= gen.Batches; batchNo++ {
		// The ordinal suffix keeps ids unique even when consecutive
		// batches start within the same second.
		batchID := fmt.Sprintf("%s_%03d", s.now().UTC().Format(batchIDLayout), batchNo)
		s.logger.Info("generating batch",
			slog.Int("batch", batchNo),
			slog.Int("batches", gen.Batches),
			slog.String("batch_id", batchID),
		)

		batch, err := s.generateBatch(products, state)
		if err != nil {
			return nil, errors.Wrapf(err, "generate batch %d", batchNo)
		}

		if err := s.sink.SaveBatch(ctx, batchID, batch); err != nil {
			return nil, errors.Wrapf(err, "upload batch %d", batchNo)
		}

		summary.Customers += len(batch.Customers)
		summary.Addresses += len(batch.Addresses)
		summary.Orders += len(batch.Orders)
		summary.OrderItems += len(batch.OrderItems)
		summary.Payments += len(batch.Payments)
		summary.Shipments += len(batch.Shipments)
		summary.StatusHistory += len(batch.StatusHistory)
	}

	state.MarkRun(s.now())
	if err := s.stateRepo.Save(ctx, state); err != nil {
		return nil, errors.Wrap(err, "save sequence state")
	}

	summary.NextOrderID = state.OrderID
	s.logger.Info("generation run finished",
		slog.Int("orders", summary.Orders),
		slog.Int64("next_order_id", summary.NextOrderID),
	)

	return summary, nil
}

// loadState fetches the persisted counters. A missing state is the normal
// first-run condition. Any other load failure falls back to a fresh state
// with a warning: availability over strict consistency, an accepted risk of
// the incremental design.
func (s *generatorService) loadState(ctx context.Context) *entity.SequenceState {
	state, err := s.stateRepo.Load(ctx)
	switch {
	case err == nil:
		s.logger.Info("loaded existing sequence state",
			slog.Int64("order_id_seq", state.OrderID),
			slog.String("last_run_ts", state.LastRunTS),
		)

		return state
	case errors.Is(err, repository.ErrStateNotFound):
		s.logger.Info("no sequence state found, starting fresh")
	default:
		s.logger.Warn("failed to load sequence state, defaulting to fresh state",
			slog.Any("error", err),
		)
	}

	return entity.NewSequenceState()
}

// generateBatch materializes the batch's customer pool first, then draws
// every order against that pool. Orders never reference customers of a
// batch that has not been generated yet.
func (s *generatorService) generateBatch(products []*entity.Product, state *entity.SequenceState) (*entity.Batch, error) {
	gen := s.cfg.Generation
	batch := &entity.Batch{}

	for range gen.CustomersPerBatch {
		customer, address := s.newCustomer(state)
		batch.Customers = append(batch.Customers, customer)
		batch.Addresses = append(batch.Addresses, address)
	}

	for range gen.OrdersPerBatch {
		customer := batch.Customers[s.faker.Number(0, len(batch.Customers)-1)]

		bundle, err := s.engine.BuildOrder(customer, products, state)
		if err != nil {
			return nil, err
		}

		batch.Orders = append(batch.Orders, bundle.order)
		batch.OrderItems = append(batch.OrderItems, bundle.items...)
		batch.StatusHistory = append(batch.StatusHistory, bundle.history...)
		if bundle.payment != nil {
			batch.Payments = append(batch.Payments, bundle.payment)
		}
		if bundle.shipment != nil {
			batch.Shipments = append(batch.Shipments, bundle.shipment)
		}
	}

	return batch, nil
}

// newCustomer creates one customer and its single default shipping address,
// sharing the creation timestamp.
func (s *generatorService) newCustomer(state *entity.SequenceState) (*entity.Customer, *entity.Address) {
	createdAt := s.now().UTC().Add(-time.Duration(s.faker.Number(0, 30)) * 24 * time.Hour)

	customer := &entity.Customer{
		ID:        state.NextCustomerID(),
		Email:     s.newEmail(),
		FirstName: s.faker.FirstName(),
		LastName:  s.faker.LastName(),
		Phone:     s.newPhone(),
		Status:    "ACTIVE",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	address := &entity.Address{
		ID:         state.NextAddressID(),
		CustomerID: customer.ID,
		Type:       "SHIPPING",
		Street:     s.faker.Street(),
		City:       s.faker.City(),
		PostalCode: s.faker.Zip(),
		Country:    s.faker.CountryAbr(),
		IsDefault:  true,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}

	return customer, address
}

func (s *generatorService) newEmail() string {
	domain := emailDomains[s.faker.Number(0, len(emailDomains)-1)]

	return fmt.Sprintf("%s@%s", s.faker.Username(), domain)
}

func (s *generatorService) newPhone() string {
	return fmt.Sprintf("+%d %d %d %d",
		s.faker.Number(10, 99),
		s.faker.Number(100, 999),
		s.faker.Number(100, 999),
		s.faker.Number(100, 999),
	)
}
