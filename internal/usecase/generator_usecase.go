package usecase

import "context"

// RunSummary reports what one generation run produced.
type RunSummary struct {
	Batches       int
	Products      int
	Customers     int
	Addresses     int
	Orders        int
	OrderItems    int
	Payments      int
	Shipments     int
	StatusHistory int

	// NextOrderID is the first order id the following run will assign.
	NextOrderID int64
}

// GeneratorUsecase drives one full incremental generation run: load state,
// build and upload the catalog, generate and upload every batch, persist the
// advanced state. A run either completes all batches and saves state, or
// fails without persisting anything.
type GeneratorUsecase interface {
	Run(ctx context.Context) (*RunSummary, error)
}
