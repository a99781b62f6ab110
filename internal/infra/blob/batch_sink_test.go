package blob

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/config"
	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/internal/domain/entity"
	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gcblob "gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func newTestSink(t *testing.T) (repository.BatchSink, *gcblob.Bucket) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	cfg := &config.Config{}
	cfg.Storage.RootPrefix = "data"

	sink := NewBatchSink(BatchSinkParams{
		Bucket: bucket,
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return sink, bucket
}

func sampleBatch() *entity.Batch {
	created := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)

	return &entity.Batch{
		Customers: []*entity.Customer{{
			ID: 1, Email: "jane.doe@gmail.com", FirstName: "Jane", LastName: "Doe",
			Status: "ACTIVE", CreatedAt: created, UpdatedAt: created,
		}},
		Addresses: []*entity.Address{{
			ID: 1, CustomerID: 1, Type: "SHIPPING", Street: "1 Main St", City: "Berlin",
			PostalCode: "10115", Country: "DE", IsDefault: true, CreatedAt: created, UpdatedAt: created,
		}},
		Orders: []*entity.Order{{
			ID: 1, CustomerID: 1, Status: entity.StatusPaid,
			TotalAmount: decimal.NewFromFloat(249.00), Currency: "EUR",
			CreatedAt: created, UpdatedAt: created.Add(3 * time.Hour),
		}},
		OrderItems: []*entity.OrderItem{{
			ID: 1, OrderID: 1, ProductID: 7, Quantity: 1,
			UnitPrice: decimal.NewFromFloat(249.00), CreatedAt: created,
		}},
		Payments: []*entity.Payment{{
			ID: 1, OrderID: 1, Provider: "VISA", Status: "SUCCESS",
			Amount: decimal.NewFromFloat(249.00), CreatedAt: created, UpdatedAt: created,
		}},
		Shipments: nil,
		StatusHistory: []*entity.StatusHistory{
			{ID: 1, OrderID: 1, Status: entity.StatusCreated, ChangedAt: created},
			{ID: 2, OrderID: 1, Status: entity.StatusPaid, ChangedAt: created.Add(3 * time.Hour)},
		},
	}
}

func TestBatchSink_SaveBatch_WritesAllTables(t *testing.T) {
	sink, bucket := newTestSink(t)
	ctx := context.Background()

	require.NoError(t, sink.SaveBatch(ctx, "20250701_08_00_00_001", sampleBatch()))

	wantKeys := []string{
		"data/customers_raw/customers_20250701_08_00_00_001.json",
		"data/addresses_raw/addresses_20250701_08_00_00_001.json",
		"data/orders_raw/orders_20250701_08_00_00_001.json",
		"data/order_items_raw/items_20250701_08_00_00_001.json",
		"data/payments_raw/payments_20250701_08_00_00_001.json",
		"data/shipments_raw/shipments_20250701_08_00_00_001.json",
		"data/order_status_history_raw/history_20250701_08_00_00_001.json",
	}
	for _, key := range wantKeys {
		exists, err := bucket.Exists(ctx, key)
		require.NoError(t, err)
		assert.True(t, exists, "missing payload %s", key)
	}
}

func TestBatchSink_SaveBatch_PayloadShape(t *testing.T) {
	sink, bucket := newTestSink(t)
	ctx := context.Background()

	require.NoError(t, sink.SaveBatch(ctx, "b1", sampleBatch()))

	raw, err := bucket.ReadAll(ctx, "data/orders_raw/orders_b1.json")
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(raw, &rows))
	require.Len(t, rows, 1)

	row := rows[0]
	assert.EqualValues(t, 1, row["order_id"])
	assert.Equal(t, "PAID", row["order_status"])
	assert.Equal(t, "EUR", row["currency"])
	// Timestamps serialize as ISO-8601.
	assert.Equal(t, "2025-07-01T08:00:00Z", row["created_at"])

	attrs, err := bucket.Attributes(ctx, "data/orders_raw/orders_b1.json")
	require.NoError(t, err)
	assert.Equal(t, "application/json", attrs.ContentType)
}

func TestBatchSink_SaveCatalog(t *testing.T) {
	sink, bucket := newTestSink(t)
	ctx := context.Background()

	products := []*entity.Product{{
		ID: 1, Name: "AirPods Pro", Category: "Electronics", Brand: "Apple",
		Price: decimal.NewFromFloat(249.00), Currency: "EUR", Status: "ACTIVE",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}}

	require.NoError(t, sink.SaveCatalog(ctx, "20250701_08_00_00", products))

	raw, err := bucket.ReadAll(ctx, "data/products_raw/products_20250701_08_00_00.json")
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(raw, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "AirPods Pro", rows[0]["name"])
}

func TestBatchSink_SaveBatch_FailurePropagates(t *testing.T) {
	sink, bucket := newTestSink(t)

	// A closed bucket makes every write fail.
	require.NoError(t, bucket.Close())

	err := sink.SaveBatch(context.Background(), "b1", sampleBatch())
	require.Error(t, err)
}
