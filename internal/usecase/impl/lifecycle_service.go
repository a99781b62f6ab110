package impl

import (
	"time"

	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/config"
	"github.com/krzysztof-piechowski/ecommerce-elt-pipeline/internal/domain/entity"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	paymentProviders = []string{"VISA", "PAYPAL"}
	carriers         = []string{"DHL", "UPS", "FEDEX"}
)

// orderBundle is the atomic output of one engine invocation: the order plus
// every record derived from its lifecycle. The records are emitted together
// or not at all.
type orderBundle struct {
	order    *entity.Order
	items    []*entity.OrderItem
	payment  *entity.Payment
	shipment *entity.Shipment
	history  []*entity.StatusHistory
}

// lifecycleEngine derives one order and its dependent records from a single
// walk of the order lifecycle. Which dependents exist is a deterministic
// function of where the walk stops, never an independent draw; that is what
// keeps payments, shipments and history mutually consistent.
type lifecycleEngine struct {
	faker        *gofakeit.Faker
	cancellation config.Cancellation
}

func newLifecycleEngine(faker *gofakeit.Faker, cancellation config.Cancellation) *lifecycleEngine {
	return &lifecycleEngine{
		faker:        faker,
		cancellation: cancellation,
	}
}

// BuildOrder generates one order for the customer, advancing the touched id
// counters of state by the number of records emitted per type.
func (e *lifecycleEngine) BuildOrder(customer *entity.Customer, catalog []*entity.Product, state *entity.SequenceState) (*orderBundle, error) {
	if len(catalog) == 0 {
		return nil, errors.WithStack(ErrEmptyCatalog)
	}

	orderDate := customer.CreatedAt.Add(time.Duration(e.faker.Number(1, 48)) * time.Hour)

	final, afterPayment := e.drawFinalStatus()
	flow, err := entity.FlowTo(final, afterPayment)
	if err != nil {
		return nil, err
	}

	orderID := state.NextOrderID()

	// Status history: strictly increasing timestamps along the flow prefix.
	history := make([]*entity.StatusHistory, 0, len(flow))
	changedAt := orderDate
	for i, step := range flow {
		if i > 0 {
			changedAt = changedAt.Add(time.Duration(e.faker.Number(2, 12)) * time.Hour)
		}
		history = append(history, &entity.StatusHistory{
			ID:        state.NextStatusHistoryID(),
			OrderID:   orderID,
			Status:    step,
			ChangedAt: changedAt,
		})
	}
	finalTS := history[len(history)-1].ChangedAt

	items, total := e.buildItems(orderID, orderDate, catalog, state)

	bundle := &orderBundle{
		order: &entity.Order{
			ID:          orderID,
			CustomerID:  customer.ID,
			Status:      final,
			TotalAmount: total,
			Currency:    catalog[0].Currency,
			CreatedAt:   orderDate,
			UpdatedAt:   finalTS,
		},
		items:   items,
		history: history,
	}

	if entity.RequiresPayment(flow) {
		paidAt := orderDate.Add(15 * time.Minute)
		bundle.payment = &entity.Payment{
			ID:        state.NextPaymentID(),
			OrderID:   orderID,
			Provider:  paymentProviders[e.faker.Number(0, len(paymentProviders)-1)],
			Status:    "SUCCESS",
			Amount:    total,
			CreatedAt: paidAt,
			UpdatedAt: paidAt,
		}
	}

	if final.RequiresShipment() {
		bundle.shipment = e.buildShipment(orderID, orderDate, final, history, state)
	}

	return bundle, nil
}

// drawFinalStatus picks the status the order stops at. Cancellation, when
// enabled, joins the uniform draw as a fifth outcome; afterPayment reports
// whether a cancelled order records PAID before CANCELLED.
func (e *lifecycleEngine) drawFinalStatus() (final entity.OrderStatus, afterPayment bool) {
	n := len(entity.LifecycleFlow)
	if e.cancellation.Enabled {
		n++
	}

	pick := e.faker.Number(0, n-1)
	if pick < len(entity.LifecycleFlow) {
		return entity.LifecycleFlow[pick], false
	}

	if e.cancellation.AfterPayment {
		afterPayment = e.faker.Number(0, 1) == 1
	}

	return entity.StatusCancelled, afterPayment
}

func (e *lifecycleEngine) buildItems(orderID int64, orderDate time.Time, catalog []*entity.Product, state *entity.SequenceState) ([]*entity.OrderItem, decimal.Decimal) {
	count := e.faker.Number(1, 4)
	items := make([]*entity.OrderItem, 0, count)
	total := decimal.Zero

	for range count {
		product := catalog[e.faker.Number(0, len(catalog)-1)]
		quantity := e.faker.Number(1, 2)

		items = append(items, &entity.OrderItem{
			ID:        state.NextOrderItemID(),
			OrderID:   orderID,
			ProductID: product.ID,
			Quantity:  quantity,
			UnitPrice: product.Price,
			CreatedAt: orderDate,
		})

		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(quantity))))
	}

	return items, total.Round(2)
}

// buildShipment mirrors the shipment timestamps off the recorded history so
// they can never drift from the order's transitions.
func (e *lifecycleEngine) buildShipment(orderID int64, orderDate time.Time, final entity.OrderStatus, history []*entity.StatusHistory, state *entity.SequenceState) *entity.Shipment {
	var shippedAt, deliveredAt *time.Time
	for _, h := range history {
		switch h.Status {
		case entity.StatusShipped:
			ts := h.ChangedAt
			shippedAt = &ts
		case entity.StatusDelivered:
			ts := h.ChangedAt
			deliveredAt = &ts
		}
	}

	return entity.NewShipment(
		state.NextShipmentID(),
		orderID,
		carriers[e.faker.Number(0, len(carriers)-1)],
		final,
		orderDate,
		shippedAt,
		deliveredAt,
	)
}
