package entity

// Batch is one unit of generated data: the customers and addresses created
// in it plus every order-derived record referencing them. A batch is handed
// to the sink as a whole; partial batches are never valid output.
type Batch struct {
	Customers     []*Customer
	Addresses     []*Address
	Orders        []*Order
	OrderItems    []*OrderItem
	Payments      []*Payment
	Shipments     []*Shipment
	StatusHistory []*StatusHistory
}

// Table is one named payload of a batch, in sink order.
type Table struct {
	// Name is the table directory, e.g. "customers_raw".
	Name string
	// File is the short name used in the payload filename, e.g. "customers".
	File string
	// Rows is the slice of records to marshal.
	Rows any
}

// Tables returns the seven payloads of the batch in their canonical order.
// The order is stable so a failed upload always aborts at a deterministic
// point.
func (b *Batch) Tables() []Table {
	return []Table{
		{Name: "customers_raw", File: "customers", Rows: b.Customers},
		{Name: "addresses_raw", File: "addresses", Rows: b.Addresses},
		{Name: "orders_raw", File: "orders", Rows: b.Orders},
		{Name: "order_items_raw", File: "items", Rows: b.OrderItems},
		{Name: "payments_raw", File: "payments", Rows: b.Payments},
		{Name: "shipments_raw", File: "shipments", Rows: b.Shipments},
		{Name: "order_status_history_raw", File: "history", Rows: b.StatusHistory},
	}
}

// Append merges another batch's records. Used by tests and by callers that
// aggregate run output.
func (b *Batch) Append(other *Batch) {
	b.Customers = append(b.Customers, other.Customers...)
	b.Addresses = append(b.Addresses, other.Addresses...)
	b.Orders = append(b.Orders, other.Orders...)
	b.OrderItems = append(b.OrderItems, other.OrderItems...)
	b.Payments = append(b.Payments, other.Payments...)
	b.Shipments = append(b.Shipments, other.Shipments...)
	b.StatusHistory = append(b.StatusHistory, other.StatusHistory...)
}
