package entity

import "time"

// sentinelLastRun marks a state that has never completed a run.
const sentinelLastRun = "2024-01-01T00:00:00Z"

// SequenceState carries the next-available id for every entity type plus the
// timestamp of the last completed run. It is the single persisted artifact of
// the generator; sequence continuity across runs depends on it surviving
// whole-object replaces only after fully successful runs.
//
// JSON field names match the state object written by earlier pipeline
// versions and must not change.
type SequenceState struct {
	CustomerID      int64  `json:"customer_id_seq"`
	AddressID       int64  `json:"address_id_seq"`
	OrderID         int64  `json:"order_id_seq"`
	OrderItemID     int64  `json:"order_item_id_seq"`
	PaymentID       int64  `json:"payment_id_seq"`
	ShipmentID      int64  `json:"shipment_id_seq"`
	StatusHistoryID int64  `json:"history_id_seq"`
	LastRunTS       string `json:"last_run_ts"`
}

// NewSequenceState returns the fresh first-run state: every counter at 1 and
// the sentinel last-run timestamp.
func NewSequenceState() *SequenceState {
	return &SequenceState{
		CustomerID:      1,
		AddressID:       1,
		OrderID:         1,
		OrderItemID:     1,
		PaymentID:       1,
		ShipmentID:      1,
		StatusHistoryID: 1,
		LastRunTS:       sentinelLastRun,
	}
}

// The Next* accessors hand out the current id and advance the counter.
// Callers never touch the fields directly when assigning ids.

func (s *SequenceState) NextCustomerID() int64 {
	id := s.CustomerID
	s.CustomerID++

	return id
}

func (s *SequenceState) NextAddressID() int64 {
	id := s.AddressID
	s.AddressID++

	return id
}

func (s *SequenceState) NextOrderID() int64 {
	id := s.OrderID
	s.OrderID++

	return id
}

func (s *SequenceState) NextOrderItemID() int64 {
	id := s.OrderItemID
	s.OrderItemID++

	return id
}

func (s *SequenceState) NextPaymentID() int64 {
	id := s.PaymentID
	s.PaymentID++

	return id
}

func (s *SequenceState) NextShipmentID() int64 {
	id := s.ShipmentID
	s.ShipmentID++

	return id
}

func (s *SequenceState) NextStatusHistoryID() int64 {
	id := s.StatusHistoryID
	s.StatusHistoryID++

	return id
}

// MarkRun records the completion timestamp of the current run.
func (s *SequenceState) MarkRun(t time.Time) {
	s.LastRunTS = t.UTC().Format(time.RFC3339)
}
