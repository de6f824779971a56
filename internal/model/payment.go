package model

// Payment mirrors the `payments` table. Payments are recorded and
// listed for staff but no settlement logic lives in this service;
// the shape exists for an external processor to fill in.
//
// Fields:
//  ID      – primary key identifier.
//  OrderID – referenced order.
//  Amount  – amount charged.
//  Status  – processor-reported state string.
type Payment struct {
	ID      int64   // payments.id
	OrderID int64   // payments.order_id
	Amount  float64 // payments.amount
	Status  string  // payments.status
}
