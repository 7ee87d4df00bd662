// Package queue defines message payloads exchanged over the message broker.
package queue

// PaymentRecordedEvent is published when a settlement is recorded.  It
// carries enough for back-office consumers to tally revenue per event
// and method without holding a socket open against the live store.
type PaymentRecordedEvent struct {
	PaymentID    string   `json:"payment_id"`
	SessionID    string   `json:"session_id"`
	EventID      string   `json:"event_id"`
	TotalAmount  int      `json:"total_amount"`
	Method       string   `json:"method"`
	ServiceType  string   `json:"service_type"`
	SplitType    string   `json:"split_type"`
	Coupon       string   `json:"coupon,omitempty"`
	OrderItemIDs []string `json:"order_item_ids"`
	PaidAt       string   `json:"paid_at"`
}
