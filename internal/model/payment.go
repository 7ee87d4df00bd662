package model

import "time"

// Payment methods and split types.
const (
	MethodCash = "cash"
	MethodQR   = "qr"

	SplitSame  = "same"
	SplitSplit = "split"
)

// CouponOnlineStore is the descriptor recorded on payments that applied
// the online-store promotion (the most expensive drink and the most
// expensive food of the settlement are free).
const CouponOnlineStore = "online_store"

// Payment records one settlement action against a session.  It is
// immutable once created.  A session may accumulate several payments
// under split billing, but each order item belongs to at most one.
//
// Fields:
//  ID           – opaque unique identifier.
//  SessionID    – session being settled.
//  EventID      – owning event.
//  TotalAmount  – computed total in the minor currency unit (>= 0).
//  Method       – MethodCash or MethodQR.
//  ServiceType  – service type reported by the register.
//  SplitType    – SplitSame (whole tab) or SplitSplit (item subset).
//  PaidAt       – settlement timestamp.
//  OrderItemIDs – the exact set of items this payment covered.
//  Coupon       – promotion descriptor, nil when no coupon applied.
type Payment struct {
	ID           string    `json:"id"`
	SessionID    string    `json:"sessionId"`
	EventID      string    `json:"eventId"`
	TotalAmount  int       `json:"totalAmount"`
	Method       string    `json:"method"`
	ServiceType  string    `json:"serviceType"`
	SplitType    string    `json:"splitType"`
	PaidAt       time.Time `json:"paidAt"`
	OrderItemIDs []string  `json:"orderItemIds"`
	Coupon       *string   `json:"coupon"`
}
