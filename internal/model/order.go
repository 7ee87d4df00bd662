package model

import "time"

// Order item status labels.  An item only ever moves forward through
// ordered → preparing → ready → served.  StatusCompleted is a historical
// synonym some callers still send for "ready"; it is accepted on input
// and normalized before storage, so persisted items never carry it.
const (
	StatusOrdered   = "ordered"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusCompleted = "completed"
	StatusServed    = "served"
)

// Service types carried on order items and payments.
const (
	ServiceDineIn  = "dinein"
	ServiceTakeout = "takeout"
)

// Order groups the items submitted in one request.  It carries no
// further mutable state of its own.
type Order struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrderItem is the unit of kitchen and service tracking: exactly one
// physical unit with one status lifecycle.  Quantities are expanded to
// unit granularity at creation time, so "quantity 3" becomes three
// records, each with its own option selections.
//
// Fields:
//  ID               – opaque unique identifier.
//  OrderID          – submission batch this item belongs to.
//  SessionID        – owning session.
//  MenuID           – menu this unit was ordered from.
//  OptionSelections – optionGroupId → chosen optionId.
//  Status           – current lifecycle status (canonical label).
//  StatusTimestamps – status label → time the status was entered.
//                     Keys are never removed, giving a full audit trail
//                     of transition times.
//  Paid             – flips permanently true when settled.
//  PaymentID        – settlement that covered this unit (nil until paid).
//  ServiceType      – ServiceDineIn or ServiceTakeout.
//  EventID          – owning event.
type OrderItem struct {
	ID               string               `json:"id"`
	OrderID          string               `json:"orderId"`
	SessionID        string               `json:"sessionId"`
	MenuID           string               `json:"menuId"`
	OptionSelections map[string]string    `json:"optionSelections"`
	Status           string               `json:"status"`
	StatusTimestamps map[string]time.Time `json:"statusTimestamps"`
	Paid             bool                 `json:"paid"`
	PaymentID        *string              `json:"paymentId"`
	ServiceType      string               `json:"serviceType"`
	EventID          string               `json:"eventId"`
}
