// Package store owns the canonical in-memory records for events, tables,
// menus, sessions, orders, order items and payments, and implements the
// engines that mutate them: the stock ledger, the session manager, the
// order engine, the status machine and the payment engine.  Every
// mutating operation runs its whole check-then-mutate sequence inside
// one critical section, so concurrent callers can never observe or
// produce a half-applied transition.  This file defines the sentinel
// errors shared by those engines; handlers translate them into HTTP
// status codes.
package store

import "errors"

// ErrNotFound is returned when a referenced entity id is unknown.
var ErrNotFound = errors.New("not found")

// ErrInvalidInput is returned when a required field is missing or
// malformed, e.g. an absent name or a non-positive price.
var ErrInvalidInput = errors.New("invalid input")

// ErrStockUnavailable is returned by the stock ledger when a referenced
// menu is missing, hidden, or short of stock at reservation time.  The
// wrapped message names the failing menu.
var ErrStockUnavailable = errors.New("stock unavailable")

// ErrSessionInvalid is returned when a session is missing or not open.
var ErrSessionInvalid = errors.New("session invalid")

// ErrCancelNotAllowed is returned when an order item has progressed
// past the cancellable initial state.
var ErrCancelNotAllowed = errors.New("cancel not allowed")

// ErrInvalidStatus is returned for unrecognized status labels.
var ErrInvalidStatus = errors.New("invalid status")

// ErrNoItemsToSettle is returned when a settlement resolves to an
// empty item set.
var ErrNoItemsToSettle = errors.New("no items to settle")

// ErrTableNotFound is returned when a session is opened against an
// unknown table id.
var ErrTableNotFound = errors.New("table not found")

// ErrTableDisabled is returned when a session is opened on a table
// whose enabled flag is off.  Handlers should translate this into an
// HTTP 409 response.
var ErrTableDisabled = errors.New("table disabled")

// ErrSessionConflict is returned when a table already has an open
// session for the event.  At most one open session may exist per
// (table, event) pair.  Handlers should translate this into an HTTP
// 409 response.
var ErrSessionConflict = errors.New("open session already exists")
