package model

import "time"

// Session status values.  A session is open from the moment a party is
// seated until every order item belonging to it has been paid.
const (
	SessionOpen   = "open"
	SessionClosed = "closed"
)

// Session is one seated party's continuous tab at a table, from open to
// full settlement.  At most one open session may exist per (table,
// event) pair; the session manager enforces this before creating a new
// one.
//
// Fields:
//  ID          – opaque unique identifier.
//  TableID     – table the party is seated at.
//  EventID     – owning event.
//  Headcount   – number of guests (positive).
//  StartedAt   – when the session was opened.
//  ClosedAt    – when the session was closed (nil while open).
//  Status      – SessionOpen or SessionClosed.
//  TableUseSeq – 1-based count of sessions ever opened on this table.
//  DisplayID   – human-readable id, "<tableLabel>-<tableUseSeq>".
type Session struct {
	ID          string     `json:"id"`
	TableID     string     `json:"tableId"`
	EventID     string     `json:"eventId"`
	Headcount   int        `json:"headcount"`
	StartedAt   time.Time  `json:"startedAt"`
	ClosedAt    *time.Time `json:"closedAt"`
	Status      string     `json:"status"`
	TableUseSeq int        `json:"tableUseSeq"`
	DisplayID   string     `json:"displayId"`
}
