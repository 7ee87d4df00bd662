package model

// Event represents one business/service day.  Menus and sessions are
// scoped to an event by foreign key.  Events are created from the admin
// surface and never deleted; the date is immutable after creation.
//
// Fields:
//  ID   – opaque unique identifier.
//  Name – display name, e.g. "Saturday service".
//  Date – ISO date string of the service day.
type Event struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}
