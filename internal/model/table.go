package model

// Table is a physical table in the venue.  The Enabled flag gates
// whether new seating sessions may be opened on it; disabling a table
// does not touch sessions that are already open.
type Table struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
}
