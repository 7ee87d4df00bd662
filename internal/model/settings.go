package model

// Settings is the process-wide singleton governing how long an
// unacknowledged order item may wait before the kitchen display raises
// a repeating alert.  Mutated only via admin update; the alert scanner
// reads it on every pass.
type Settings struct {
	AlertInitialDelaySec   int `json:"alertInitialDelaySec"`
	AlertRepeatIntervalSec int `json:"alertRepeatIntervalSec"`
	AlertMaxRepeats        int `json:"alertMaxRepeats"`
}
