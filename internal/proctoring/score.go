// Package proctoring turns a stream of client-reported integrity events into
// a single 0-100 risk score.
package proctoring

import "math"

// Event is one integrity signal reported during an attempt. Kind is an open
// vocabulary; unrecognized kinds still count, at the default weight.
type Event struct {
	Kind string `json:"kind"`
}

// Recognized event kinds.
const (
	KindExitFullscreen   = "EXIT_FULLSCREEN"
	KindTabSwitch        = "TAB_SWITCH"
	KindVisibilityHidden = "VISIBILITY_HIDDEN"
	KindDevtoolsOpen     = "DEVTOOLS_OPEN"
	KindBlur             = "BLUR"
	KindCopy             = "COPY"
	KindPaste            = "PASTE"
	KindContextMenu      = "CONTEXTMENU"
	KindResize           = "RESIZE"
	KindNetworkOffline   = "NETWORK_OFFLINE"
	KindMultiMonitorHint = "MULTI_MONITOR_HINT"
)

var weights = map[string]float64{
	KindExitFullscreen:   15,
	KindTabSwitch:        10,
	KindVisibilityHidden: 8,
	KindDevtoolsOpen:     20,
	KindBlur:             5,
	KindCopy:             10,
	KindPaste:            8,
	KindContextMenu:      3,
	KindResize:           2,
	KindNetworkOffline:   5,
	KindMultiMonitorHint: 12,
}

const defaultWeight = 1

// Score aggregates events into a risk score in [0, 100]. Each event adds
// weight*ln(c+1) where c is the running count of its kind, so the score is
// monotonic non-decreasing as events are appended.
//
// Note: ln(c+1) grows with c, so repeats of one kind contribute increasingly
// more per event, not less. Preserved as-is for parity with stored scores.
func Score(events []Event) int {
	counts := make(map[string]int, len(weights))
	total := 0.0
	for _, ev := range events {
		counts[ev.Kind]++
		w, ok := weights[ev.Kind]
		if !ok {
			w = defaultWeight
		}
		total += w * math.Log(float64(counts[ev.Kind])+1)
	}
	score := int(math.Round(total))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
