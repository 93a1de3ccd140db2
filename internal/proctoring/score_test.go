package proctoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func events(kinds ...string) []Event {
	out := make([]Event, len(kinds))
	for i, k := range kinds {
		out[i] = Event{Kind: k}
	}
	return out
}

func TestScore_Empty(t *testing.T) {
	assert.Equal(t, 0, Score(nil))
	assert.Equal(t, 0, Score([]Event{}))
}

func TestScore_KnownSequence(t *testing.T) {
	// 10*ln2 + 10*ln3 + 15*ln2 = 6.93 + 10.99 + 10.40 -> 28
	got := Score(events(KindTabSwitch, KindTabSwitch, KindExitFullscreen))
	assert.Equal(t, 28, got)
}

func TestScore_SingleEvents(t *testing.T) {
	// one event of weight w scores round(w*ln2)
	assert.Equal(t, 14, Score(events(KindDevtoolsOpen)))
	assert.Equal(t, 2, Score(events(KindContextMenu)))
	assert.Equal(t, 1, Score(events(KindResize)))
}

func TestScore_UnknownKindDefaultsToWeightOne(t *testing.T) {
	// round(1*ln2) = 1
	assert.Equal(t, 1, Score(events("SOMETHING_NEW")))
}

func TestScore_MonotonicNonDecreasing(t *testing.T) {
	kinds := []string{
		KindTabSwitch, KindBlur, KindTabSwitch, "UNKNOWN", KindCopy,
		KindExitFullscreen, KindBlur, KindPaste, KindDevtoolsOpen, KindTabSwitch,
	}
	prev := 0
	for i := 1; i <= len(kinds); i++ {
		s := Score(events(kinds[:i]...))
		assert.GreaterOrEqual(t, s, prev, "after %d events", i)
		prev = s
	}
}

func TestScore_ClampedTo100(t *testing.T) {
	many := make([]Event, 50)
	for i := range many {
		many[i] = Event{Kind: KindDevtoolsOpen}
	}
	assert.Equal(t, 100, Score(many))
}
