package grading

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/matthewnoahkim/teamy-sub001/internal/exam"
)

// blankMarker matches an inline blank token in a prompt: "[blank]" or a
// bracketed run of underscores like "[____]".
var blankMarker = regexp.MustCompile(`(?i)\[\s*(?:blank|_+)\s*\]`)

// blankDelimiter separates the positional blank answers inside one submitted
// answer string. The split is on the literal three-character sequence.
const blankDelimiter = " | "

// BlankKey is the answer key for a fill-in-the-blank question. It lives as
// JSON inside the question's Explanation field; stored data predating the
// current shape is a bare array of correct strings.
type BlankKey struct {
	Answers []string  `json:"answers"`
	Points  []float64 `json:"points,omitempty"`
}

// HasBlankMarkers reports whether a prompt contains inline blank tokens.
func HasBlankMarkers(promptMD string) bool {
	return blankMarker.MatchString(promptMD)
}

// ParseBlankKey decodes a blank answer key from JSON, accepting both the
// current {answers, points?} object and the legacy bare string array.
func ParseBlankKey(raw string) (BlankKey, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return BlankKey{}, false
	}
	var key BlankKey
	if err := json.Unmarshal([]byte(raw), &key); err == nil && len(key.Answers) > 0 {
		return key, true
	}
	var legacy []string
	if err := json.Unmarshal([]byte(raw), &legacy); err == nil && len(legacy) > 0 {
		return BlankKey{Answers: legacy}, true
	}
	return BlankKey{}, false
}

type shortTextStrategy struct{}

// Grade handles SHORT_TEXT. Prompts without blank markers need a human; with
// markers, the submitted string is split into positional blank answers and
// compared case-insensitively (trimmed) against the key. Per-blank points,
// when present, earn partial credit; otherwise grading is all-or-nothing.
func (shortTextStrategy) Grade(q exam.Question, a exam.Answer) Result {
	if !HasBlankMarkers(q.PromptMD) {
		return Result{NeedsManual: true}
	}
	key, ok := ParseBlankKey(q.Explanation)
	if !ok {
		// unreadable key: leave for manual review rather than failing the answer
		return Result{NeedsManual: true}
	}

	text := ""
	if a.AnswerText != nil {
		text = *a.AnswerText
	}
	parts := strings.Split(text, blankDelimiter)
	if len(parts) != len(key.Answers) {
		return Result{}
	}

	matched := make([]bool, len(parts))
	allMatch := true
	for i, part := range parts {
		if strings.EqualFold(strings.TrimSpace(part), strings.TrimSpace(key.Answers[i])) {
			matched[i] = true
		} else {
			allMatch = false
		}
	}

	if len(key.Points) == 0 {
		if allMatch {
			return Result{PointsAwarded: q.Points, IsCorrect: true}
		}
		return Result{}
	}

	earned := 0.0
	for i := range matched {
		if matched[i] && i < len(key.Points) {
			earned += key.Points[i]
		}
	}
	return Result{PointsAwarded: earned, IsCorrect: allMatch}
}
