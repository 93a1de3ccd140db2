// Package grading auto-grades a single answer against its question. Every
// entry point is total: malformed input degrades to "needs manual review",
// never a panic or an error the caller has to branch on.
package grading

import (
	"math"
	"strconv"
	"strings"

	"github.com/matthewnoahkim/teamy-sub001/internal/exam"
)

// Result is the outcome of grading one answer.
type Result struct {
	PointsAwarded float64 `json:"points_awarded"`
	IsCorrect     bool    `json:"is_correct"`
	// NeedsManual marks answers a human must grade; the caller leaves
	// GradedAt unset for these.
	NeedsManual bool `json:"needs_manual,omitempty"`
}

// Strategy grades one question type.
type Strategy interface {
	Grade(q exam.Question, a exam.Answer) Result
}

// Grader routes by question type to the matching Strategy.
type Grader struct {
	strategies map[exam.QuestionType]Strategy
}

type Option func(*Grader)

// WithStrategy overrides or adds the strategy for one question type.
func WithStrategy(t exam.QuestionType, s Strategy) Option {
	return func(g *Grader) { g.strategies[t] = s }
}

// New installs the built-in strategies.
func New(opts ...Option) *Grader {
	g := &Grader{
		strategies: map[exam.QuestionType]Strategy{
			exam.MCQSingle: mcqSingleStrategy{},
			exam.MCQMulti:  mcqMultiStrategy{},
			exam.Numeric:   numericStrategy{},
			exam.ShortText: shortTextStrategy{},
			exam.LongText:  manualStrategy{},
		},
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Grade dispatches on the question type. Unknown types fall back to manual
// review. Awarded points are clamped to [0, q.Points].
func (g *Grader) Grade(q exam.Question, a exam.Answer) Result {
	s, ok := g.strategies[q.Type]
	if !ok {
		return Result{NeedsManual: true}
	}
	res := s.Grade(q, a)
	if res.PointsAwarded > q.Points {
		res.PointsAwarded = q.Points
	}
	if res.PointsAwarded < 0 {
		res.PointsAwarded = 0
	}
	return res
}

// --- Strategies ---

type mcqSingleStrategy struct{}

func (mcqSingleStrategy) Grade(q exam.Question, a exam.Answer) Result {
	correctID := ""
	for _, o := range q.Options {
		if o.IsCorrect {
			correctID = o.ID
			break
		}
	}
	if correctID == "" || len(a.SelectedOptionIDs) != 1 {
		return Result{}
	}
	if a.SelectedOptionIDs[0] != correctID {
		return Result{}
	}
	return Result{PointsAwarded: q.Points, IsCorrect: true}
}

type mcqMultiStrategy struct{}

func (mcqMultiStrategy) Grade(q exam.Question, a exam.Answer) Result {
	correct := map[string]struct{}{}
	for _, o := range q.Options {
		if o.IsCorrect {
			correct[o.ID] = struct{}{}
		}
	}
	selected := map[string]struct{}{}
	for _, id := range a.SelectedOptionIDs {
		selected[id] = struct{}{}
	}
	// exact set match, no partial credit
	if len(correct) != len(selected) {
		return Result{}
	}
	for id := range selected {
		if _, ok := correct[id]; !ok {
			return Result{}
		}
	}
	return Result{PointsAwarded: q.Points, IsCorrect: true}
}

type numericStrategy struct{}

func (numericStrategy) Grade(q exam.Question, a exam.Answer) Result {
	if a.NumericAnswer == nil {
		return Result{}
	}
	var target float64
	found := false
	for _, o := range q.Options {
		if !o.IsCorrect {
			continue
		}
		if v, ok := parseFloatLoose(o.Label); ok {
			target = v
			found = true
		}
		break
	}
	if !found {
		return Result{}
	}
	tol := 0.0
	if q.NumericTolerance != nil {
		tol = *q.NumericTolerance
	}
	if math.Abs(*a.NumericAnswer-target) <= tol {
		return Result{PointsAwarded: q.Points, IsCorrect: true}
	}
	return Result{}
}

type manualStrategy struct{}

func (manualStrategy) Grade(exam.Question, exam.Answer) Result {
	return Result{NeedsManual: true}
}

// parseFloatLoose trims the label and falls back to its first field, so
// labels like "3.14 (pi)" still parse.
func parseFloatLoose(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, true
	}
	if sp := strings.Fields(s); len(sp) > 0 {
		if v, err := strconv.ParseFloat(sp[0], 64); err == nil {
			return v, true
		}
	}
	return 0, false
}
