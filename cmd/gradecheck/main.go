// gradecheck runs the full assessment pipeline over a JSON fixture: access
// check, availability, auto-grading, proctoring score, and the release
// projection a non-admin viewer would receive. Useful for dry-running a test
// definition before publishing it.
//
// Usage: gradecheck -fixture attempt.json [-admin]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/matthewnoahkim/teamy-sub001/internal/access"
	"github.com/matthewnoahkim/teamy-sub001/internal/config"
	"github.com/matthewnoahkim/teamy-sub001/internal/exam"
	"github.com/matthewnoahkim/teamy-sub001/internal/grading"
	"github.com/matthewnoahkim/teamy-sub001/internal/logging"
	"github.com/matthewnoahkim/teamy-sub001/internal/proctoring"
	"github.com/matthewnoahkim/teamy-sub001/internal/ratelimit"
	"github.com/matthewnoahkim/teamy-sub001/internal/roster"
	"github.com/matthewnoahkim/teamy-sub001/internal/shuffle"
)

type fixture struct {
	Test        exam.Test           `json:"test"`
	Attempt     exam.Attempt        `json:"attempt"`
	Membership  roster.Membership   `json:"membership"`
	Enrollments []roster.Assignment `json:"enrollments,omitempty"`
	Events      []proctoring.Event  `json:"events,omitempty"`
}

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	fixturePath := flag.String("fixture", "", "path to a JSON fixture (test, attempt, membership, events)")
	asAdmin := flag.Bool("admin", false, "project the attempt as an admin viewer")
	flag.Parse()
	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: gradecheck -fixture attempt.json [-admin]")
		os.Exit(2)
	}

	raw, err := os.ReadFile(*fixturePath)
	if err != nil {
		logger.Error("read fixture", "err", err)
		os.Exit(1)
	}
	var fx fixture
	if err := json.Unmarshal(raw, &fx); err != nil {
		logger.Error("parse fixture", "err", err)
		os.Exit(1)
	}
	if fx.Attempt.ID == "" {
		fx.Attempt.ID = uuid.NewString()
	}

	limiter := ratelimit.New(ratelimit.NewMemoryStore(), ratelimit.WithSweepInterval(cfg.RateLimitSweep))
	defer limiter.Stop()
	if !limiter.Allow("gradecheck:"+fx.Membership.ID, cfg.RateLimitMax, cfg.RateLimitWindow) {
		logger.Warn("rate limit exceeded", "membership", fx.Membership.ID)
		os.Exit(1)
	}

	now := time.Now()
	eventIDs := roster.EventIDs(fx.Enrollments, fx.Membership.ID)

	if !access.HasTestAssignmentAccess(fx.Test.Assignments, fx.Membership, eventIDs) {
		logger.Warn("membership is not assigned this test",
			"membership", fx.Membership.ID, "test", fx.Test.ID)
	}
	if avail := exam.CheckAvailability(fx.Test, now); !avail.Available {
		logger.Warn("test not accepting submissions", "reason", avail.Reason)
	}

	questions := make(map[string]exam.Question, len(fx.Test.Questions))
	for _, q := range fx.Test.Questions {
		questions[q.ID] = q
	}

	grader := grading.New()
	total := 0.0
	manual := 0
	for i := range fx.Attempt.Answers {
		ans := &fx.Attempt.Answers[i]
		q, ok := questions[ans.QuestionID]
		if !ok {
			logger.Warn("answer references unknown question", "question", ans.QuestionID)
			continue
		}
		res := grader.Grade(q, *ans)
		if res.NeedsManual {
			manual++
			logger.Info("needs manual grading", "question", q.ID)
			continue
		}
		pts := res.PointsAwarded
		graded := now
		ans.PointsAwarded = &pts
		ans.GradedAt = &graded
		total += pts
		logger.Debug("graded", "question", q.ID, "points", pts, "correct", res.IsCorrect)

		order := shuffle.Slice(q.Options, shuffle.Seed(fx.Attempt.ID, q.ID))
		ids := make([]string, len(order))
		for j, o := range order {
			ids[j] = o.ID
		}
		logger.Debug("option order", "question", q.ID, "order", ids)
	}
	fx.Attempt.GradeEarned = &total

	risk := proctoring.Score(fx.Events)
	fx.Attempt.ProctoringScore = &risk

	projected := exam.FilterAttempt(fx.Attempt, fx.Test, *asAdmin, now)

	logger.Info("graded attempt",
		"attempt", fx.Attempt.ID,
		"earned", total,
		"manual_pending", manual,
		"proctoring_score", risk,
		"release", exam.ShouldRelease(fx.Test, now),
		"mode", fx.Test.ScoreReleaseMode)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(projected); err != nil {
		logger.Error("encode projection", "err", err)
		os.Exit(1)
	}
}
