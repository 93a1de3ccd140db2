package exam

import (
	"time"

	"github.com/matthewnoahkim/teamy-sub001/internal/access"
)

// Status is a test's lifecycle state.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
	StatusClosed    Status = "CLOSED"
)

// ReleaseMode controls what graded detail a test-taker may see once scores
// are released.
type ReleaseMode string

const (
	ReleaseNone           ReleaseMode = "NONE"
	ReleaseScoreOnly      ReleaseMode = "SCORE_ONLY"
	ReleaseScoreWithWrong ReleaseMode = "SCORE_WITH_WRONG"
	ReleaseFullTest       ReleaseMode = "FULL_TEST"
)

// QuestionType selects the grading strategy for a question.
type QuestionType string

const (
	MCQSingle QuestionType = "MCQ_SINGLE"
	MCQMulti  QuestionType = "MCQ_MULTI"
	ShortText QuestionType = "SHORT_TEXT"
	LongText  QuestionType = "LONG_TEXT"
	Numeric   QuestionType = "NUMERIC"
)

type Option struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	IsCorrect bool   `json:"is_correct,omitempty"`
}

// Question is one item on a test. For NUMERIC questions the correct option's
// Label holds the numeric answer as text. For SHORT_TEXT questions with
// inline blank markers, Explanation is repurposed to hold the JSON answer
// key (see grading.ParseBlankKey).
type Question struct {
	ID               string       `json:"id"`
	Type             QuestionType `json:"type"`
	PromptMD         string       `json:"prompt_md"`
	Points           float64      `json:"points"`
	Order            int          `json:"order"`
	Options          []Option     `json:"options,omitempty"`
	NumericTolerance *float64     `json:"numeric_tolerance,omitempty"`
	Explanation      string       `json:"explanation,omitempty"`
}

// Answer is a test-taker's response to one question, plus grading metadata
// once graded. Question is the denormalized question record loaded alongside
// the answer; projections may replace it with a trimmed copy.
type Answer struct {
	ID                string     `json:"id"`
	QuestionID        string     `json:"question_id"`
	SelectedOptionIDs []string   `json:"selected_option_ids,omitempty"`
	NumericAnswer     *float64   `json:"numeric_answer,omitempty"`
	AnswerText        *string    `json:"answer_text,omitempty"`
	PointsAwarded     *float64   `json:"points_awarded,omitempty"`
	GradedAt          *time.Time `json:"graded_at,omitempty"`
	GraderNote        *string    `json:"grader_note,omitempty"`
	Question          *Question  `json:"question,omitempty"`
}

// Test carries the scheduling and disclosure policy for an assessment.
// Absent timestamps mean "no constraint".
type Test struct {
	ID               string                  `json:"id"`
	Title            string                  `json:"title,omitempty"`
	Status           Status                  `json:"status"`
	StartAt          *time.Time              `json:"start_at,omitempty"`
	EndAt            *time.Time              `json:"end_at,omitempty"`
	AllowLateUntil   *time.Time              `json:"allow_late_until,omitempty"`
	ScoreReleaseMode ReleaseMode             `json:"score_release_mode"`
	ReleaseScoresAt  *time.Time              `json:"release_scores_at,omitempty"`
	Questions        []Question              `json:"questions,omitempty"`
	Assignments      []access.TestAssignment `json:"assignments,omitempty"`
}

// Attempt is one test-taker's sitting of a test.
type Attempt struct {
	ID              string   `json:"id"`
	TestID          string   `json:"test_id"`
	MembershipID    string   `json:"membership_id"`
	GradeEarned     *float64 `json:"grade_earned,omitempty"`
	ProctoringScore *int     `json:"proctoring_score,omitempty"`
	Answers         []Answer `json:"answers,omitempty"`
}
