package exam

import "time"

// ShouldRelease reports whether graded results may be shown to a non-admin
// viewer. Non-published tests are always releasable (drafts are only visible
// to staff anyway, closed tests are over); otherwise an absent
// ReleaseScoresAt means immediate release.
func ShouldRelease(t Test, now time.Time) bool {
	if t.Status != StatusPublished {
		return true
	}
	if t.ReleaseScoresAt == nil {
		return true
	}
	return !now.Before(*t.ReleaseScoresAt)
}

// FilterAttempt projects an attempt down to what the viewer may see. Admins
// get the attempt untouched. Before release, grading metadata is withheld
// but the viewer's own submitted content stays visible. After release the
// test's ReleaseMode decides how much graded detail is exposed. The input is
// never mutated.
func FilterAttempt(a Attempt, t Test, isAdmin bool, now time.Time) Attempt {
	if isAdmin {
		return a
	}

	if !ShouldRelease(t, now) {
		out := a
		out.GradeEarned = nil
		out.ProctoringScore = nil
		out.Answers = make([]Answer, len(a.Answers))
		for i, ans := range a.Answers {
			ans.PointsAwarded = nil
			ans.GradedAt = nil
			ans.GraderNote = nil
			ans.Question = sanitizeQuestion(ans.Question)
			out.Answers[i] = ans
		}
		return out
	}

	switch t.ScoreReleaseMode {
	case ReleaseScoreOnly:
		out := a
		out.ProctoringScore = nil
		out.Answers = nil
		return out
	case ReleaseScoreWithWrong:
		out := a
		out.ProctoringScore = nil
		out.Answers = make([]Answer, len(a.Answers))
		for i, ans := range a.Answers {
			out.Answers[i] = Answer{
				ID:            ans.ID,
				QuestionID:    ans.QuestionID,
				PointsAwarded: ans.PointsAwarded,
				Question:      trimQuestion(ans.Question),
			}
		}
		return out
	case ReleaseFullTest:
		return a
	default: // ReleaseNone
		out := a
		out.GradeEarned = nil
		out.ProctoringScore = nil
		out.Answers = nil
		return out
	}
}

// sanitizeQuestion strips correct-option flags and the explanation from a
// question copy so an unreleased attempt never leaks the answer key.
func sanitizeQuestion(q *Question) *Question {
	if q == nil {
		return nil
	}
	cp := *q
	cp.Explanation = ""
	cp.Options = make([]Option, len(q.Options))
	for i, o := range q.Options {
		o.IsCorrect = false
		cp.Options[i] = o
	}
	return &cp
}

// trimQuestion keeps just enough of the question for a viewer to see which
// items cost points (PointsAwarded < Points), with options dropped entirely
// so correct answers cannot be inferred.
func trimQuestion(q *Question) *Question {
	if q == nil {
		return nil
	}
	return &Question{
		ID:       q.ID,
		Type:     q.Type,
		PromptMD: q.PromptMD,
		Points:   q.Points,
		Order:    q.Order,
	}
}
