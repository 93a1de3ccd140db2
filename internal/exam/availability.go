package exam

import "time"

// Availability is the outcome of a submission-window check. Reason is set
// only when the test is not accepting submissions.
type Availability struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// CheckAvailability reports whether the test currently accepts submissions.
// A late-submission grace deadline, when present, supersedes EndAt.
func CheckAvailability(t Test, now time.Time) Availability {
	if t.Status != StatusPublished {
		return Availability{Reason: "not published"}
	}
	if t.StartAt != nil && now.Before(*t.StartAt) {
		return Availability{Reason: "not started yet"}
	}
	deadline := t.EndAt
	if t.AllowLateUntil != nil {
		deadline = t.AllowLateUntil
	}
	if deadline != nil && now.After(*deadline) {
		return Availability{Reason: "deadline passed"}
	}
	return Availability{Available: true}
}
