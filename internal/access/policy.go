// Package access decides whether a membership may see a piece of content:
// announcements and calendar items carry visibility targets, tests carry
// assignment rules. The two rule kinds have opposite empty-list defaults
// (no targets = open to everyone, no assignments = open to no one) and both
// defaults are load-bearing.
package access

import (
	"github.com/matthewnoahkim/teamy-sub001/internal/roster"
)

// Scope is the breadth of a test assignment rule.
type Scope string

const (
	ScopeClub     Scope = "CLUB"
	ScopeTeam     Scope = "TEAM"
	ScopePersonal Scope = "PERSONAL"
)

// VisibilityTarget restricts an announcement or calendar item. Both fields
// are wildcards when empty and are AND'd within one entry; a list of entries
// is OR'd.
type VisibilityTarget struct {
	TargetRole string `json:"target_role,omitempty"`
	EventID    string `json:"event_id,omitempty"`
}

// TestAssignment grants a membership access to a test. A list of assignments
// is OR'd; which fields matter depends on Scope.
type TestAssignment struct {
	Scope              Scope  `json:"assigned_scope"`
	TeamID             string `json:"team_id,omitempty"`
	TargetMembershipID string `json:"target_membership_id,omitempty"`
	EventID            string `json:"event_id,omitempty"`
}

// CalendarItem is the slice of a calendar entry the policy engine needs.
// Entries backed by a test inherit the test's assignment rules; plain
// entries use visibility targets like announcements.
type CalendarItem struct {
	TestID      string             `json:"test_id,omitempty"`
	Assignments []TestAssignment   `json:"assignments,omitempty"`
	Targets     []VisibilityTarget `json:"targets,omitempty"`
}

// HasAnnouncementTargetAccess reports whether the membership may see content
// restricted by the given targets. An empty target list means the content is
// open to the whole club.
func HasAnnouncementTargetAccess(targets []VisibilityTarget, m roster.Membership, userEventIDs []string) bool {
	if len(targets) == 0 {
		return true
	}
	tags := roster.AudienceRoles(m)
	for _, t := range targets {
		if t.TargetRole != "" {
			if _, ok := tags[t.TargetRole]; !ok {
				continue
			}
		}
		if t.EventID != "" && !containsID(userEventIDs, t.EventID) {
			continue
		}
		return true
	}
	return false
}

// HasTestAssignmentAccess reports whether the membership is assigned the
// test. An empty assignment list means nobody has access: assignments must
// be explicit, unlike visibility targets.
func HasTestAssignmentAccess(assignments []TestAssignment, m roster.Membership, userEventIDs []string) bool {
	for _, a := range assignments {
		switch a.Scope {
		case ScopeClub:
			return true
		case ScopeTeam:
			if a.TeamID == m.TeamID {
				return true
			}
		case ScopePersonal:
			if a.TargetMembershipID == m.ID {
				return true
			}
			if a.EventID != "" && containsID(userEventIDs, a.EventID) {
				return true
			}
		}
	}
	return false
}

// HasCalendarItemAccess routes a calendar entry to the right rule kind.
func HasCalendarItemAccess(item CalendarItem, m roster.Membership, userEventIDs []string) bool {
	if item.TestID != "" {
		return HasTestAssignmentAccess(item.Assignments, m, userEventIDs)
	}
	return HasAnnouncementTargetAccess(item.Targets, m, userEventIDs)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
