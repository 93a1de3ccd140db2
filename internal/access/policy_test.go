package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matthewnoahkim/teamy-sub001/internal/roster"
)

func member(id, teamID string) roster.Membership {
	return roster.Membership{ID: id, Role: roster.RoleMember, TeamID: teamID, ClubID: "c1"}
}

func TestAnnouncementAccess_EmptyTargetsIsOpen(t *testing.T) {
	for _, m := range []roster.Membership{
		member("m1", "t1"),
		member("m2", ""),
		{ID: "m3", Role: roster.RoleAdmin, ClubID: "c1"},
	} {
		assert.True(t, HasAnnouncementTargetAccess(nil, m, nil))
		assert.True(t, HasAnnouncementTargetAccess([]VisibilityTarget{}, m, []string{"ev1"}))
	}
}

func TestAnnouncementAccess_RoleAndEventAreANDedWithinEntry(t *testing.T) {
	targets := []VisibilityTarget{{TargetRole: "CAPTAIN", EventID: "ev1"}}
	m := member("m1", "t1")
	m.Roles = []string{"captain"}

	assert.True(t, HasAnnouncementTargetAccess(targets, m, []string{"ev1"}))
	assert.False(t, HasAnnouncementTargetAccess(targets, m, []string{"ev2"}), "event mismatch")
	assert.False(t, HasAnnouncementTargetAccess(targets, member("m2", "t1"), []string{"ev1"}), "role mismatch")
}

func TestAnnouncementAccess_EntriesAreORed(t *testing.T) {
	targets := []VisibilityTarget{
		{TargetRole: "CAPTAIN"},
		{EventID: "ev1"},
	}
	m := member("m1", "t1")

	assert.False(t, HasAnnouncementTargetAccess(targets, m, nil))
	assert.True(t, HasAnnouncementTargetAccess(targets, m, []string{"ev1"}), "second entry matches")
}

func TestAnnouncementAccess_WildcardFields(t *testing.T) {
	m := member("m1", "t1")
	assert.True(t, HasAnnouncementTargetAccess([]VisibilityTarget{{TargetRole: "MEMBER"}}, m, nil))
	assert.True(t, HasAnnouncementTargetAccess([]VisibilityTarget{{EventID: "ev1"}}, m, []string{"ev1"}))
}

func TestTestAssignmentAccess_EmptyListIsClosed(t *testing.T) {
	for _, m := range []roster.Membership{
		member("m1", "t1"),
		{ID: "m2", Role: roster.RoleAdmin, ClubID: "c1"},
	} {
		assert.False(t, HasTestAssignmentAccess(nil, m, []string{"ev1"}))
		assert.False(t, HasTestAssignmentAccess([]TestAssignment{}, m, nil))
	}
}

func TestTestAssignmentAccess_ClubScopeMatchesEveryone(t *testing.T) {
	assignments := []TestAssignment{{Scope: ScopeClub}}
	assert.True(t, HasTestAssignmentAccess(assignments, member("m1", ""), nil))
}

func TestTestAssignmentAccess_TeamScope(t *testing.T) {
	assignments := []TestAssignment{{Scope: ScopeTeam, TeamID: "t1"}}

	assert.True(t, HasTestAssignmentAccess(assignments, member("m1", "t1"), nil))
	assert.False(t, HasTestAssignmentAccess(assignments, member("m1", "t2"), nil))
}

func TestTestAssignmentAccess_PersonalScope(t *testing.T) {
	direct := []TestAssignment{{Scope: ScopePersonal, TargetMembershipID: "m1"}}
	assert.True(t, HasTestAssignmentAccess(direct, member("m1", ""), nil))
	assert.False(t, HasTestAssignmentAccess(direct, member("m2", ""), nil))

	byEvent := []TestAssignment{{Scope: ScopePersonal, EventID: "ev1"}}
	assert.True(t, HasTestAssignmentAccess(byEvent, member("m2", ""), []string{"ev1"}))
	assert.False(t, HasTestAssignmentAccess(byEvent, member("m2", ""), []string{"ev2"}))
}

func TestTestAssignmentAccess_EntriesAreORed(t *testing.T) {
	assignments := []TestAssignment{
		{Scope: ScopeTeam, TeamID: "t9"},
		{Scope: ScopePersonal, TargetMembershipID: "m1"},
	}
	assert.True(t, HasTestAssignmentAccess(assignments, member("m1", "t1"), nil))
}

func TestCalendarItemAccess_Delegation(t *testing.T) {
	m := member("m1", "t1")

	testBacked := CalendarItem{
		TestID:      "test1",
		Assignments: []TestAssignment{{Scope: ScopeTeam, TeamID: "t1"}},
	}
	assert.True(t, HasCalendarItemAccess(testBacked, m, nil))

	// test-backed with no assignments inherits the closed default
	assert.False(t, HasCalendarItemAccess(CalendarItem{TestID: "test2"}, m, nil))

	// plain entry with no targets inherits the open default
	assert.True(t, HasCalendarItemAccess(CalendarItem{}, m, nil))

	plain := CalendarItem{Targets: []VisibilityTarget{{TargetRole: "COACH"}}}
	assert.False(t, HasCalendarItemAccess(plain, m, nil))
}
