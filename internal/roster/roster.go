package roster

import "strings"

// Role is the base role a membership carries inside one club/team unit.
type Role string

const (
	RoleMember Role = "MEMBER"
	RoleAdmin  Role = "ADMIN"
)

// Default audience tags derived from the base role.
const (
	TagMember = "MEMBER"
	TagCoach  = "COACH"
)

// Membership is one user's participation record in one club. A member may
// additionally belong to a team within the club and may carry custom role
// tags ("CAPTAIN", "builder", ...) on top of the base role.
type Membership struct {
	ID     string   `json:"id"`
	Role   Role     `json:"role"`
	Roles  []string `json:"roles,omitempty"`
	TeamID string   `json:"team_id,omitempty"`
	ClubID string   `json:"club_id"`
}

// Assignment enrolls a membership in a competition event. The event ids a
// member is enrolled in feed event-scoped visibility checks.
type Assignment struct {
	MembershipID string `json:"membership_id"`
	EventID      string `json:"event_id"`
}

// AudienceRoles derives the tag set visibility rules are evaluated against:
// the default tag for the base role (COACH for admins, MEMBER otherwise)
// plus the membership's custom tags, upper-cased, trimmed and deduped.
func AudienceRoles(m Membership) map[string]struct{} {
	tags := make(map[string]struct{}, len(m.Roles)+1)
	if m.Role == RoleAdmin {
		tags[TagCoach] = struct{}{}
	} else {
		tags[TagMember] = struct{}{}
	}
	for _, r := range m.Roles {
		r = strings.ToUpper(strings.TrimSpace(r))
		if r == "" {
			continue
		}
		tags[r] = struct{}{}
	}
	return tags
}

// EventIDs collects the event ids a membership is enrolled in.
func EventIDs(assignments []Assignment, membershipID string) []string {
	var out []string
	for _, a := range assignments {
		if a.MembershipID == membershipID && a.EventID != "" {
			out = append(out, a.EventID)
		}
	}
	return out
}
