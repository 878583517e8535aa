package access

// Role is the dashboard role resolved for a principal at login.
type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleOrganizer  Role = "organizer"
	RoleAnonymous  Role = "anonymous"
)

// ParseRole maps a stored role string to a Role, defaulting to anonymous.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleSuperAdmin, RoleAdmin, RoleOrganizer:
		return Role(s)
	default:
		return RoleAnonymous
	}
}

// Resource names a Firestore collection guarded by the policy.
type Resource string

const (
	ResourceEvents           Resource = "events"
	ResourceCommunities      Resource = "communities"
	ResourceRSVPs            Resource = "rsvps"
	ResourceNewsletter       Resource = "newsletter"
	ResourceSpeakers         Resource = "speakers"
	ResourceAccessRequests   Resource = "accessRequests"
	ResourceAdmins           Resource = "admins"
	ResourceDevSASubscribers Resource = "devsaSubscribers"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Actor is the principal performing a read or write.
type Actor struct {
	Email       string
	Role        Role
	CommunityID string
}

// Target describes the record a write would touch. Zero value is fine for
// creates where nothing exists yet.
type Target struct {
	// CommunityIDs are the communities the record belongs to. Events may list
	// several (co-hosted); communities and admin records list at most one.
	CommunityIDs []string

	// Email identifies the principal record when Resource is admins.
	Email string

	// Protected marks the provisioned super-admin principal.
	Protected bool

	// Static marks seed data that must be edited in source, never via the API.
	Static bool

	// StoreMutable reports whether the communities collection has been migrated
	// into Firestore. Only consulted for community writes.
	StoreMutable bool
}

// Scope restricts a read to a subset of a collection. The zero value is the
// empty scope: the caller sees nothing, with no error.
type Scope struct {
	All         bool
	CommunityID string
}

func (s Scope) Empty() bool {
	return !s.All && s.CommunityID == ""
}

// ReadDecision is the outcome of CanRead. Reads are never refused outright;
// hidden collections resolve to an empty scope ("invisible", not "forbidden").
type ReadDecision struct {
	Allowed bool
	Scope   Scope
}

// HasAdminAccess reports whether a role carries full dashboard access.
// superadmin and admin are equivalent for every permission check; they differ
// only in display and in the protected-principal rule.
func HasAdminAccess(role Role) bool {
	return role == RoleSuperAdmin || role == RoleAdmin
}

// CanRead decides whether (and how much of) a collection the actor may see.
func CanRead(role Role, communityID string, res Resource) ReadDecision {
	switch res {
	case ResourceNewsletter, ResourceSpeakers, ResourceAccessRequests, ResourceAdmins, ResourceDevSASubscribers:
		if HasAdminAccess(role) {
			return ReadDecision{Allowed: true, Scope: Scope{All: true}}
		}
		return ReadDecision{Allowed: true}

	case ResourceEvents, ResourceRSVPs:
		if HasAdminAccess(role) {
			return ReadDecision{Allowed: true, Scope: Scope{All: true}}
		}
		if role == RoleOrganizer && communityID != "" {
			return ReadDecision{Allowed: true, Scope: Scope{CommunityID: communityID}}
		}
		// Organizer with no assigned community sees zero events; the UI shows
		// a "contact an admin" state rather than an error.
		return ReadDecision{Allowed: true}

	case ResourceCommunities:
		return ReadDecision{Allowed: true, Scope: Scope{All: true}}

	default:
		return ReadDecision{Allowed: true}
	}
}

// CanWrite decides whether the actor may perform action on target. It is a
// predicate, not an error source: callers must not attempt the mutation when
// it returns false.
func CanWrite(actor Actor, res Resource, action Action, target Target) bool {
	if target.Static {
		return false
	}

	switch res {
	case ResourceAdmins:
		if !HasAdminAccess(actor.Role) {
			return false
		}
		// The protected principal can never be altered or removed, not even by
		// another superadmin, not even by itself.
		if target.Protected {
			return false
		}
		// Self-removal is blocked; self-edit is not separately restricted.
		if action == ActionDelete && actor.Email != "" && equalEmail(actor.Email, target.Email) {
			return false
		}
		return true

	case ResourceEvents:
		if HasAdminAccess(actor.Role) {
			return true
		}
		if actor.Role == RoleOrganizer && actor.CommunityID != "" {
			return containsCommunity(target.CommunityIDs, actor.CommunityID)
		}
		return false

	case ResourceCommunities:
		if !target.StoreMutable {
			return false
		}
		if HasAdminAccess(actor.Role) {
			return true
		}
		// An organizer may edit (not create or delete) its own community.
		if action == ActionUpdate && actor.Role == RoleOrganizer && actor.CommunityID != "" {
			return containsCommunity(target.CommunityIDs, actor.CommunityID)
		}
		return false

	case ResourceRSVPs, ResourceNewsletter, ResourceSpeakers, ResourceAccessRequests, ResourceDevSASubscribers:
		return HasAdminAccess(actor.Role)

	default:
		return false
	}
}

// NormalizeGrant applies the new-admin form rules: the granted role is
// restricted to admin or organizer (superadmin is pre-seeded only), an
// organizer grant requires a community, and an admin grant clears it.
func NormalizeGrant(role Role, communityID string) (Role, string, bool) {
	switch role {
	case RoleOrganizer:
		if communityID == "" {
			return role, "", false
		}
		return role, communityID, true
	case RoleAdmin:
		return role, "", true
	default:
		return role, "", false
	}
}
