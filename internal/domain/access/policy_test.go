package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasAdminAccess(t *testing.T) {
	assert.True(t, HasAdminAccess(RoleSuperAdmin))
	assert.True(t, HasAdminAccess(RoleAdmin))
	assert.False(t, HasAdminAccess(RoleOrganizer))
	assert.False(t, HasAdminAccess(RoleAnonymous))
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleSuperAdmin, ParseRole("superadmin"))
	assert.Equal(t, RoleOrganizer, ParseRole("organizer"))
	assert.Equal(t, RoleAnonymous, ParseRole(""))
	assert.Equal(t, RoleAnonymous, ParseRole("owner"))
}

func TestCanReadAdminOnlyCollections(t *testing.T) {
	adminOnly := []Resource{
		ResourceNewsletter,
		ResourceSpeakers,
		ResourceAccessRequests,
		ResourceAdmins,
		ResourceDevSASubscribers,
	}

	for _, res := range adminOnly {
		for _, role := range []Role{RoleOrganizer, RoleAnonymous} {
			d := CanRead(role, "devsa", res)
			assert.True(t, d.Allowed, "%s/%s should resolve, not refuse", role, res)
			assert.True(t, d.Scope.Empty(), "%s/%s should see nothing", role, res)
		}
		for _, role := range []Role{RoleAdmin, RoleSuperAdmin} {
			d := CanRead(role, "", res)
			assert.True(t, d.Allowed)
			assert.True(t, d.Scope.All)
		}
	}
}

func TestCanReadEvents(t *testing.T) {
	d := CanRead(RoleAdmin, "", ResourceEvents)
	assert.True(t, d.Scope.All)

	d = CanRead(RoleOrganizer, "alamo-python", ResourceEvents)
	assert.False(t, d.Scope.All)
	assert.Equal(t, "alamo-python", d.Scope.CommunityID)

	// Organizer without an assigned community sees zero events, no error.
	d = CanRead(RoleOrganizer, "", ResourceEvents)
	assert.True(t, d.Allowed)
	assert.True(t, d.Scope.Empty())

	d = CanRead(RoleAnonymous, "", ResourceEvents)
	assert.True(t, d.Scope.Empty())
}

func TestCanReadCommunitiesOpenToAll(t *testing.T) {
	for _, role := range []Role{RoleSuperAdmin, RoleAdmin, RoleOrganizer, RoleAnonymous} {
		d := CanRead(role, "", ResourceCommunities)
		assert.True(t, d.Allowed)
		assert.True(t, d.Scope.All)
	}
}

func TestCanWriteProtectedPrincipal(t *testing.T) {
	protected := Target{Email: "root@devsa.org", Protected: true}

	actors := []Actor{
		{Email: "root@devsa.org", Role: RoleSuperAdmin},
		{Email: "other@devsa.org", Role: RoleSuperAdmin},
		{Email: "other@devsa.org", Role: RoleAdmin},
		{Email: "org@devsa.org", Role: RoleOrganizer},
	}
	for _, a := range actors {
		for _, action := range []Action{ActionUpdate, ActionDelete} {
			assert.False(t, CanWrite(a, ResourceAdmins, action, protected),
				"protected principal must refuse %s by %s", action, a.Email)
		}
	}
}

func TestCanWriteAdminSelfRemoval(t *testing.T) {
	self := Actor{Email: "a@devsa.org", Role: RoleAdmin}

	assert.False(t, CanWrite(self, ResourceAdmins, ActionDelete, Target{Email: "a@devsa.org"}))
	// Case-insensitive self match.
	assert.False(t, CanWrite(self, ResourceAdmins, ActionDelete, Target{Email: "A@DEVSA.org"}))
	// Removing someone else is fine, and self-edit is not the same as self-removal.
	assert.True(t, CanWrite(self, ResourceAdmins, ActionDelete, Target{Email: "b@devsa.org"}))
	assert.True(t, CanWrite(self, ResourceAdmins, ActionUpdate, Target{Email: "a@devsa.org"}))
}

func TestCanWriteEvents(t *testing.T) {
	ev := Target{CommunityIDs: []string{"alamo-python", "geekdom"}}

	assert.True(t, CanWrite(Actor{Role: RoleAdmin}, ResourceEvents, ActionUpdate, ev))
	assert.True(t, CanWrite(Actor{Role: RoleSuperAdmin}, ResourceEvents, ActionDelete, ev))

	organizer := Actor{Role: RoleOrganizer, CommunityID: "geekdom"}
	assert.True(t, CanWrite(organizer, ResourceEvents, ActionUpdate, ev))

	outsider := Actor{Role: RoleOrganizer, CommunityID: "satx-js"}
	assert.False(t, CanWrite(outsider, ResourceEvents, ActionUpdate, ev))

	unassigned := Actor{Role: RoleOrganizer}
	assert.False(t, CanWrite(unassigned, ResourceEvents, ActionCreate, ev))

	assert.False(t, CanWrite(Actor{Role: RoleAnonymous}, ResourceEvents, ActionCreate, ev))
}

func TestCanWriteStaticAlwaysRefused(t *testing.T) {
	st := Target{CommunityIDs: []string{"devsa"}, Static: true, StoreMutable: true}
	assert.False(t, CanWrite(Actor{Role: RoleSuperAdmin}, ResourceEvents, ActionDelete, st))
	assert.False(t, CanWrite(Actor{Role: RoleSuperAdmin}, ResourceCommunities, ActionUpdate, st))
}

func TestCanWriteCommunities(t *testing.T) {
	target := Target{CommunityIDs: []string{"alamo-python"}, StoreMutable: true}

	assert.True(t, CanWrite(Actor{Role: RoleAdmin}, ResourceCommunities, ActionCreate, target))
	assert.True(t, CanWrite(Actor{Role: RoleAdmin}, ResourceCommunities, ActionDelete, target))

	owner := Actor{Role: RoleOrganizer, CommunityID: "alamo-python"}
	assert.True(t, CanWrite(owner, ResourceCommunities, ActionUpdate, target))
	assert.False(t, CanWrite(owner, ResourceCommunities, ActionCreate, target))
	assert.False(t, CanWrite(owner, ResourceCommunities, ActionDelete, target))

	other := Actor{Role: RoleOrganizer, CommunityID: "satx-js"}
	assert.False(t, CanWrite(other, ResourceCommunities, ActionUpdate, target))

	// Legacy static store: nobody writes until the migration runs.
	readonly := Target{CommunityIDs: []string{"alamo-python"}}
	assert.False(t, CanWrite(Actor{Role: RoleSuperAdmin}, ResourceCommunities, ActionUpdate, readonly))
}

func TestNormalizeGrant(t *testing.T) {
	role, community, ok := NormalizeGrant(RoleOrganizer, "alamo-python")
	assert.True(t, ok)
	assert.Equal(t, RoleOrganizer, role)
	assert.Equal(t, "alamo-python", community)

	_, _, ok = NormalizeGrant(RoleOrganizer, "")
	assert.False(t, ok, "organizer grant requires a community")

	role, community, ok = NormalizeGrant(RoleAdmin, "alamo-python")
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, role)
	assert.Equal(t, "", community, "admin grant clears communityId")

	_, _, ok = NormalizeGrant(RoleSuperAdmin, "")
	assert.False(t, ok, "superadmin can never be granted")

	_, _, ok = NormalizeGrant(RoleAnonymous, "")
	assert.False(t, ok)
}
