package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCommunityIDs(t *testing.T) {
	assert.Nil(t, SplitCommunityIDs(""))
	assert.Nil(t, SplitCommunityIDs("  "))
	assert.Equal(t, []string{"a"}, SplitCommunityIDs("a"))
	assert.Equal(t, []string{"a", "b"}, SplitCommunityIDs("a,b"))
	assert.Equal(t, []string{"a", "b"}, SplitCommunityIDs(" a , b , "))
}

func TestResolveHostsFallsBackForUnknownTokens(t *testing.T) {
	names := map[string]string{"a": "Alamo Python"}

	hosts := ResolveHosts(SplitCommunityIDs("a,b"), names, "")
	assert.Len(t, hosts, 2)
	assert.Equal(t, Host{ID: "a", Name: "Alamo Python", Known: true}, hosts[0])
	// Unknown token renders as the raw token rather than failing.
	assert.Equal(t, Host{ID: "b", Name: "b"}, hosts[1])
}

func TestResolveHostsOverrideName(t *testing.T) {
	hosts := ResolveHosts([]string{"one-off-partner"}, map[string]string{}, "Rackspace")
	assert.Len(t, hosts, 1)
	assert.Equal(t, "Rackspace", hosts[0].Name)
	assert.False(t, hosts[0].Known)

	// Known communities keep their own name even when an override is present.
	names := map[string]string{"a": "Alamo Python"}
	hosts = ResolveHosts([]string{"a", "x"}, names, "Custom Host")
	assert.Equal(t, "Alamo Python", hosts[0].Name)
	assert.Equal(t, "Custom Host", hosts[1].Name)
}

func TestCreateEventInputHostIDs(t *testing.T) {
	in := CreateEventInput{
		CommunityIDs: []string{"a", "b"},
		CommunityID:  "b,c",
	}
	assert.Equal(t, []string{"a", "b", "c"}, in.HostIDs())
}
