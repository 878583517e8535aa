package access

import "strings"

func equalEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// containsCommunity matches a community token against the record's list.
// Tokens are compared case-insensitively; events carry co-host lists.
func containsCommunity(ids []string, communityID string) bool {
	communityID = strings.TrimSpace(communityID)
	if communityID == "" {
		return false
	}
	for _, id := range ids {
		if strings.EqualFold(strings.TrimSpace(id), communityID) {
			return true
		}
	}
	return false
}
