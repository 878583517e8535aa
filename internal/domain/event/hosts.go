package event

import "strings"

// Host is one resolved "hosted by" entry for an event.
type Host struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Known bool   `json:"known"`
}

// SplitCommunityIDs parses the legacy comma-joined community field used by
// older event documents, dropping empty tokens.
func SplitCommunityIDs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var ids []string
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			ids = append(ids, tok)
		}
	}
	return ids
}

// ResolveHosts maps an event's community tokens to display hosts. Tokens with
// no matching community are one-off "custom" hosts: they render the paired
// override name when present, otherwise the raw token, and never fail.
func ResolveHosts(ids []string, namesByID map[string]string, overrideName string) []Host {
	hosts := make([]Host, 0, len(ids))
	for _, id := range ids {
		if name, ok := namesByID[id]; ok {
			hosts = append(hosts, Host{ID: id, Name: name, Known: true})
			continue
		}
		name := id
		if overrideName != "" {
			name = overrideName
		}
		hosts = append(hosts, Host{ID: id, Name: name})
	}
	return hosts
}

func dedupeTokens(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := map[string]bool{}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
