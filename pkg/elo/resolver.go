package elo

import "strings"

var nameReplacer = strings.NewReplacer("{", "", "}", "", "(", "", ")", "")

// NormalizeName turns a raw roster token into a lookup key:
// braces and parentheses are stripped, then whitespace trimmed, then lowercased.
func NormalizeName(raw string) string {
	return strings.ToLower(strings.TrimSpace(nameReplacer.Replace(raw)))
}

// Resolver maps free-text team fields onto roster ids.
type Resolver struct {
	byName map[string]int64
}

// NewResolver builds the normalized-name table once per computation.
// If two players normalize to the same key the later one in the roster wins.
func NewResolver(players []Player) *Resolver {
	byName := make(map[string]int64, len(players))
	for _, p := range players {
		key := NormalizeName(p.Name)
		if key == "" {
			continue
		}
		byName[key] = p.ID
	}
	return &Resolver{byName: byName}
}

// ResolveTeam splits a comma separated team field and returns the ids of the
// tokens that match a known player. Unknown tokens are dropped silently.
func (r *Resolver) ResolveTeam(field string) []int64 {
	if field == "" {
		return nil
	}

	tokens := strings.Split(field, ",")
	ids := make([]int64, 0, len(tokens))
	for _, token := range tokens {
		key := NormalizeName(token)
		if key == "" {
			continue
		}
		if id, ok := r.byName[key]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
