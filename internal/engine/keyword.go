package engine

import "strings"

// KeywordRouter is a static, case-insensitive keyword -> starting path map
// consulted only on a brand-new session (empty PROCESSED_PATH, non-empty
// first input), letting a session jump straight into a subtree instead of
// walking the menu tree from the root one digit at a time. The map and the
// paths it names are wired up in Go at boot, same as the rest of the tree.
type KeywordRouter struct {
	routes map[string][]string
}

// NewKeywordRouter builds a router from keyword -> effective starting
// path. Keywords are matched case-insensitively.
func NewKeywordRouter(routes map[string][]string) *KeywordRouter {
	r := &KeywordRouter{routes: make(map[string][]string, len(routes))}
	for k, v := range routes {
		r.routes[strings.ToLower(k)] = v
	}
	return r
}

// Route returns the starting path for input, if it matches a keyword.
func (r *KeywordRouter) Route(input string) ([]string, bool) {
	if r == nil {
		return nil, false
	}
	path, ok := r.routes[strings.ToLower(strings.TrimSpace(input))]
	if !ok {
		return nil, false
	}
	return append([]string(nil), path...), true
}
