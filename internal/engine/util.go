package engine

import (
	"encoding/json"
	"strconv"
	"strings"
)

func parseStep(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

func decodePath(raw string) []string {
	if raw == "" {
		return nil
	}
	var path []string
	if err := json.Unmarshal([]byte(raw), &path); err != nil {
		return nil
	}
	return path
}

func encodePath(path []string) string {
	if path == nil {
		path = []string{}
	}
	b, err := json.Marshal(path)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// lastToken returns the final "*"-delimited token of ussdString, or empty
// for a brand-new session.
func lastToken(ussdString string) string {
	if ussdString == "" {
		return ""
	}
	parts := strings.Split(ussdString, "*")
	return parts[len(parts)-1]
}

// stripPrefix removes the 4-character "CON "/"END " framing prefix.
func stripPrefix(s string) string {
	if len(s) >= 4 && (strings.HasPrefix(s, "CON ") || strings.HasPrefix(s, "END ")) {
		return s[4:]
	}
	return s
}
