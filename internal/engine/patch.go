package engine

import (
	"encoding/json"

	"github.com/zerodha/logf"
)

// Patch is one turn's pending session-state update: a map of
// field -> value-or-nil, before it has been stringified for the store.
// A nil entry deletes the field; a string/int/float/bool entry is written
// as-is; any other value (map, slice, struct) is JSON-encoded first, and
// one that cannot be encoded is logged and skipped.
type Patch map[string]interface{}

// Set adds or overwrites a field.
func (p Patch) Set(field string, value interface{}) { p[field] = value }

// Delete marks a field for removal.
func (p Patch) Delete(field string) { p[field] = nil }

// Merge copies every entry of other into p, overwriting on conflict.
func (p Patch) Merge(other map[string]interface{}) {
	for k, v := range other {
		p[k] = v
	}
}

// Discard removes a pending entry for field without touching the store —
// used to undo a tentative Set/Delete staged earlier in the same turn.
func (p Patch) Discard(field string) { delete(p, field) }

// stringify converts a Patch into the map[string]*string a SessionStore
// expects.
func stringify(p Patch, log logf.Logger) map[string]*string {
	out := make(map[string]*string, len(p))
	for field, v := range p {
		if v == nil {
			out[field] = nil
			continue
		}
		switch val := v.(type) {
		case string:
			out[field] = &val
		case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
			s := toScalarString(val)
			out[field] = &s
		case map[string]interface{}, []interface{}, []string:
			b, err := json.Marshal(val)
			if err != nil {
				log.Warn("dropping unencodable composite state patch field", "field", field, "error", err)
				continue
			}
			s := string(b)
			out[field] = &s
		default:
			// Fall back to a best-effort JSON encode for any other
			// composite/struct value before giving up.
			b, err := json.Marshal(val)
			if err != nil {
				log.Warn("dropping unsupported state patch field type", "field", field, "value", v)
				continue
			}
			s := string(b)
			out[field] = &s
		}
	}
	return out
}

func toScalarString(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	s := string(b)
	// JSON-encodes strings with quotes already handled above; numbers and
	// bools marshal to their bare literal form, which is what we want for
	// a flat session-hash scalar.
	return s
}
