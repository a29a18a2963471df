// Package engine implements the per-turn evaluation pipeline: path
// normalization, tree walking, the form-flow state machine, response
// assembly, and session-state persistence.
package engine

// Symbols configures the two navigation tokens a deployment recognizes.
// The zero value resolves to "0"/"00" via WithDefaults.
type Symbols struct {
	Back string
	Home string
}

// WithDefaults fills in "0" (back) and "00" (home) for any empty field.
func (s Symbols) WithDefaults() Symbols {
	if s.Back == "" {
		s.Back = "0"
	}
	if s.Home == "" {
		s.Home = "00"
	}
	return s
}

// NormalizePath folds back/home tokens out of an ordered token list,
// producing the effective path. It is total, stateless and idempotent: it
// never fails, and normalizing an already-normalized path is a no-op.
func NormalizePath(path []string, sym Symbols) []string {
	sym = sym.WithDefaults()
	if len(path) == 0 {
		return nil
	}
	if path[0] == sym.Back || path[0] == sym.Home {
		return nil
	}

	// Work on a copy so callers' slices are never mutated in place.
	out := append([]string(nil), path...)

	i := 1
	for i < len(out) {
		switch out[i] {
		case sym.Back:
			// Remove out[i] and out[i-1]; restart the scan at i-1.
			out = append(out[:i-1], out[i+1:]...)
			if i-1 < 1 {
				i = 1
			} else {
				i = i - 1
			}
		case sym.Home:
			// Drop out[0..i] inclusive; restart at index 1.
			out = append([]string(nil), out[i+1:]...)
			i = 1
		default:
			i++
		}
	}
	// A fold can leave a back/home token in the leading position (a back
	// pressed once more than there are segments to remove); like a path
	// that starts with one, that normalizes to empty.
	if len(out) > 0 && (out[0] == sym.Back || out[0] == sym.Home) {
		return nil
	}
	return out
}
