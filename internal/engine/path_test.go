package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shridarpatil/dialogengine/internal/engine"
)

var sym = engine.Symbols{Back: "0", Home: "00"}

func TestNormalizePathPlain(t *testing.T) {
	got := engine.NormalizePath([]string{"1", "2", "3"}, sym)
	assert.Equal(t, []string{"1", "2", "3"}, got)
}

func TestNormalizePathBackFoldsPreviousSegment(t *testing.T) {
	got := engine.NormalizePath([]string{"1", "2", "0"}, sym)
	assert.Equal(t, []string{"1"}, got)
}

func TestNormalizePathBackInMiddle(t *testing.T) {
	got := engine.NormalizePath([]string{"1", "2", "0", "3"}, sym)
	assert.Equal(t, []string{"1", "3"}, got)
}

func TestNormalizePathHomeDropsEverythingBefore(t *testing.T) {
	got := engine.NormalizePath([]string{"1", "2", "00", "3"}, sym)
	assert.Equal(t, []string{"3"}, got)
}

func TestNormalizePathHomeAlone(t *testing.T) {
	got := engine.NormalizePath([]string{"1", "2", "00"}, sym)
	assert.Empty(t, got)
}

func TestNormalizePathLeadingBackIsEmpty(t *testing.T) {
	assert.Empty(t, engine.NormalizePath([]string{"0", "1", "2"}, sym))
}

func TestNormalizePathLeadingHomeIsEmpty(t *testing.T) {
	assert.Empty(t, engine.NormalizePath([]string{"00", "1", "2"}, sym))
}

func TestNormalizePathEmptyInput(t *testing.T) {
	assert.Empty(t, engine.NormalizePath(nil, sym))
}

// TestNormalizePathIdempotent checks that normalizing an
// already-normalized path is a no-op.
func TestNormalizePathIdempotent(t *testing.T) {
	cases := [][]string{
		{"1", "2", "3"},
		{"1", "2", "0"},
		{"1", "2", "00", "3"},
		{},
		{"1", "0", "2", "0", "0"},
	}
	for _, c := range cases {
		once := engine.NormalizePath(c, sym)
		twice := engine.NormalizePath(once, sym)
		assert.Equal(t, once, twice, "not idempotent for %v", c)
	}
}

// TestNormalizePathBackRemovesLastSegment checks that appending a back
// token to a normalized path is equivalent to dropping its last element.
func TestNormalizePathBackRemovesLastSegment(t *testing.T) {
	base := []string{"1", "2", "3"}
	withBack := append(append([]string{}, base...), sym.Back)
	got := engine.NormalizePath(withBack, sym)
	assert.Equal(t, base[:len(base)-1], got)
}

// TestNormalizePathHomeAlwaysEmpties checks that appending a home token
// always normalizes to the empty path.
func TestNormalizePathHomeAlwaysEmpties(t *testing.T) {
	base := []string{"1", "2", "3"}
	withHome := append(append([]string{}, base...), sym.Home)
	assert.Empty(t, engine.NormalizePath(withHome, sym))
}

func TestNormalizePathDoesNotMutateInput(t *testing.T) {
	input := []string{"1", "2", "0"}
	original := append([]string{}, input...)
	_ = engine.NormalizePath(input, sym)
	assert.Equal(t, original, input)
}

func TestNormalizePathDefaultsApplyOnZeroSymbols(t *testing.T) {
	got := engine.NormalizePath([]string{"1", "0"}, engine.Symbols{})
	assert.Equal(t, []string{}, got)
}
