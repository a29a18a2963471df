package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shridarpatil/dialogengine/internal/dialogerr"
	"github.com/shridarpatil/dialogengine/internal/models"
	"github.com/shridarpatil/dialogengine/test/testutil"
)

func TestWalkTreeEmptyPathReturnsRoot(t *testing.T) {
	root := testutil.ScenarioTree()
	res, err := walkTree(root, nil, walkCtx{})
	require.NoError(t, err)
	assert.Same(t, root, res.node)
	assert.Equal(t, 0, res.consumed)
}

func TestWalkTreeDescendsToChild(t *testing.T) {
	root := testutil.ScenarioTree()
	res, err := walkTree(root, []string{"1"}, walkCtx{})
	require.NoError(t, err)
	assert.Equal(t, "Sales", res.node.Name)
	assert.Equal(t, 1, res.consumed)
}

func TestWalkTreeInvalidChoice(t *testing.T) {
	root := testutil.ScenarioTree()
	_, err := walkTree(root, []string{"9"}, walkCtx{})
	assert.True(t, dialogerr.Is(err, dialogerr.KindInvalidChoice))
}

func TestWalkTreeConditionalFlowRouting(t *testing.T) {
	leafA := &models.NavigationMenu{Name: "A", NextForm: &models.FormFlow{N: 1, Questions: map[int]models.FormQuestion{
		1: {Name: "Q", Terminal: true, Menu: models.Menu{Static: labelOf("a")}},
	}}}
	leafB := &models.NavigationMenu{Name: "B", NextForm: &models.FormFlow{N: 1, Questions: map[int]models.FormQuestion{
		1: {Name: "Q", Terminal: true, Menu: models.Menu{Static: labelOf("b")}},
	}}}
	cond := &models.ConditionalFlow{
		Name: "split",
		Condition: func(_ context.Context, _, _, _, _, _ string, _ models.FieldStore) (string, error) {
			return "B", nil
		},
		ConditionResultMap: map[string]models.Node{"A": leafA, "B": leafB},
	}
	root := &models.NavigationMenu{Name: "R", Children: []models.Child{{Title: models.Text("go"), Target: cond}}}

	res, err := walkTree(root, []string{"1"}, walkCtx{})
	require.NoError(t, err)
	assert.Equal(t, "B", res.node.Name)
}

func TestWalkTreeConditionResultNotMapped(t *testing.T) {
	cond := &models.ConditionalFlow{
		Name: "split",
		Condition: func(_ context.Context, _, _, _, _, _ string, _ models.FieldStore) (string, error) {
			return "missing", nil
		},
		ConditionResultMap: map[string]models.Node{"A": &models.NavigationMenu{Name: "A", NextForm: &models.FormFlow{N: 1}}},
	}
	root := &models.NavigationMenu{Name: "R", Children: []models.Child{{Title: models.Text("go"), Target: cond}}}

	_, err := walkTree(root, []string{"1"}, walkCtx{})
	assert.True(t, dialogerr.Is(err, dialogerr.KindConditionResult))
}

func TestWalkTreeStopsAtLeafLeavingFormTokensUnconsumed(t *testing.T) {
	root := testutil.ScenarioTree()
	res, err := walkTree(root, []string{"1", "Alice", "1"}, walkCtx{})
	require.NoError(t, err)
	assert.Equal(t, "Sales", res.node.Name)
	assert.Equal(t, 1, res.consumed)
}

func labelOf(s string) *models.Label {
	l := models.Text(s)
	return &l
}
