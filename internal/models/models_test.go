package models_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shridarpatil/dialogengine/internal/dialogerr"
	"github.com/shridarpatil/dialogengine/internal/models"
)

func acceptAll() models.StepValidator {
	return models.StepValidatorFunc(func(_ context.Context, _ int, _, _, _ string) (bool, map[string]interface{}, error) {
		return true, nil, nil
	})
}

func validForm() *models.FormFlow {
	title := models.Text("Name?")
	return &models.FormFlow{
		N:             1,
		StepValidator: acceptAll(),
		Questions: map[int]models.FormQuestion{
			1: {Name: "Name", Terminal: true, Menu: models.Menu{Static: &title}},
		},
	}
}

func TestValidateAcceptsWellFormedTree(t *testing.T) {
	root := &models.NavigationMenu{
		Name:  "R",
		Title: models.Text("R"),
		Children: []models.Child{
			{Title: models.Text("Sales"), Target: &models.NavigationMenu{Name: "Sales", Title: models.Text("Sales"), NextForm: validForm()}},
		},
	}
	require.NoError(t, root.Validate())
}

func TestValidateRejectsChildrenAndForm(t *testing.T) {
	n := &models.NavigationMenu{
		Name:     "Bad",
		Title:    models.Text("Bad"),
		NextForm: validForm(),
		Children: []models.Child{
			{Title: models.Text("x"), Target: &models.NavigationMenu{Name: "x", NextForm: validForm()}},
		},
	}
	err := n.Validate()
	assert.True(t, dialogerr.Is(err, dialogerr.KindImproperlyConfigured))
}

func TestValidateRejectsBareLeaf(t *testing.T) {
	n := &models.NavigationMenu{Name: "Empty", Title: models.Text("Empty")}
	err := n.Validate()
	assert.True(t, dialogerr.Is(err, dialogerr.KindImproperlyConfigured))
}

func TestValidateRejectsFormWithoutValidator(t *testing.T) {
	title := models.Text("Name?")
	n := &models.NavigationMenu{
		Name:  "Leaf",
		Title: models.Text("Leaf"),
		NextForm: &models.FormFlow{
			N: 1,
			Questions: map[int]models.FormQuestion{
				1: {Name: "Name", Menu: models.Menu{Static: &title}},
			},
		},
	}
	err := n.Validate()
	assert.True(t, dialogerr.Is(err, dialogerr.KindImproperlyConfigured))
}

func TestValidateRejectsNonContiguousSteps(t *testing.T) {
	title := models.Text("Q?")
	f := &models.FormFlow{
		N:             2,
		StepValidator: acceptAll(),
		Questions: map[int]models.FormQuestion{
			1: {Name: "A", Menu: models.Menu{Static: &title}},
			3: {Name: "C", Menu: models.Menu{Static: &title}},
		},
	}
	err := f.Validate()
	assert.True(t, dialogerr.Is(err, dialogerr.KindImproperlyConfigured))
}

func TestValidateIndexBounds(t *testing.T) {
	items := []models.ListItem{{Display: "Sun"}, {Display: "Moon"}}

	idx, ok := models.ValidateIndex("1", items)
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = models.ValidateIndex("2", items)
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = models.ValidateIndex("3", items)
	assert.False(t, ok)
	_, ok = models.ValidateIndex("0", items)
	assert.False(t, ok)
	_, ok = models.ValidateIndex("x", items)
	assert.False(t, ok)
	_, ok = models.ValidateIndex("", items)
	assert.False(t, ok)
}

func TestLabelResolvePlainIgnoresLang(t *testing.T) {
	l := models.Text("hello")
	got, err := l.Resolve("sw")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestLabelResolveTranslated(t *testing.T) {
	l := models.Translated(map[string]string{"en": "hello", "sw": "jambo"})

	got, err := l.Resolve("sw")
	require.NoError(t, err)
	assert.Equal(t, "jambo", got)

	_, err = l.Resolve("fr")
	assert.True(t, dialogerr.Is(err, dialogerr.KindTranslation))

	_, err = l.Resolve("")
	assert.True(t, dialogerr.Is(err, dialogerr.KindTranslation))
}

func TestListInputResolveStaticAndDynamic(t *testing.T) {
	static := &models.ListInput{
		Title: models.Text("Choose:"),
		Items: []models.ListItem{{Display: "Sun", Value: "Sun"}},
	}
	items, err := static.Resolve(context.Background(), models.Scope{})
	require.NoError(t, err)
	assert.Len(t, items, 1)

	dynamic := &models.ListInput{
		Title: models.Text("Choose:"),
		ItemsFn: func(_ context.Context, scope models.Scope) ([]models.ListItem, error) {
			return []models.ListItem{{Display: scope.MSISDN}}, nil
		},
	}
	items, err = dynamic.Resolve(context.Background(), models.Scope{MSISDN: "254700"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "254700", items[0].Display)
}
