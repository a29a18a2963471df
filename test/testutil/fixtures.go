package testutil

import (
	"context"

	"github.com/shridarpatil/dialogengine/internal/models"
)

// AcceptAllValidator is a StepValidator that always reports the input as
// valid and attaches no extra state — the minimal validator a fixture
// tree needs when a test only cares about navigation, not validation.
var AcceptAllValidator = models.StepValidatorFunc(func(_ context.Context, _ int, _, _, _ string) (bool, map[string]interface{}, error) {
	return true, nil, nil
})

// ScenarioTree builds the small fixture tree most engine tests walk:
// root R with children [Sales, Support]; Sales -> a 3-step FormFlow
// ("Name?", a Sun/Moon ListInput, then a terminal "Thanks {Name}");
// Support -> a single-step terminal form.
func ScenarioTree() *models.NavigationMenu {
	salesForm := &models.FormFlow{
		N:             3,
		StepValidator: AcceptAllValidator,
		Questions: map[int]models.FormQuestion{
			1: {Name: "Name", Menu: models.Menu{Static: labelPtr(models.Text("Name?"))}},
			2: {Name: "Choice", Menu: models.Menu{List: &models.ListInput{
				Title: models.Text("Choose:"),
				Items: []models.ListItem{
					{Display: "Sun", Value: "Sun"},
					{Display: "Moon", Value: "Moon"},
				},
			}}},
			3: {Name: "Done", Terminal: true, Menu: models.Menu{Static: labelPtr(models.Text("Thanks {Name}"))}},
		},
	}

	supportForm := &models.FormFlow{
		N:             1,
		StepValidator: AcceptAllValidator,
		Questions: map[int]models.FormQuestion{
			1: {Name: "Query", Terminal: true, Menu: models.Menu{Static: labelPtr(models.Text("Thanks for contacting support"))}},
		},
	}

	sales := &models.NavigationMenu{Name: "Sales", Title: models.Text("Sales"), NextForm: salesForm}
	support := &models.NavigationMenu{Name: "Support", Title: models.Text("Support"), NextForm: supportForm}

	return &models.NavigationMenu{
		Name:  "R",
		Title: models.Text("R"),
		Children: []models.Child{
			{Title: models.Text("Sales"), Target: sales},
			{Title: models.Text("Support"), Target: support},
		},
	}
}

func labelPtr(l models.Label) *models.Label { return &l }
