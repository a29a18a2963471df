package main

import (
	"context"

	"github.com/shridarpatil/dialogengine/internal/config"
	"github.com/shridarpatil/dialogengine/internal/models"
)

// buildDemoTree wires up a small demonstration tree: root R with children
// [Sales, Support]; Sales leads into a FormFlow collecting a name and a
// Sun/Moon preference. Configured invalid-input translation strings are
// applied flow-wide.
func buildDemoTree(cfg *config.Config) *models.NavigationMenu {
	acceptAll := models.StepValidatorFunc(func(_ context.Context, _ int, _, _, _ string) (bool, map[string]interface{}, error) {
		return true, nil, nil
	})

	var invalidTemplate models.Label
	if cfg.Translation.Enabled && len(cfg.Translation.InvalidInputStrings) > 0 {
		invalidTemplate = models.Translated(cfg.Translation.InvalidInputStrings)
	}

	salesForm := &models.FormFlow{
		N:                    3,
		StepValidator:        acceptAll,
		InvalidInputTemplate: invalidTemplate,
		Questions: map[int]models.FormQuestion{
			1: {Name: "Name", Menu: models.Menu{Static: text("Name?")}},
			2: {Name: "Choice", Menu: models.Menu{List: &models.ListInput{
				Title: models.Text("Choose:"),
				Items: []models.ListItem{
					{Display: "Sun", Value: "Sun"},
					{Display: "Moon", Value: "Moon"},
				},
			}}},
			3: {Name: "Done", Terminal: true, Menu: models.Menu{Static: text("Thanks {Name}")}},
		},
	}

	supportForm := &models.FormFlow{
		N:                    1,
		StepValidator:        acceptAll,
		InvalidInputTemplate: invalidTemplate,
		Questions: map[int]models.FormQuestion{
			1: {Name: "Query", Terminal: true, Menu: models.Menu{Static: text("Thanks for contacting support")}},
		},
	}

	return &models.NavigationMenu{
		Name:  "R",
		Title: models.Text("R"),
		Children: []models.Child{
			{Title: models.Text("Sales"), Target: &models.NavigationMenu{Name: "Sales", Title: models.Text("Sales"), NextForm: salesForm}},
			{Title: models.Text("Support"), Target: &models.NavigationMenu{Name: "Support", Title: models.Text("Support"), NextForm: supportForm}},
		},
	}
}

func text(s string) *models.Label {
	l := models.Text(s)
	return &l
}
