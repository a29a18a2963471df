package engine

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/shridarpatil/dialogengine/internal/dialogerr"
	"github.com/shridarpatil/dialogengine/internal/models"
)

var placeholderPattern = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// renderTemplate substitutes every "{name}" placeholder in s with the
// corresponding value from values, or empty string if absent. It never
// fails.
func renderTemplate(s string, values map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(s, func(m string) string {
		name := m[1 : len(m)-1]
		return values[name]
	})
}

// renderMenu renders a form step's Menu variant.
func renderMenu(ctx context.Context, m models.Menu, t formTurn) (string, error) {
	switch {
	case m.Static != nil:
		return m.Static.Resolve(t.lang)
	case m.List != nil:
		return renderListInput(ctx, m.List, t)
	case m.Fn != nil:
		text, err := m.Fn(ctx, scopeFrom(t))
		if err != nil {
			return "", dialogerr.Wrap(dialogerr.KindImproperlyConfigured, "callable menu failed", err)
		}
		return text, nil
	default:
		return "", dialogerr.New(dialogerr.KindImproperlyConfigured, "form step has no menu variant set")
	}
}

func renderListInput(ctx context.Context, l *models.ListInput, t formTurn) (string, error) {
	items, err := l.Resolve(ctx, scopeFrom(t))
	if err != nil {
		return "", err
	}
	title, err := l.Title.Resolve(t.lang)
	if err != nil {
		return "", err
	}
	if len(items) == 0 && l.EmptyListMessage != "" {
		return renderTemplate(l.EmptyListMessage, map[string]string{"title": title}), nil
	}
	var b strings.Builder
	b.WriteString(title)
	for i, item := range items {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%d. %s", i+1, item.Display))
	}
	if l.Extra != "" {
		b.WriteString("\n")
		b.WriteString(l.Extra)
	}
	return b.String(), nil
}

// renderNavigationMenu renders a branch node's own title + numbered
// children. last_input is checked for the root-back error.
func renderNavigationMenu(n *models.NavigationMenu, lang, lastInput, backSymbol string, isHome bool) (string, error) {
	if isHome && lastInput == backSymbol {
		return "", dialogerr.New(dialogerr.KindBackAtRoot, "cannot go back from the home menu")
	}
	title, err := n.Title.Resolve(lang)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("CON ")
	b.WriteString(title)
	b.WriteString(":")
	for i, c := range n.Children {
		label, err := c.Title.Resolve(lang)
		if err != nil {
			return "", err
		}
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%d. %s", i+1, label))
	}
	return b.String(), nil
}
