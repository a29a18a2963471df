package engine

import (
	"context"
	"strconv"

	"github.com/shridarpatil/dialogengine/internal/dialogerr"
	"github.com/shridarpatil/dialogengine/internal/models"
)

// walkResult is what walkTree resolves a path down to: the NavigationMenu
// cursor, and how many leading path tokens were actually consumed to get
// there (the rest, if any, belong to that node's form).
type walkResult struct {
	node     *models.NavigationMenu
	consumed int
}

// walkCtx is what a ConditionalFlow's predicate needs.
type walkCtx struct {
	ctx        context.Context
	msisdn     string
	sessionID  string
	ussdString string
	lastInput  string
	storeKey   string
	store      models.FieldStore
}

// walkTree resolves root down through ConditionalFlow junctions and
// NavigationMenu children along path. It stops the instant it
// reaches a childless NavigationMenu (a leaf, which always carries a
// NextForm per the tree invariant) — any path tokens past that point are
// form input, not tree navigation, and are left unconsumed for the form
// state machine to handle directly. If the path runs out while still on a
// branch node, that branch node itself is returned for rendering.
func walkTree(root models.Node, path []string, wc walkCtx) (walkResult, error) {
	cur := root
	idx := 0
	for {
		if cf, ok := cur.(*models.ConditionalFlow); ok {
			result, err := cf.Condition(wc.ctx, wc.msisdn, wc.sessionID, wc.ussdString, wc.lastInput, wc.storeKey, wc.store)
			if err != nil {
				return walkResult{}, dialogerr.Wrap(dialogerr.KindConditionEval, "condition_fxn failed", err)
			}
			next, ok := cf.ConditionResultMap[result]
			if !ok {
				return walkResult{}, dialogerr.New(dialogerr.KindConditionResult, "condition result "+result+" not in result mapping")
			}
			cur = next
			continue
		}

		menu, ok := cur.(*models.NavigationMenu)
		if !ok {
			return walkResult{}, dialogerr.New(dialogerr.KindImproperlyConfigured, "unknown node type in tree")
		}
		if !menu.HasChildren() {
			return walkResult{node: menu, consumed: idx}, nil
		}
		if idx >= len(path) {
			return walkResult{node: menu, consumed: idx}, nil
		}

		tok := path[idx]
		n, err := strconv.Atoi(tok)
		if err != nil || n < 1 || n > len(menu.Children) {
			return walkResult{}, dialogerr.New(dialogerr.KindInvalidChoice, "path token "+tok+" is not a valid choice")
		}
		idx++
		cur = menu.Children[n-1].Target
	}
}
