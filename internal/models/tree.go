package models

import "github.com/shridarpatil/dialogengine/internal/dialogerr"

// Node is the sum type a path walk recurses over: either a NavigationMenu
// or a ConditionalFlow. FormFlow is deliberately not a Node — it is only
// ever reached through a leaf NavigationMenu's NextForm field.
type Node interface {
	isNode()
}

// Child is one entry in a NavigationMenu's ordered children. Its 1-based
// position under the parent is its displayed id — ids are per-parent,
// never a process-global counter. Target may itself be a ConditionalFlow,
// resolved transparently by the walker before the next path token is
// consumed.
type Child struct {
	Title  Label
	Target Node
}

// NavigationMenu is an immutable tree node: a title plus either ordered
// children or a terminal form, never both.
type NavigationMenu struct {
	Name     string
	Title    Label
	Children []Child
	NextForm *FormFlow
}

func (*NavigationMenu) isNode() {}

// HasChildren reports whether this node branches further.
func (n *NavigationMenu) HasChildren() bool { return len(n.Children) > 0 }

// Validate checks the leaf invariant recursively: a node has children XOR
// a next_form, never both, never neither. Raises KindImproperlyConfigured.
func (n *NavigationMenu) Validate() error {
	if n == nil {
		return dialogerr.New(dialogerr.KindImproperlyConfigured, "nil NavigationMenu")
	}
	hasChildren := len(n.Children) > 0
	hasForm := n.NextForm != nil
	if hasChildren && hasForm {
		return dialogerr.New(dialogerr.KindImproperlyConfigured, "menu "+n.Name+" has both children and next_form")
	}
	if !hasChildren && !hasForm {
		return dialogerr.New(dialogerr.KindImproperlyConfigured, "leaf menu "+n.Name+" has neither children nor next_form")
	}
	if hasForm {
		if err := n.NextForm.Validate(); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		switch t := c.Target.(type) {
		case *NavigationMenu:
			if err := t.Validate(); err != nil {
				return err
			}
		case *ConditionalFlow:
			if err := t.Validate(); err != nil {
				return err
			}
		default:
			return dialogerr.New(dialogerr.KindImproperlyConfigured, "menu "+n.Name+" has a child of unknown node type")
		}
	}
	return nil
}

// ConditionalFlow evaluates a predicate at walk time to select one of N
// subtree roots.
type ConditionalFlow struct {
	Name               string
	Condition          ConditionFunc
	ConditionResultMap map[string]Node
}

func (*ConditionalFlow) isNode() {}

// Validate checks that every mapped subtree is itself well-formed.
func (c *ConditionalFlow) Validate() error {
	if c.Condition == nil {
		return dialogerr.New(dialogerr.KindImproperlyConfigured, "conditional flow "+c.Name+" has no condition_fxn")
	}
	if len(c.ConditionResultMap) == 0 {
		return dialogerr.New(dialogerr.KindImproperlyConfigured, "conditional flow "+c.Name+" has an empty result mapping")
	}
	for _, n := range c.ConditionResultMap {
		switch t := n.(type) {
		case *NavigationMenu:
			if err := t.Validate(); err != nil {
				return err
			}
		case *ConditionalFlow:
			if err := t.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}
