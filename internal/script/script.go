// Package script adapts small JavaScript snippets to the engine's
// callback contracts (step validators, condition predicates, dynamic list
// items) using goja, so a deployment can ship predicate logic without a
// recompile. It is purely additive: the engine's primary callback
// contract is still a Go function, and this package never builds or
// interprets the navigation tree itself.
package script

import (
	"context"
	"fmt"

	"github.com/dop251/goja"

	"github.com/shridarpatil/dialogengine/internal/models"
)

// Evaluator compiles and runs a single JS snippet per call. Each call gets
// a fresh *goja.Runtime — scripts are short, stateless predicates/validators
// and a shared VM would leak state across unrelated sessions.
type Evaluator struct {
	// Source is the JS snippet body. It runs as a top-level script, not
	// wrapped in a function, with the turn's data bound to a global `ctx`
	// object; its result is the value of its last expression statement
	// (what goja.RunString returns), so it has no return statement.
	Source string
}

// NewEvaluator wraps a JS snippet.
func NewEvaluator(source string) *Evaluator { return &Evaluator{Source: source} }

func (e *Evaluator) run(ctxObj map[string]interface{}) (goja.Value, error) {
	vm := goja.New()
	if err := vm.Set("ctx", ctxObj); err != nil {
		return nil, fmt.Errorf("bind script context: %w", err)
	}
	v, err := vm.RunString(e.Source)
	if err != nil {
		return nil, fmt.Errorf("run script: %w", err)
	}
	return v, nil
}

// StepValidator adapts the snippet to the models.StepValidator contract.
// The script must evaluate to either a boolean, or an object shaped
// {valid: bool, extra: {...}}.
func (e *Evaluator) StepValidator() models.StepValidator {
	return models.StepValidatorFunc(func(_ context.Context, step int, input, msisdn, sessionID string) (bool, map[string]interface{}, error) {
		v, err := e.run(map[string]interface{}{
			"step": step, "input": input, "msisdn": msisdn, "session_id": sessionID,
		})
		if err != nil {
			return false, nil, err
		}
		return decodeValidatorResult(v)
	})
}

// ConditionFunc adapts the snippet to the models.ConditionFunc contract.
// The script must evaluate to a string naming a key in the
// ConditionalFlow's result mapping.
func (e *Evaluator) ConditionFunc() models.ConditionFunc {
	return func(_ context.Context, msisdn, sessionID, ussdString, lastInput, storeKey string, _ models.FieldStore) (string, error) {
		v, err := e.run(map[string]interface{}{
			"msisdn": msisdn, "session_id": sessionID, "ussd_string": ussdString,
			"last_input": lastInput, "redis_key": storeKey,
		})
		if err != nil {
			return "", err
		}
		return v.String(), nil
	}
}

// ItemsFunc adapts the snippet to a dynamic ListInput items producer. The
// script must evaluate to an array of {display, value} objects.
func (e *Evaluator) ItemsFunc() models.ItemsFunc {
	return func(_ context.Context, scope models.Scope) ([]models.ListItem, error) {
		v, err := e.run(map[string]interface{}{
			"msisdn": scope.MSISDN, "session_id": scope.SessionID, "ussd_string": scope.USSDString,
			"last_input": scope.LastInput, "lang": scope.Lang, "data": scope.Data,
		})
		if err != nil {
			return nil, err
		}
		return decodeItems(v)
	}
}

func decodeValidatorResult(v goja.Value) (bool, map[string]interface{}, error) {
	exported := v.Export()
	switch val := exported.(type) {
	case bool:
		return val, nil, nil
	case map[string]interface{}:
		valid, _ := val["valid"].(bool)
		extra, _ := val["extra"].(map[string]interface{})
		return valid, extra, nil
	default:
		return false, nil, fmt.Errorf("script validator returned unsupported type %T", exported)
	}
}

func decodeItems(v goja.Value) ([]models.ListItem, error) {
	exported := v.Export()
	raw, ok := exported.([]interface{})
	if !ok {
		return nil, fmt.Errorf("script items producer returned unsupported type %T", exported)
	}
	items := make([]models.ListItem, 0, len(raw))
	for _, r := range raw {
		m, ok := r.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("script item is not an object: %T", r)
		}
		display, _ := m["display"].(string)
		items = append(items, models.ListItem{Display: display, Value: m["value"]})
	}
	return items, nil
}
