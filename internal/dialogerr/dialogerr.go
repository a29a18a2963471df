// Package dialogerr defines the engine's error taxonomy. These are
// control signals as much as errors: some are caught and recovered by the
// controller within the same turn, others are programmer errors that
// propagate to the caller untouched.
package dialogerr

import (
	"errors"
	"fmt"
)

// Kind distinguishes the handled cases the controller recovers from the
// ones that are always a configuration/programmer mistake.
type Kind string

const (
	// KindInvalidChoice is raised by the tree walker on an out-of-range or
	// non-numeric path token. Caught by the controller.
	KindInvalidChoice Kind = "navigation_invalid_choice"
	// KindBackAtRoot is raised when the back token is used at the home menu.
	// Caught by the controller.
	KindBackAtRoot Kind = "navigation_back_error"
	// KindFormBack is raised when a form's back-intent transition walks
	// past its first step. Caught by the controller.
	KindFormBack Kind = "form_back_error"
	// KindTranslation is raised on a missing language or missing
	// translation-map entry. Propagates to the caller.
	KindTranslation Kind = "translation_error"
	// KindConditionEval is raised when a ConditionalFlow's predicate
	// returns an error. Propagates to the caller.
	KindConditionEval Kind = "condition_evaluation_error"
	// KindConditionResult is raised when a predicate's result is not a key
	// of its result mapping. Propagates to the caller.
	KindConditionResult Kind = "condition_result_error"
	// KindImproperlyConfigured is raised for malformed trees or callbacks
	// of the wrong arity. Propagates to the caller.
	KindImproperlyConfigured Kind = "improperly_configured"
	// KindParse is raised when a path token cannot be parsed where a
	// well-formed one was expected. Propagates to the caller.
	KindParse Kind = "parse_error"
)

// Error is the concrete type raised for every Kind above. Use errors.As to
// recover it and inspect Kind, or the Is helper below for a quick check.
type Error struct {
	Kind    Kind
	Message string
	Err     error // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether a target error is a *Error of the given Kind, so
// callers can write `if dialogerr.Is(err, dialogerr.KindInvalidChoice)`.
func Is(err error, kind Kind) bool {
	var de *Error
	if !errors.As(err, &de) {
		return false
	}
	return de.Kind == kind
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}
