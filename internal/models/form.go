package models

import (
	"regexp"

	"github.com/shridarpatil/dialogengine/internal/dialogerr"
)

// FieldNamePattern is the legal shape for a captured form field name. A
// FormQuestion whose Name fails this is logged and its capture skipped.
var FieldNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Menu is a form step's prompt: exactly one of Static, List, Fn is set.
type Menu struct {
	Static *Label
	List   *ListInput
	Fn     MenuFunc
}

// FormQuestion is one step of a FormFlow.
type FormQuestion struct {
	Name     string
	Menu     Menu
	PostCall PostCallFunc

	// Terminal marks this step as the form's last one: its rendered text
	// is framed "END " instead of "CON " and FieldFormStep still advances
	// to it, but no further input is expected.
	Terminal bool

	// Regex, when set on a plain (non-ListInput) step, is checked before
	// any user-supplied StepValidator runs. InvalidMessage, if set,
	// overrides the FormFlow-wide InvalidInputTemplate for this one step
	// (a "{menu}" placeholder is substituted the same way).
	Regex          *regexp.Regexp
	InvalidMessage string

	// MaxRetries caps consecutive invalid inputs at this step before the
	// session is ended with RetryExceededMessage. Zero means unlimited.
	MaxRetries           int
	RetryExceededMessage string
}

// FormFlow is an ordered-steps state machine: validate -> capture ->
// advance/back.
type FormFlow struct {
	// Questions is keyed by 1-based step number; steps must be contiguous
	// from 1..N for Question emission to find "current_step+1".
	Questions map[int]FormQuestion
	N         int
	// StepValidator runs for any step whose Menu is not a ListInput, and
	// optionally (for side-effect data only) when it is. Required.
	StepValidator StepValidator
	// InvalidInputTemplate defaults to Text("CON Invalid input\n{menu}")
	// if the zero value; use Translated(...) to localize it.
	InvalidInputTemplate Label
}

// Validate checks the step numbering is contiguous and a validator exists.
func (f *FormFlow) Validate() error {
	if f.StepValidator == nil {
		return dialogerr.New(dialogerr.KindImproperlyConfigured, "form flow has no step_validator")
	}
	if f.N <= 0 {
		return dialogerr.New(dialogerr.KindImproperlyConfigured, "form flow has no steps")
	}
	for i := 1; i <= f.N; i++ {
		q, ok := f.Questions[i]
		if !ok {
			return dialogerr.New(dialogerr.KindImproperlyConfigured, "form flow missing step definition")
		}
		set := 0
		if q.Menu.Static != nil {
			set++
		}
		if q.Menu.List != nil {
			set++
		}
		if q.Menu.Fn != nil {
			set++
		}
		if set != 1 {
			return dialogerr.New(dialogerr.KindImproperlyConfigured, "form step "+q.Name+" must set exactly one menu variant")
		}
	}
	return nil
}
