package engine

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/zerodha/logf"

	"github.com/shridarpatil/dialogengine/internal/dialogerr"
	"github.com/shridarpatil/dialogengine/internal/models"
)

// FormResult is what stepForm returns for one turn: the rendered text, the
// state-patch entries it produced, and whether the input validated.
type FormResult struct {
	Text  string
	Patch Patch
	Valid bool
}

// formTurn bundles everything the form step machine needs from the
// surrounding turn.
type formTurn struct {
	ctx         context.Context
	msisdn      string
	sessionID   string
	ussdString  string
	lastInput   string
	lang        string
	backSymbol  string
	homeSymbol  string
	existing    map[string]string // current session fields, for post_call's data map
	log         logf.Logger
}

// stepForm runs one turn of a FormFlow's state machine. currentStep is the
// value loaded from FORM_STEP (0 if absent — the synthetic "just arrived
// at this form" entry state reached the instant the tree walk selects a
// leaf NavigationMenu with a NextForm; step 0 never consults StepValidator
// and renders Questions[1] unconditionally).
func stepForm(f *models.FormFlow, currentStep int, t formTurn) (FormResult, error) {
	patch := Patch{}

	if t.lastInput == t.backSymbol {
		currentStep -= 2
		patch.Set(models.FieldValidLastInput, "1")
		return emitNext(f, currentStep, patch, t)
	}

	if currentStep == 0 {
		return emitNext(f, currentStep, patch, t)
	}

	q, ok := f.Questions[currentStep]
	if !ok {
		return FormResult{}, dialogerr.New(dialogerr.KindImproperlyConfigured, "form has no question for current step")
	}

	valid, extra, retryKey, err := validateStep(f, q, currentStep, t)
	if err != nil {
		return FormResult{}, err
	}
	patch.Merge(extra)

	if !valid {
		patch.Set(models.FieldValidLastInput, "0")
		patch.Set(models.FieldResponseMenuName, "ERROR")
		if exceeded, result, rerr := applyRetryCeiling(q, retryKey, t, patch); rerr != nil || exceeded {
			return result, rerr
		}
		menuText, rerr := renderMenu(t.ctx, q.Menu, t)
		if rerr != nil {
			return FormResult{}, rerr
		}
		// A callable menu frames its own output; drop that prefix before
		// embedding the menu in the invalid-input template.
		menuText = stripPrefix(menuText)
		if q.InvalidMessage != "" {
			return FormResult{Text: renderTemplate(q.InvalidMessage, map[string]string{"menu": menuText}), Patch: patch, Valid: false}, nil
		}
		tmpl := f.InvalidInputTemplate
		if tmpl.IsZero() {
			tmpl = models.Text("CON Invalid input\n{menu}")
		}
		prefix, rerr := tmpl.Resolve(t.lang)
		if rerr != nil {
			return FormResult{}, rerr
		}
		return FormResult{Text: renderTemplate(prefix, map[string]string{"menu": menuText}), Patch: patch, Valid: false}, nil
	}

	patch.Set(models.FieldValidLastInput, "1")
	if retryKey != "" {
		patch.Delete(retryKey)
	}

	if currentStep != 0 && t.lastInput != t.backSymbol && t.lastInput != t.homeSymbol {
		captureField(q, t.lastInput, patch, t)
		if q.PostCall != nil {
			data := mergedData(t.existing, patch)
			if err := q.PostCall(t.ctx, t.msisdn, t.sessionID, t.ussdString, data); err != nil {
				t.log.Error("form post_call failed", "step", currentStep, "error", err)
			}
		}
	}

	return emitNext(f, currentStep, patch, t)
}

// emitNext looks up Questions[currentStep+1] and renders it, failing with
// FormBackError past the first step and emitting a terminal message when
// the flow runs out of questions.
func emitNext(f *models.FormFlow, currentStep int, patch Patch, t formTurn) (FormResult, error) {
	next := currentStep + 1
	q, ok := f.Questions[next]
	if !ok {
		if currentStep <= -1 {
			return FormResult{}, dialogerr.New(dialogerr.KindFormBack, "back past the first form step")
		}
		if currentStep == f.N {
			return FormResult{Text: "END Next step not specified", Patch: patch, Valid: true}, nil
		}
		return FormResult{Text: "END Step response not specified", Patch: patch, Valid: true}, nil
	}

	if _, overridden := patch[models.FieldFormStep]; !overridden {
		patch.Set(models.FieldFormStep, strconv.Itoa(next))
	}
	patch.Set(models.FieldResponseMenuName, q.Name)
	text, err := renderMenu(t.ctx, q.Menu, t)
	if err != nil {
		return FormResult{}, err
	}
	text = frame(text, q)
	return FormResult{Text: text, Patch: patch, Valid: true}, nil
}

// frame applies the "CON "/"END " prefix a freshly-emitted question
// carries, unless its menu is a callable that already controls its own
// framing.
func frame(text string, q models.FormQuestion) string {
	if q.Menu.Fn != nil {
		return text
	}
	if q.Terminal {
		return "END " + text
	}
	return "CON " + text
}

// validateStep runs the ListInput index check and/or the user's
// StepValidator. For ListInput steps validity comes from the index check
// alone; the validator still runs for its side-effect data.
func validateStep(f *models.FormFlow, q models.FormQuestion, step int, t formTurn) (valid bool, extra map[string]interface{}, retryField string, err error) {
	if q.Menu.List != nil {
		items, rerr := q.Menu.List.Resolve(t.ctx, scopeFrom(t))
		if rerr != nil {
			return false, nil, "", rerr
		}
		_, ok := models.ValidateIndex(t.lastInput, items)
		valid = ok
		if f.StepValidator != nil {
			_, extra, err = f.StepValidator.Validate(t.ctx, step, t.lastInput, t.msisdn, t.sessionID)
			if err != nil {
				return false, nil, "", err
			}
		}
		return valid, extra, q.Name + models.RetrySuffix, nil
	}

	if q.Regex != nil && !q.Regex.MatchString(t.lastInput) {
		return false, nil, q.Name + models.RetrySuffix, nil
	}
	if f.StepValidator == nil {
		return true, nil, q.Name + models.RetrySuffix, nil
	}
	valid, extra, err = f.StepValidator.Validate(t.ctx, step, t.lastInput, t.msisdn, t.sessionID)
	if err != nil {
		return false, nil, "", err
	}
	return valid, extra, q.Name + models.RetrySuffix, nil
}

// applyRetryCeiling ends the session after MaxRetries consecutive invalid
// inputs at a step instead of re-prompting forever.
func applyRetryCeiling(q models.FormQuestion, retryField string, t formTurn, patch Patch) (exceeded bool, result FormResult, err error) {
	if q.MaxRetries <= 0 || retryField == "" {
		return false, FormResult{}, nil
	}
	count := 0
	if v, ok := t.existing[retryField]; ok {
		count, _ = strconv.Atoi(v)
	}
	count++
	if count >= q.MaxRetries {
		patch.Delete(retryField)
		msg := q.RetryExceededMessage
		if msg == "" {
			msg = "END Too many invalid attempts"
		}
		return true, FormResult{Text: msg, Patch: patch, Valid: false}, nil
	}
	patch.Set(retryField, strconv.Itoa(count))
	return false, FormResult{}, nil
}

// captureField writes the step's named session field plus its _VALUE
// companion (the 0-based selected index for list steps, the raw input
// otherwise).
func captureField(q models.FormQuestion, lastInput string, patch Patch, t formTurn) {
	if !models.FieldNamePattern.MatchString(q.Name) {
		t.log.Warn("skipping capture for illegal form field name", "name", q.Name)
		return
	}
	if q.Menu.List != nil {
		items, err := q.Menu.List.Resolve(t.ctx, scopeFrom(t))
		if err != nil {
			t.log.Error("failed to resolve list items during capture", "error", err)
			return
		}
		idx, ok := models.ValidateIndex(lastInput, items)
		if !ok {
			return
		}
		item := items[idx]
		patch.Set(q.Name, encodeCaptured(item.Value))
		patch.Set(q.Name+models.ValueSuffix, strconv.Itoa(idx))
		return
	}
	patch.Set(q.Name, lastInput)
	patch.Set(q.Name+models.ValueSuffix, lastInput)
}

func encodeCaptured(v interface{}) interface{} {
	switch v.(type) {
	case string, bool, int, int64, float64, nil:
		return v
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return v
		}
		return string(b)
	}
}

func scopeFrom(t formTurn) models.Scope {
	return models.Scope{
		MSISDN:     t.msisdn,
		SessionID:  t.sessionID,
		USSDString: t.ussdString,
		LastInput:  t.lastInput,
		Lang:       t.lang,
		Data:       t.existing,
	}
}

func mergedData(existing map[string]string, patch Patch) map[string]interface{} {
	out := make(map[string]interface{}, len(existing)+len(patch))
	for k, v := range existing {
		out[k] = v
	}
	for k, v := range patch {
		if v == nil {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	return out
}
