package models

import "context"

// FieldStore is the minimal read surface a ConditionFunc needs into the
// session record. The concrete store.SessionStore in internal/store
// satisfies it without models importing that package.
type FieldStore interface {
	GetField(ctx context.Context, key, field string) (string, bool, error)
}

// Scope bundles the turn context handed to dynamic items/menu callbacks:
// identity, accumulated input, resolved language, and session data.
type Scope struct {
	MSISDN     string
	SessionID  string
	USSDString string
	LastInput  string
	Lang       string
	// Data holds the session fields as loaded from the store at the start
	// of the turn; values captured during the same turn are not included.
	Data map[string]string
	// State is a free-form, non-persisted bag. The engine passes it as nil
	// and does not share it between callback invocations.
	State map[string]interface{}
}

// StepValidator validates a form step's last input and optionally returns
// extra session-state patch entries. Implementations that only produce
// extra data and no verdict should wrap with ExtraOnlyValidator instead of
// hard-coding true.
type StepValidator interface {
	Validate(ctx context.Context, step int, input string, msisdn, sessionID string) (valid bool, extra map[string]interface{}, err error)
}

// StepValidatorFunc adapts a plain function to StepValidator.
type StepValidatorFunc func(ctx context.Context, step int, input string, msisdn, sessionID string) (bool, map[string]interface{}, error)

func (f StepValidatorFunc) Validate(ctx context.Context, step int, input string, msisdn, sessionID string) (bool, map[string]interface{}, error) {
	return f(ctx, step, input, msisdn, sessionID)
}

// ExtraOnlyValidator adapts a function that returns only a state-patch map
// (no validity verdict) into a StepValidator that always reports valid —
// the natural shape for ListInput steps, where validity comes from the
// list's own index check and the validator runs purely for its side-effect
// data.
func ExtraOnlyValidator(f func(ctx context.Context, step int, input string, msisdn, sessionID string) (map[string]interface{}, error)) StepValidator {
	return StepValidatorFunc(func(ctx context.Context, step int, input string, msisdn, sessionID string) (bool, map[string]interface{}, error) {
		extra, err := f(ctx, step, input, msisdn, sessionID)
		return true, extra, err
	})
}

// PostCallFunc runs after a step's input is captured, receiving the latest
// assembled field map. Its return value is ignored by the engine; it
// exists for side effects (webhooks, CRM writes, etc).
type PostCallFunc func(ctx context.Context, msisdn, sessionID, ussdString string, data map[string]interface{}) error

// ConditionFunc selects a key into a ConditionalFlow's result mapping.
type ConditionFunc func(ctx context.Context, msisdn, sessionID, ussdString, lastInput, storeKey string, store FieldStore) (string, error)

// LanguageFunc resolves the language tag for a turn when translation is
// enabled. A non-empty result is required; empty fails with KindTranslation.
type LanguageFunc func(ctx context.Context, msisdn, sessionID, ussdString string) (string, error)

// ItemsFunc produces a ListInput's items dynamically.
type ItemsFunc func(ctx context.Context, scope Scope) ([]ListItem, error)

// MenuFunc renders a callable form-step menu directly to a string.
type MenuFunc func(ctx context.Context, scope Scope) (string, error)
