package engine

import (
	"context"
	"strings"

	"github.com/zerodha/logf"

	"github.com/shridarpatil/dialogengine/internal/dialogerr"
	"github.com/shridarpatil/dialogengine/internal/models"
	"github.com/shridarpatil/dialogengine/internal/store"
)

// Controller is the per-turn orchestrator: it loads session state,
// normalizes the path, walks the tree, renders the cursor, and persists
// the resulting state patch.
type Controller struct {
	Root    models.Node
	Store   store.SessionStore
	Symbols Symbols
	Log     logf.Logger

	// TranslationEnabled makes each turn resolve a language through
	// LanguageFunc, which must then be set, and pass it to Label.Resolve.
	// With it off the language is empty, so a translated Label fails to
	// resolve.
	TranslationEnabled bool
	LanguageFunc       models.LanguageFunc

	// SessionTTLSeconds refreshes the session's external expiry after
	// every turn when positive; zero leaves TTL policy entirely external.
	SessionTTLSeconds int

	// KeywordRouter and Recorder are optional; nil disables them.
	KeywordRouter *KeywordRouter
	Recorder      TurnRecorder
}

// Navigate computes the response for one turn.
func (c *Controller) Navigate(ctx context.Context, turn models.Turn) (string, error) {
	sym := c.Symbols.WithDefaults()
	key := store.Key(turn.MSISDN, turn.SessionID)

	fields, err := c.Store.GetAll(ctx, key)
	if err != nil {
		return "", err
	}
	formStep := parseStep(fields[models.FieldFormStep])
	processedPath := decodePath(fields[models.FieldProcessedPath])
	lastInput := lastToken(turn.USSDString)

	lang := ""
	if c.TranslationEnabled {
		if c.LanguageFunc == nil {
			return "", dialogerr.New(dialogerr.KindImproperlyConfigured, "translation enabled but no get_language callback configured")
		}
		lang, err = c.LanguageFunc(ctx, turn.MSISDN, turn.SessionID, turn.USSDString)
		if err != nil {
			return "", dialogerr.Wrap(dialogerr.KindTranslation, "get_language failed", err)
		}
		if lang == "" {
			return "", dialogerr.New(dialogerr.KindTranslation, "get_language returned an empty language")
		}
	}

	wc := walkCtx{ctx: ctx, msisdn: turn.MSISDN, sessionID: turn.SessionID, ussdString: turn.USSDString, lastInput: lastInput, storeKey: key, store: c.Store}

	// Every non-empty input is appended to the persisted path; the
	// normalizer folds back/home tokens out of it, and the tree walk stops
	// at the form's leaf, so form answers past it are never read as menu
	// choices.
	candidate := processedPath
	if lastInput != "" {
		candidate = append(append([]string{}, processedPath...), lastInput)
	}
	if formStep == 0 && len(processedPath) == 0 && lastInput != "" {
		if startPath, ok := c.KeywordRouter.Route(lastInput); ok {
			candidate = startPath
		}
	}
	effective := NormalizePath(candidate, sym)

	finalPatch := Patch{}
	finalPatch.Set(models.FieldValidLastInput, "1")

	var respText string
	persistAsLastSuccess := true

	outcome, rerr := c.renderPath(wc, effective, formStep, lastInput, lang, sym, fields)
	switch {
	case rerr == nil:
		respText = outcome.text
		finalPatch.Merge(outcome.patch)
		if outcome.valid {
			finalPatch.Set(models.FieldProcessedPath, encodePath(effective))
		} else {
			finalPatch.Set(models.FieldValidLastInput, "0")
			finalPatch.Set(models.FieldProcessedPath, encodePath(processedPath))
		}

	case dialogerr.Is(rerr, dialogerr.KindInvalidChoice):
		finalPatch.Set(models.FieldValidLastInput, "0")
		finalPatch.Set(models.FieldProcessedPath, encodePath(processedPath))
		respText = "CON Invalid Choice\n" + stripPrefix(fields[models.FieldLastSuccessResponse])
		persistAsLastSuccess = false

	case dialogerr.Is(rerr, dialogerr.KindBackAtRoot):
		// Back at the home menu: the normalized path is already empty, so
		// re-render it without the back token as last input.
		retry, err2 := c.renderPath(wc, effective, formStep, "", lang, sym, fields)
		if err2 != nil {
			return "", err2
		}
		respText = retry.text
		finalPatch.Merge(retry.patch)
		finalPatch.Set(models.FieldProcessedPath, encodePath(effective))

	case dialogerr.Is(rerr, dialogerr.KindFormBack):
		// Back past the form's first step: the segment that led into the
		// form is popped off the already-normalized path too, leaving the
		// form entirely.
		popped := effective
		if len(popped) > 0 {
			popped = popped[:len(popped)-1]
		}
		poppedEffective := NormalizePath(popped, sym)
		retry, err2 := c.renderPath(wc, poppedEffective, 0, "", lang, sym, fields)
		if err2 != nil {
			return "", err2
		}
		respText = retry.text
		finalPatch.Merge(retry.patch)
		finalPatch.Set(models.FieldFormStep, nil)
		finalPatch.Set(models.FieldProcessedPath, encodePath(poppedEffective))

	default:
		// TranslationError, ConditionEvaluationError, ConditionResultError,
		// ImproperlyConfigured, ParseError: programmer errors, propagate
		// untouched.
		return "", rerr
	}

	respText = renderTemplate(respText, fields)
	if persistAsLastSuccess {
		finalPatch.Set(models.FieldLastSuccessResponse, respText)
	}

	if err := c.Store.ApplyPatch(ctx, key, stringify(finalPatch, c.Log)); err != nil {
		return "", err
	}
	if c.SessionTTLSeconds > 0 {
		if err := c.Store.Expire(ctx, key, c.SessionTTLSeconds); err != nil {
			c.Log.Warn("failed to refresh session ttl", "key", key, "error", err)
		}
	}
	if c.Recorder != nil {
		valid := finalPatch[models.FieldValidLastInput] == "1"
		if err := c.Recorder.RecordTurn(ctx, TurnRecord{
			MSISDN:        turn.MSISDN,
			SessionID:     turn.SessionID,
			Channel:       turn.Channel,
			USSDString:    turn.USSDString,
			ProcessedPath: encodePath(effective),
			Response:      respText,
			Valid:         valid,
		}); err != nil {
			c.Log.Warn("failed to record turn audit entry", "error", err)
		}
	}

	if turn.Channel != models.ChannelUSSD {
		respText = stripPrefix(respText)
	}
	return respText, nil
}

// renderOutcome is the result of resolving one path down to a cursor and
// rendering it.
type renderOutcome struct {
	text  string
	patch Patch
	valid bool
}

func (c *Controller) renderPath(wc walkCtx, path []string, formStep int, lastInput, lang string, sym Symbols, fields map[string]string) (renderOutcome, error) {
	result, err := walkTree(c.Root, path, wc)
	if err != nil {
		return renderOutcome{}, err
	}
	isHome := len(path) == 0

	if result.node.HasChildren() {
		text, err := renderNavigationMenu(result.node, lang, lastInput, sym.Back, isHome)
		if err != nil {
			return renderOutcome{}, err
		}
		p := Patch{}
		p.Delete(models.FieldFormStep)
		p.Set(models.FieldResponseMenuName, strings.ToUpper(result.node.Name))
		return renderOutcome{text: text, patch: p, valid: true}, nil
	}

	if result.node.NextForm == nil {
		return renderOutcome{}, dialogerr.New(dialogerr.KindImproperlyConfigured, "leaf menu "+result.node.Name+" has neither children nor next_form")
	}

	ft := formTurn{
		ctx:        wc.ctx,
		msisdn:     wc.msisdn,
		sessionID:  wc.sessionID,
		ussdString: wc.ussdString,
		lastInput:  lastInput,
		lang:       lang,
		backSymbol: sym.Back,
		homeSymbol: sym.Home,
		existing:   fields,
		log:        c.Log,
	}
	fr, err := stepForm(result.node.NextForm, formStep, ft)
	if err != nil {
		return renderOutcome{}, err
	}
	return renderOutcome{text: fr.Text, patch: fr.Patch, valid: fr.Valid}, nil
}
