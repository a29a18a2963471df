package models

import "github.com/shridarpatil/dialogengine/internal/dialogerr"

// Label is a piece of user-facing text that is either a plain string or,
// when translation is enabled for the deployment, a language-tag keyed
// map.
type Label struct {
	Plain  string
	ByLang map[string]string
}

// Text builds a non-translatable Label.
func Text(s string) Label { return Label{Plain: s} }

// Translated builds a Label that resolves per-language.
func Translated(byLang map[string]string) Label { return Label{ByLang: byLang} }

// IsZero reports whether the label carries no text at all.
func (l Label) IsZero() bool { return l.Plain == "" && len(l.ByLang) == 0 }

// Resolve returns the label's text for lang. A plain Label ignores lang
// entirely; a translated Label fails with KindTranslation if lang is empty
// or absent from the map rather than silently falling back to Plain.
func (l Label) Resolve(lang string) (string, error) {
	if l.ByLang == nil {
		return l.Plain, nil
	}
	if lang == "" {
		return "", dialogerr.New(dialogerr.KindTranslation, "translation enabled but no language resolved")
	}
	v, ok := l.ByLang[lang]
	if !ok {
		return "", dialogerr.New(dialogerr.KindTranslation, "no translation for language "+lang)
	}
	return v, nil
}
