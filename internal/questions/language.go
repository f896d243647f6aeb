package questions

import (
	"context"
	"strings"

	"interview-backend/internal/shared/telemetry"
)

// Language is an interview language from the fixed allow-list.
type Language string

const (
	LanguageEnglish    Language = "en"
	LanguageSpanish    Language = "es"
	LanguageFrench     Language = "fr"
	LanguageGerman     Language = "de"
	LanguagePortuguese Language = "pt"
	LanguageHindi      Language = "hi"
)

// DefaultLanguage is used when the requested language is not recognized.
const DefaultLanguage = LanguageEnglish

// NormalizeLanguage maps a requested language code onto the allow-list,
// falling back to the default for anything unknown.
func NormalizeLanguage(raw string) Language {
	switch Language(strings.ToLower(strings.TrimSpace(raw))) {
	case LanguageSpanish:
		return LanguageSpanish
	case LanguageFrench:
		return LanguageFrench
	case LanguageGerman:
		return LanguageGerman
	case LanguagePortuguese:
		return LanguagePortuguese
	case LanguageHindi:
		return LanguageHindi
	default:
		return DefaultLanguage
	}
}

// Common function words per language, matched with surrounding spaces to
// avoid substring false positives.
var languageSignals = map[Language][]string{
	LanguageEnglish:    {"the", "and", "you", "your", "what", "how", "describe", "tell"},
	LanguageSpanish:    {"el", "la", "los", "las", "una", "cómo", "qué", "describe", "cuéntame", "usted"},
	LanguageFrench:     {"le", "la", "les", "une", "des", "comment", "quoi", "décrivez", "vous", "quelle"},
	LanguageGerman:     {"der", "die", "das", "ein", "eine", "wie", "was", "beschreiben", "sie", "ihre"},
	LanguagePortuguese: {"o", "os", "uma", "como", "que", "descreva", "você", "qual", "conte"},
	LanguageHindi:      {"आप", "है", "के", "की", "में", "बताएं", "कैसे", "क्या"},
}

// RewriteFunc asks an external service to restate a question batch in the
// target language, preserving category and count.
type RewriteFunc func(ctx context.Context, lang Language, batch []Question) ([]Question, error)

// EnsureLanguage verifies that a generated batch is actually in the requested
// language and requests a full-batch rewrite when it is not. It fails open:
// the original batch is always usable, whatever goes wrong.
func EnsureLanguage(ctx context.Context, lang Language, batch []Question, rewrite RewriteFunc) ([]Question, Outcome) {
	if lang == DefaultLanguage || rewrite == nil || len(batch) == 0 {
		return batch, OutcomeSkipped
	}

	mismatched := false
	for _, q := range batch {
		if languageMismatch(lang, q.Text) {
			mismatched = true
			break
		}
	}
	if !mismatched {
		return batch, OutcomeSkipped
	}

	rewritten, err := rewrite(ctx, lang, batch)
	if err != nil {
		telemetry.Error("questions.rewrite", map[string]any{"language": string(lang), "error": err.Error()})
		return batch, OutcomeFailed
	}
	if len(rewritten) != len(batch) {
		telemetry.Error("questions.rewrite", map[string]any{
			"language": string(lang),
			"error":    "rewritten batch length mismatch",
			"want":     len(batch),
			"got":      len(rewritten),
		})
		return batch, OutcomeFailed
	}
	return rewritten, OutcomeApplied
}

// languageMismatch reports whether the text reads as the default language
// rather than the target: the default-language signal count wins ties, and
// zero target signals always counts as a mismatch.
func languageMismatch(lang Language, text string) bool {
	target := signalCount(lang, text)
	if target == 0 {
		return true
	}
	return signalCount(DefaultLanguage, text) >= target
}

func signalCount(lang Language, text string) int {
	padded := " " + strings.ToLower(text) + " "
	count := 0
	for _, token := range languageSignals[lang] {
		if strings.Contains(padded, " "+token+" ") {
			count++
		}
	}
	return count
}
