package questions

import (
	"context"
	"errors"
	"testing"
)

func TestNormalizeLanguage(t *testing.T) {
	cases := []struct {
		raw  string
		want Language
	}{
		{raw: "es", want: LanguageSpanish},
		{raw: " FR ", want: LanguageFrench},
		{raw: "de", want: LanguageGerman},
		{raw: "pt", want: LanguagePortuguese},
		{raw: "hi", want: LanguageHindi},
		{raw: "en", want: LanguageEnglish},
		{raw: "klingon", want: DefaultLanguage},
		{raw: "", want: DefaultLanguage},
	}
	for _, tc := range cases {
		if got := NormalizeLanguage(tc.raw); got != tc.want {
			t.Fatalf("NormalizeLanguage(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestEnsureLanguageSkipsDefault(t *testing.T) {
	batch := []Question{{Category: CategoryBehavioral, Text: "Tell me about the project you led."}}
	called := false
	rewrite := func(ctx context.Context, lang Language, qs []Question) ([]Question, error) {
		called = true
		return qs, nil
	}

	got, outcome := EnsureLanguage(context.Background(), LanguageEnglish, batch, rewrite)
	if outcome != OutcomeSkipped {
		t.Fatalf("outcome = %s, want skipped", outcome)
	}
	if called {
		t.Fatalf("rewrite must not run for the default language")
	}
	if len(got) != 1 || got[0].Text != batch[0].Text {
		t.Fatalf("batch must be returned unchanged")
	}
}

func TestEnsureLanguageSkipsWithoutRewriter(t *testing.T) {
	batch := []Question{{Category: CategoryBehavioral, Text: "Tell me about the project you led."}}
	_, outcome := EnsureLanguage(context.Background(), LanguageSpanish, batch, nil)
	if outcome != OutcomeSkipped {
		t.Fatalf("outcome = %s, want skipped when no rewriter is available", outcome)
	}
}

func TestEnsureLanguageRewritesMismatch(t *testing.T) {
	batch := []Question{
		{Category: CategoryBehavioral, Text: "Tell me about the time you led a project under pressure."},
		{Category: CategoryTechnical, Text: "Describe cómo depuras un incidente en producción."},
	}
	rewritten := []Question{
		{Category: CategoryBehavioral, Text: "Cuéntame sobre una ocasión en la que lideraste un proyecto bajo presión."},
		{Category: CategoryTechnical, Text: "Describe cómo depuras un incidente en producción."},
	}
	rewrite := func(ctx context.Context, lang Language, qs []Question) ([]Question, error) {
		if lang != LanguageSpanish {
			t.Fatalf("rewrite language = %s, want es", lang)
		}
		return rewritten, nil
	}

	got, outcome := EnsureLanguage(context.Background(), LanguageSpanish, batch, rewrite)
	if outcome != OutcomeApplied {
		t.Fatalf("outcome = %s, want applied", outcome)
	}
	if got[0].Text != rewritten[0].Text {
		t.Fatalf("expected rewritten batch")
	}
}

func TestEnsureLanguageAcceptsMatchingBatch(t *testing.T) {
	batch := []Question{
		{Category: CategoryBehavioral, Text: "Cuéntame sobre una ocasión en la que lideraste el proyecto bajo presión y qué aprendiste."},
	}
	rewrite := func(ctx context.Context, lang Language, qs []Question) ([]Question, error) {
		t.Fatalf("rewrite must not run for a matching batch")
		return nil, nil
	}
	_, outcome := EnsureLanguage(context.Background(), LanguageSpanish, batch, rewrite)
	if outcome != OutcomeSkipped {
		t.Fatalf("outcome = %s, want skipped", outcome)
	}
}

func TestEnsureLanguageFailsOpen(t *testing.T) {
	batch := []Question{{Category: CategoryBehavioral, Text: "Tell me about the team you led and what you learned."}}

	t.Run("rewrite_error", func(t *testing.T) {
		rewrite := func(ctx context.Context, lang Language, qs []Question) ([]Question, error) {
			return nil, errors.New("boom")
		}
		got, outcome := EnsureLanguage(context.Background(), LanguageSpanish, batch, rewrite)
		if outcome != OutcomeFailed {
			t.Fatalf("outcome = %s, want failed", outcome)
		}
		if got[0].Text != batch[0].Text {
			t.Fatalf("original batch must be kept on rewrite error")
		}
	})

	t.Run("length_mismatch", func(t *testing.T) {
		rewrite := func(ctx context.Context, lang Language, qs []Question) ([]Question, error) {
			return append(qs, Question{Category: CategoryBehavioral, Text: "extra"}), nil
		}
		got, outcome := EnsureLanguage(context.Background(), LanguageSpanish, batch, rewrite)
		if outcome != OutcomeFailed {
			t.Fatalf("outcome = %s, want failed", outcome)
		}
		if len(got) != len(batch) {
			t.Fatalf("original batch must be kept on length mismatch")
		}
	})
}
