package questions

import "testing"

func TestFallbackQuestionsExactCounts(t *testing.T) {
	counts := map[Category]int{
		CategoryBehavioral:   2,
		CategoryTechnical:    0,
		CategorySituational:  0,
		CategoryMotivational: 0,
	}
	got := FallbackQuestions(counts, LanguageEnglish)
	if len(got) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(got))
	}
	for _, q := range got {
		if q.Category != CategoryBehavioral {
			t.Fatalf("expected only Behavioral questions, got %s", q.Category)
		}
		if q.Text == "" {
			t.Fatalf("expected non-empty question text")
		}
		if q.IsFollowUp {
			t.Fatalf("fallback questions must not be follow-ups")
		}
	}
}

func TestFallbackQuestionsAllCategories(t *testing.T) {
	counts := map[Category]int{
		CategoryBehavioral:   1,
		CategoryTechnical:    2,
		CategorySituational:  1,
		CategoryMotivational: 1,
	}
	got := FallbackQuestions(counts, LanguageSpanish)
	if len(got) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(got))
	}
	perCategory := map[Category]int{}
	for _, q := range got {
		perCategory[q.Category]++
	}
	for category, want := range counts {
		if perCategory[category] != want {
			t.Fatalf("category %s: got %d questions, want %d", category, perCategory[category], want)
		}
	}
}

func TestFallbackQuestionsCycleBeyondPool(t *testing.T) {
	counts := map[Category]int{CategoryTechnical: 8}
	got := FallbackQuestions(counts, LanguageEnglish)
	if len(got) != 8 {
		t.Fatalf("expected 8 questions, got %d", len(got))
	}
	if got[0].Text != got[5].Text {
		t.Fatalf("expected pool to cycle after exhaustion")
	}
}

func TestFallbackQuestionsUnknownLanguageUsesDefault(t *testing.T) {
	counts := map[Category]int{CategoryBehavioral: 1}
	fromUnknown := FallbackQuestions(counts, Language("de"))
	fromDefault := FallbackQuestions(counts, DefaultLanguage)
	if fromUnknown[0].Text != fromDefault[0].Text {
		t.Fatalf("expected default-language templates for a language without a set")
	}
}
