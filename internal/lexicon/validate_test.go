package lexicon

import (
	"strings"
	"testing"
)

func word(id, translit string) Word {
	return Word{ID: id, Forms: Forms{Transliteration: translit}, Meaning: translit}
}

func TestValidate_BundledDatasetPasses(t *testing.T) {
	if _, err := Load(wordsJSON, pairsJSON); err != nil {
		t.Fatalf("bundled dataset validation failed: %v", err)
	}
}

func TestValidate_DetectsSelfPair(t *testing.T) {
	words := []Word{word("a", "aana")}
	pairs := []ConfusablePair{{ID: "p1", WordID: "a", ConfusableWordID: "a"}}

	err := validate(words, pairs)
	if err == nil {
		t.Fatal("expected error for self pair, got nil")
	}
	if !strings.Contains(err.Error(), "itself") {
		t.Errorf("error should mention the self pair, got: %v", err)
	}
}

func TestValidate_DetectsDanglingWord(t *testing.T) {
	words := []Word{word("a", "aana")}
	pairs := []ConfusablePair{{ID: "p1", WordID: "a", ConfusableWordID: "ghost"}}

	err := validate(words, pairs)
	if err == nil {
		t.Fatal("expected error for dangling word reference, got nil")
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Errorf("error should mention the missing ID, got: %v", err)
	}
}

func TestValidate_DetectsDuplicateIDs(t *testing.T) {
	words := []Word{word("a", "aana"), word("a", "aaNu"), word("b", "ithu")}
	pairs := []ConfusablePair{
		{ID: "p1", WordID: "a", ConfusableWordID: "b"},
		{ID: "p1", WordID: "b", ConfusableWordID: "a"},
	}

	err := validate(words, pairs)
	if err == nil {
		t.Fatal("expected error for duplicates, got nil")
	}
	if !strings.Contains(err.Error(), `duplicate word ID: "a"`) {
		t.Errorf("error should mention duplicate word, got: %v", err)
	}
	if !strings.Contains(err.Error(), `duplicate pair ID: "p1"`) {
		t.Errorf("error should mention duplicate pair, got: %v", err)
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	words := []Word{word("a", "aana"), {ID: "b"}}
	pairs := []ConfusablePair{
		{ID: "p1", WordID: "a", ConfusableWordID: "x"},
		{ID: "p2", WordID: "y", ConfusableWordID: "a"},
	}

	err := validate(words, pairs)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	for _, want := range []string{`"x"`, `"y"`, "no written form"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %s, got: %v", want, err)
		}
	}
}

func TestLoad_RejectsSchemaViolation(t *testing.T) {
	badPairs := []byte(`[{"id": "p1", "wordId": "a"}]`)
	_, err := Load(wordsJSON, badPairs)
	if err == nil {
		t.Fatal("expected schema error, got nil")
	}
	if !strings.Contains(err.Error(), "schema") {
		t.Errorf("error should mention schema, got: %v", err)
	}
}

func TestLoad_RejectsMalformedJSON(t *testing.T) {
	if _, err := Load([]byte(`[{`), pairsJSON); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}
