package lexicon

import (
	"errors"
	"fmt"
	"strings"
)

// validate performs all structural checks on the dataset.
// Returns a combined error describing all problems found, or nil if valid.
func validate(words []Word, pairs []ConfusablePair) error {
	var errs []string

	wordIDs := make(map[string]bool, len(words))
	for _, w := range words {
		switch {
		case w.ID == "":
			errs = append(errs, fmt.Sprintf("word %q has an empty id", w.Forms.Transliteration))
			continue
		case wordIDs[w.ID]:
			errs = append(errs, fmt.Sprintf("duplicate word ID: %q", w.ID))
		}
		wordIDs[w.ID] = true

		if w.Forms.Transliteration == "" && w.Forms.NativeScript == "" {
			errs = append(errs, fmt.Sprintf("word %q has no written form", w.ID))
		}
	}

	pairIDs := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		if p.ID == "" {
			errs = append(errs, "confusable pair with empty id")
		} else if pairIDs[p.ID] {
			errs = append(errs, fmt.Sprintf("duplicate pair ID: %q", p.ID))
		}
		pairIDs[p.ID] = true

		if p.WordID == p.ConfusableWordID {
			errs = append(errs, fmt.Sprintf("pair %q pairs word %q with itself", p.ID, p.WordID))
		}
		if !wordIDs[p.WordID] {
			errs = append(errs, fmt.Sprintf("pair %q references nonexistent word %q", p.ID, p.WordID))
		}
		if !wordIDs[p.ConfusableWordID] {
			errs = append(errs, fmt.Sprintf("pair %q references nonexistent word %q", p.ID, p.ConfusableWordID))
		}
	}

	if len(errs) > 0 {
		return errors.New("lexicon validation failed:\n  " + strings.Join(errs, "\n  "))
	}
	return nil
}
