package cmd

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/abhisek/sabdam/internal/lexicon"
)

// findWord resolves arg as a word id, then as an exact transliteration
// (case matters: peru and peRu are different words), then as a search
// with exactly one hit.
func findWord(lex *lexicon.Lexicon, arg string) (lexicon.Word, error) {
	if w, ok := lex.Word(arg); ok {
		return w, nil
	}
	if w, ok := lo.Find(lex.Words(), func(w lexicon.Word) bool {
		return w.Forms.Transliteration == arg || w.Forms.NativeScript == arg
	}); ok {
		return w, nil
	}
	hits := lex.Search(arg)
	switch len(hits) {
	case 0:
		return lexicon.Word{}, fmt.Errorf("no word matches %q", arg)
	case 1:
		return hits[0], nil
	}
	names := lo.Map(hits, func(w lexicon.Word, _ int) string { return w.Forms.Transliteration })
	return lexicon.Word{}, fmt.Errorf("%q matches %d words: %s", arg, len(hits), strings.Join(names, ", "))
}

func newWordsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "words",
		Short: "Browse the word library",
	}
	c.AddCommand(newWordsListCmd(), newWordsShowCmd(), newWordsPairsCmd())
	return c
}

func newWordsListCmd() *cobra.Command {
	var level string
	c := &cobra.Command{
		Use:   "list [query]",
		Short: "List words, optionally filtered",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lex := lexicon.Default()
			words := lex.Words()
			if len(args) == 1 {
				words = lex.Search(args[0])
			}
			if level != "" {
				byLevel := lo.SliceToMap(lex.ByLevel(level), func(w lexicon.Word) (string, bool) {
					return w.ID, true
				})
				words = lo.Filter(words, func(w lexicon.Word, _ int) bool { return byLevel[w.ID] })
			}

			rows := lo.Map(words, func(w lexicon.Word, _ int) []string {
				return []string{w.Forms.Transliteration, w.Forms.NativeScript, w.Meaning, w.Level}
			})
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Word", "Malayalam", "Meaning", "Level"}, rows))
			fmt.Fprintf(out, "%d of %d words\n", len(words), lex.Len())
			return nil
		},
	}
	c.Flags().StringVar(&level, "level", "", "Only words of this level")
	return c
}

func newWordsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <word>",
		Short: "Show one word with its examples and confusable pairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lex := lexicon.Default()
			w, err := findWord(lex, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s\n", w.Forms.Transliteration, w.Forms.NativeScript)
			fmt.Fprintf(out, "Meaning:  %s\n", w.Meaning)
			if w.PartOfSpeech != "" {
				fmt.Fprintf(out, "Type:     %s\n", w.PartOfSpeech)
			}
			if w.Level != "" {
				fmt.Fprintf(out, "Level:    %s\n", w.Level)
			}
			if w.HasPronunciation() {
				fmt.Fprintf(out, "Audio:    %s\n", w.AssetPath())
			}
			fmt.Fprintf(out, "ID:       %s\n", w.ID)

			if len(w.Examples) > 0 {
				fmt.Fprintln(out, "\nExamples:")
				for _, ex := range w.Examples {
					fmt.Fprintf(out, "  %s\n    %s\n", ex.Transliteration, ex.Translation)
				}
			}

			pairs := lex.PairsForWord(w.ID)
			if len(pairs) > 0 {
				fmt.Fprintln(out, "\nEasily confused with:")
				seen := map[string]bool{}
				for _, p := range pairs {
					otherID := p.ConfusableWordID
					if otherID == w.ID {
						otherID = p.WordID
					}
					if seen[otherID] {
						continue
					}
					seen[otherID] = true
					other, _ := lex.Word(otherID)
					fmt.Fprintf(out, "  %s (%s): %s\n", other.Forms.Transliteration, other.Meaning, p.Reason)
				}
			}
			return nil
		},
	}
}

func newWordsPairsCmd() *cobra.Command {
	var check bool
	c := &cobra.Command{
		Use:   "pairs",
		Short: "List confusable pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lex := lexicon.Default()
			out := cmd.OutOrStdout()

			if check {
				issues := lex.CheckMirrors()
				if len(issues) == 0 {
					fmt.Fprintln(out, "All pairs have consistent mirrors.")
					return nil
				}
				for _, is := range issues {
					fmt.Fprintln(out, is.String())
				}
				fmt.Fprintf(out, "%d mirror issue(s)\n", len(issues))
				return nil
			}

			rows := lo.Map(lex.Pairs(), func(p lexicon.ConfusablePair, _ int) []string {
				a, _ := lex.Word(p.WordID)
				b, _ := lex.Word(p.ConfusableWordID)
				return []string{p.ID, a.Forms.Transliteration, b.Forms.Transliteration, p.Reason}
			})
			fmt.Fprintln(out, renderTable([]string{"Pair", "Word", "Confused with", "Reason"}, rows))
			return nil
		},
	}
	c.Flags().BoolVar(&check, "check", false, "Report pairs whose mirror is missing or disagrees")
	return c
}
