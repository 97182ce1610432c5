package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/sabdam/internal/mastery"
)

func newStatsCmd() *cobra.Command {
	var perWord bool
	c := &cobra.Command{
		Use:   "stats",
		Short: "Show learning statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			sum := mastery.Summarize(ctx, e.lex, e.progress)
			data := e.progress.Load(ctx)

			fmt.Fprintf(out, "Words:     %d\n", sum.Total)
			for _, st := range mastery.States() {
				fmt.Fprintf(out, "%-10s %d\n", st.Label()+":", sum.Count(st))
			}
			fmt.Fprintf(out, "Difficult: %d\n", len(data.DifficultWordIDs))
			fmt.Fprintf(out, "Sessions:  %d", len(data.SessionHistory))
			if n := len(data.SessionHistory); n > 0 {
				fmt.Fprintf(out, " (last %d%%)", data.SessionHistory[n-1].Percent())
			}
			fmt.Fprintln(out)

			if !perWord {
				return nil
			}
			var rows [][]string
			for _, ws := range mastery.Classify(ctx, e.lex, e.progress) {
				last := "-"
				if !ws.LastPracticed.IsZero() {
					last = ws.LastPracticed.Local().Format("2006-01-02")
				}
				rows = append(rows, []string{
					ws.Word.Forms.Transliteration,
					ws.Word.Forms.NativeScript,
					ws.State.Label(),
					strconv.Itoa(ws.CorrectCount),
					last,
				})
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderTable([]string{"Word", "Malayalam", "State", "Correct", "Last practised"}, rows))
			return nil
		},
	}
	c.Flags().BoolVar(&perWord, "words", false, "Also list every word with its state")
	return c
}
