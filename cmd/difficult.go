package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDifficultCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "difficult",
		Short: "Manage the difficult-word list",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List difficult words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			ids := e.progress.GetDifficultWords(cmd.Context())
			out := cmd.OutOrStdout()
			if len(ids) == 0 {
				fmt.Fprintln(out, "No difficult words.")
				return nil
			}
			rows := make([][]string, 0, len(ids))
			for _, id := range ids {
				w, ok := e.lex.Word(id)
				if !ok {
					rows = append(rows, []string{id, "", "(not in library)"})
					continue
				}
				rows = append(rows, []string{w.Forms.Transliteration, w.Forms.NativeScript, w.Meaning})
			}
			fmt.Fprintln(out, renderTable([]string{"Word", "Malayalam", "Meaning"}, rows))
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add <word>",
		Short: "Mark a word as difficult",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			w, err := findWord(e.lex, args[0])
			if err != nil {
				return err
			}
			if err := e.progress.MarkDifficult(cmd.Context(), w.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked %s as difficult.\n", w.Forms.Transliteration)
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <word>",
		Short: "Remove a word from the difficult list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			w, err := findWord(e.lex, args[0])
			if err != nil {
				return err
			}
			if err := e.progress.UnmarkDifficult(cmd.Context(), w.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from the difficult list.\n", w.Forms.Transliteration)
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the difficult list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			if err := e.progress.ClearDifficult(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Difficult list cleared.")
			return nil
		},
	}

	c.AddCommand(list, add, remove, clearCmd)
	return c
}
