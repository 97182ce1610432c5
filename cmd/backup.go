package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/sabdam/internal/progress"
)

func newExportCmd() *cobra.Command {
	var outPath string
	c := &cobra.Command{
		Use:   "export",
		Short: "Write the practice record as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			raw, err := progress.Encode(e.progress.Load(cmd.Context()))
			if err != nil {
				return fmt.Errorf("encode practice data: %w", err)
			}
			if outPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), raw)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(raw+"\n"), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported practice data to %s\n", outPath)
			return nil
		},
	}
	c.Flags().StringVarP(&outPath, "out", "o", "", "Write to file instead of stdout")
	return c
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the practice record with a previously exported one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			data, err := progress.Decode(string(raw))
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			unknown := 0
			for _, id := range data.DifficultWordIDs {
				if _, ok := e.lex.Word(id); !ok {
					unknown++
				}
			}
			if unknown > 0 {
				e.log.WithField("count", unknown).Warn("imported record references words not in the library")
			}

			if err := e.progress.Replace(cmd.Context(), data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s, %s, %s.\n",
				plural(len(data.SessionHistory), "session"),
				plural(len(data.DifficultWordIDs), "difficult word"),
				plural(len(data.WordProgress), "word counter"))
			return nil
		},
	}
}

var errResetNotConfirmed = errors.New("refusing to erase practice data without --yes")

func newResetCmd() *cobra.Command {
	var yes bool
	c := &cobra.Command{
		Use:   "reset",
		Short: "Erase all learner data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errResetNotConfirmed
			}
			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			if err := e.progress.Reset(cmd.Context()); err != nil {
				return err
			}
			e.log.Info("practice data reset")
			fmt.Fprintln(cmd.OutOrStdout(), "Practice data erased.")
			return nil
		},
	}
	c.Flags().BoolVar(&yes, "yes", false, "Confirm erasing all progress")
	return c
}
