package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/sabdam/internal/lexicon"
	"github.com/abhisek/sabdam/internal/logging"
	"github.com/abhisek/sabdam/internal/tips"
)

func newTipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tip <pair-id>",
		Short: "Ask the configured LLM for a pronunciation tip on a confusable pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			in, err := tips.FromPair(lexicon.Default(), args[0])
			if err != nil {
				return err
			}
			svc := newTipService(cmd.Context(), cfg, log)
			if !svc.Enabled() {
				return tips.ErrDisabled
			}

			tip, err := svc.Tip(cmd.Context(), in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s vs %s\n", in.Target.Forms.Transliteration, in.Other.Forms.Transliteration)
			fmt.Fprintf(out, "Reason:   %s\n\n", in.Reason)
			fmt.Fprintln(out, tip.Summary)
			if tip.MouthPosition != "" {
				fmt.Fprintf(out, "\nMouth:    %s\n", tip.MouthPosition)
			}
			if tip.Mnemonic != "" {
				fmt.Fprintf(out, "Remember: %s\n", tip.Mnemonic)
			}
			if tip.Model != "" {
				fmt.Fprintf(out, "\n(%s)\n", tip.Model)
			}
			return nil
		},
	}
}
