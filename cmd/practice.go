package cmd

import (
	"github.com/spf13/cobra"
)

func newPracticeCmd() *cobra.Command {
	var o tuiOptions
	c := &cobra.Command{
		Use:   "practice",
		Short: "Start a practice session right away",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o.practice = true
			return runTUI(cmd, o)
		},
	}
	c.Flags().BoolVar(&o.difficult, "difficult", false, "Only practise pairs involving difficult words")
	c.Flags().IntVar(&o.count, "count", 0, "Number of questions (default from config)")
	c.Flags().StringVar(&o.script, "script", "", "Display script: transliterated or native")
	return c
}
