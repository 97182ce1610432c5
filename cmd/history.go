package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/sabdam/internal/session"
)

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List completed practice sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			records := e.progress.GetSessionHistory(cmd.Context())
			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No sessions yet.")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for i := len(records) - 1; i >= 0; i-- {
				r := records[i]
				rows = append(rows, []string{
					r.Date.Local().Format("2006-01-02 15:04"),
					fmt.Sprintf("%d/%d", r.Score, r.TotalQuestions),
					strconv.Itoa(r.Percent()) + "%",
					session.ResultMessage(r.Percent()),
				})
			}
			fmt.Fprintln(out, renderTable([]string{"Date", "Score", "Percent", "Message"}, rows))
			return nil
		},
	}
}
