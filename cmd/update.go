package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/sabdam/internal/logging"
	"github.com/abhisek/sabdam/internal/selfupdate"
)

func newUpdateCmd() *cobra.Command {
	var (
		checkOnly bool
		target    string
	)
	c := &cobra.Command{
		Use:   "update",
		Short: "Update sabdam to the latest version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			checker := selfupdate.NewChecker(
				selfupdate.WithTimeout(2*time.Minute),
				selfupdate.WithLogger(log),
			)

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			out := cmd.OutOrStdout()
			if checkOnly {
				res, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
				if err != nil {
					return err
				}
				if res.UpdateAvailable {
					fmt.Fprintf(out, "Update available: %s → %s\n%s\n", res.CurrentVersion, res.LatestVersion, res.ReleaseURL)
				} else {
					fmt.Fprintf(out, "Already running the latest version (%s).\n", res.LatestVersion)
				}
				return nil
			}

			if target != "" && !strings.HasPrefix(target, "v") {
				target = "v" + target
			}
			tag, err := checker.Install(ctx, selfupdate.InstallInput{
				Current: version,
				Target:  target,
			}, func(s selfupdate.Step) {
				fmt.Fprintln(out, s.Message)
			})
			if err == nil {
				fmt.Fprintf(out, "Updated to %s.\n", tag)
				return nil
			}

			if errors.Is(err, selfupdate.ErrDevBuild) {
				fmt.Fprintln(out, "Cannot update a development build. Install a release build first.")
				return nil
			}
			if errors.Is(err, selfupdate.ErrAlreadyLatest) {
				fmt.Fprintln(out, "Already running the latest version.")
				return nil
			}
			if os.IsPermission(err) {
				return fmt.Errorf("%w\n\nTry running: sudo sabdam update", err)
			}

			return err
		},
	}
	c.Flags().BoolVar(&checkOnly, "check", false, "Only report whether an update is available")
	c.Flags().StringVar(&target, "to", "", "Install this release tag instead of the latest")
	return c
}
