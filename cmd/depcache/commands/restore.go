package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/depcache/internal/core/domain"
)

func (c *CLI) newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Restore every configured cache from the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := workingDir()
			if err != nil {
				return err
			}

			results, err := c.app.Restore(cmd.Context(), cwd, c.options(false))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				_, _ = fmt.Fprintf(out, "%s\t%s\t%s\n", r.Descriptor.Name, domain.RestoreStatus(r), r.MatchedKey)
			}
			return nil
		},
	}
}
