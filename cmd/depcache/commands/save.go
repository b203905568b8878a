package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save every configured cache whose key is not stored yet",
		Long: "Save every configured cache whose key is not stored yet.\n" +
			"Only runs building the default branch populate caches unless --force is given.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := workingDir()
			if err != nil {
				return err
			}

			force, _ := cmd.Flags().GetBool("force")
			results, err := c.app.Save(cmd.Context(), cwd, c.options(force))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				_, _ = fmt.Fprintf(out, "%s\t%s\t%s\n", r.Descriptor.Name, r.Status, r.Descriptor.PrimaryKey)
			}
			return nil
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Save even when the run does not build the default branch")
	return cmd
}
