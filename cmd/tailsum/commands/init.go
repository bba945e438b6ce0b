package commands

import (
	"fmt"

	"github.com/dyluth/tailsum/internal/scaffold"
	"github.com/spf13/cobra"
)

func newInitCmd(g *globalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default tailsum.yml",
		Long: `Write a tailsum.yml with the default alphabet, hit group and search bounds.

The file is written to the --config path (tailsum.yml by default).

Use --force to overwrite an existing file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd)
			path := g.configPath

			if !force {
				if err := scaffold.CheckExisting(path); err != nil {
					return err
				}
			}

			if err := scaffold.Initialize(path, force); err != nil {
				return fmt.Errorf("initialization failed: %w", err)
			}

			p.Success("Created %s\n", path)
			p.Info("\nNext steps:\n")
			p.Step("  1. Edit the alphabet and bounds in %s\n", path)
			p.Step("  2. Solve a target: tailsum solve 49 --last hit\n")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")
	return cmd
}
