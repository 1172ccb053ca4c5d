package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"qat/internal/config"
	"qat/internal/organizer"
	"qat/internal/ui"
)

// OrganizeCommand handles the organize command
type OrganizeCommand struct {
	config *config.Config
}

// NewOrganizeCommand creates a new OrganizeCommand
func NewOrganizeCommand(cfg *config.Config) *OrganizeCommand {
	return &OrganizeCommand{config: cfg}
}

// Execute runs the command
func (oc *OrganizeCommand) Execute(cmd *cobra.Command, args []string) error {
	plan := organizer.DefaultPlan(oc.config)
	org := organizer.New(oc.config.ProjectPath, zap.L())
	formatter := ui.NewFormatter(cmd.OutOrStdout())

	if oc.config.Flags.DryRun {
		formatter.PrintMoves(org.DryRun(plan), true)
		return nil
	}

	org.SetProgress(ui.NewProgressBar(len(plan), "Moving files", cmd.ErrOrStderr()))

	results, err := org.Run(cmd.Context(), plan)
	formatter.PrintMoves(results, false)
	if err != nil {
		return fmt.Errorf("organize failed: %w", err)
	}

	if oc.config.Flags.Tree {
		fmt.Fprintln(cmd.OutOrStdout())
		if err := formatter.PrintLayout(oc.config.ProjectPath, results); err != nil {
			return err
		}
	}

	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Moved %d file(s)\n", len(results))
	return nil
}
