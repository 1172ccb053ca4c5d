package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// AllCommand runs the whole workflow: coverage report, test plan CSV, then
// moving both into their folders
type AllCommand struct {
	steps []step
}

type step struct {
	name string
	run  func(cmd *cobra.Command, args []string) error
}

// NewAllCommand creates a new AllCommand
func NewAllCommand(coverage *CoverageCommand, testPlan *TestPlanCommand, organize *OrganizeCommand) *AllCommand {
	return &AllCommand{
		steps: []step{
			{name: "coverage", run: coverage.Execute},
			{name: "testplan", run: testPlan.Execute},
			{name: "organize", run: organize.Execute},
		},
	}
}

// Execute runs the command
func (ac *AllCommand) Execute(cmd *cobra.Command, args []string) error {
	for i, s := range ac.steps {
		color.New(color.FgCyan).Fprintf(cmd.OutOrStdout(), "[%d/%d] %s\n", i+1, len(ac.steps), s.name)
		if err := s.run(cmd, args); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}
