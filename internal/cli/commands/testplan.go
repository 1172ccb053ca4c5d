package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"qat/internal/config"
	"qat/internal/domain"
	"qat/internal/testplan"
	"qat/internal/ui"
)

// TestPlanCommand handles the testplan command
type TestPlanCommand struct {
	config    *config.Config
	extractor *testplan.Extractor
	writer    *testplan.CSVWriter
}

// NewTestPlanCommand creates a new TestPlanCommand
func NewTestPlanCommand(cfg *config.Config, extractor *testplan.Extractor, writer *testplan.CSVWriter) *TestPlanCommand {
	return &TestPlanCommand{
		config:    cfg,
		extractor: extractor,
		writer:    writer,
	}
}

// Execute runs the command
func (tc *TestPlanCommand) Execute(cmd *cobra.Command, args []string) error {
	input := tc.config.GetTestPlanInput()
	output := tc.config.GetTestPlanOutput()

	cases, err := extract(tc.extractor, input, tc.config.Flags.Strict)
	if err != nil {
		return err
	}

	if err := tc.writer.WriteFile(output, cases); err != nil {
		return fmt.Errorf("failed to save test cases: %w", err)
	}
	zap.L().Info("test cases written",
		zap.String("input", input),
		zap.String("output", output),
		zap.Int("cases", len(cases)))

	out := cmd.OutOrStdout()
	if len(cases) == 0 {
		color.New(color.FgYellow).Fprintf(out, "No test cases found in %s\n", input)
		return nil
	}
	if tc.config.Flags.List {
		ui.NewFormatter(out).PrintTestCases(cases)
		fmt.Fprintln(out)
	}
	color.New(color.FgGreen).Fprintf(out, "✓ Extracted %d test case(s) to %s\n", len(cases), output)
	return nil
}

// ViewCommand handles the testplan view command
type ViewCommand struct {
	config    *config.Config
	extractor *testplan.Extractor
	viewer    ui.Viewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(cfg *config.Config, extractor *testplan.Extractor, viewer ui.Viewer) *ViewCommand {
	return &ViewCommand{
		config:    cfg,
		extractor: extractor,
		viewer:    viewer,
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	input := vc.config.GetTestPlanInput()

	cases, err := extract(vc.extractor, input, vc.config.Flags.Strict)
	if err != nil {
		return err
	}

	return vc.viewer.View(input, cases)
}

func extract(extractor *testplan.Extractor, input string, strict bool) ([]domain.TestCase, error) {
	if strict {
		return extractor.ExtractFileStrict(input)
	}
	return extractor.ExtractFile(input)
}
