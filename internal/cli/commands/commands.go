package commands

import (
	"fmt"

	"qat/internal/cli"
	"qat/internal/config"
	"qat/internal/logging"
	"qat/internal/report"
	"qat/internal/storage"
	"qat/internal/testplan"
	"qat/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Commands holds all CLI commands
type Commands struct {
	Coverage *CoverageCommand
	TestPlan *TestPlanCommand
	View     *ViewCommand
	Organize *OrganizeCommand
	All      *AllCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	markdownWriter := report.NewMarkdownWriter()
	jsonStorage := storage.NewJSONStorage(cfg)
	extractor := testplan.NewExtractor()
	csvWriter := testplan.NewCSVWriter()
	viewer := ui.NewTestCaseViewer()

	coverageCmd := NewCoverageCommand(cfg, markdownWriter, jsonStorage)
	testPlanCmd := NewTestPlanCommand(cfg, extractor, csvWriter)
	organizeCmd := NewOrganizeCommand(cfg)

	return &Commands{
		Coverage: coverageCmd,
		TestPlan: testPlanCmd,
		View:     NewViewCommand(cfg, extractor, viewer),
		Organize: organizeCmd,
		All:      NewAllCommand(coverageCmd, testPlanCmd, organizeCmd),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Global flags and setup shared by every command
	rootCmd.PersistentFlags().StringVarP(&flags.ProjectPath, "project", "C", config.DefaultProjectPath, "Project root every default path is relative to")
	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "TOML config file (default: qat.toml in the project root, if present)")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")

	var undoGlobals func()
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded

		logger, err := logging.New(cfg.Flags.Verbose, cfg.LogLevel)
		if err != nil {
			return err
		}
		undoGlobals = zap.ReplaceGlobals(logger)
		logger.Debug("configuration loaded", zap.String("project", cfg.ProjectPath))
		return nil
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
		if undoGlobals != nil {
			undoGlobals()
		}
	}

	// Coverage command
	coverageCmd := &cobra.Command{
		Use:     "coverage",
		Aliases: []string{"report"},
		Short:   "Generate a Markdown coverage report",
		Long:    fmt.Sprintf("Summarize a coverage-final.json report (default %s) into a Markdown table (default %s)", config.DefaultCoverageJSON, config.DefaultCoverageMarkdown),
		Args:    cobra.NoArgs,
		RunE:    c.Coverage.Execute,
	}
	coverageCmd.Flags().StringVarP(&flags.Input, "input", "i", "", "Coverage JSON to read")
	coverageCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Markdown file to write")
	coverageCmd.Flags().BoolVar(&flags.Totals, "totals", false, "Append an \"All files\" totals row to the table")
	coverageCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Only report files whose name matches the pattern (supports wildcards, e.g. '*Payment*')")
	coverageCmd.Flags().BoolVar(&flags.JSON, "json", false, "Also save a JSON summary (default storage/coverage-summary.json)")
	coverageCmd.Flags().BoolVar(&flags.Preview, "preview", false, "Render the generated report in the terminal")
	coverageCmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Do not print the coverage summary")
	rootCmd.AddCommand(coverageCmd)

	// Test plan command
	testPlanCmd := &cobra.Command{
		Use:   "testplan",
		Short: "Extract test cases from the manual test plan to CSV",
		Long:  fmt.Sprintf("Scrape \"### Test Case\" sections from a Markdown test plan (default %s) into a CSV file (default %s)", config.DefaultTestPlanMarkdown, config.DefaultTestPlanCSV),
		Args:  cobra.NoArgs,
		RunE:  c.TestPlan.Execute,
	}
	testPlanCmd.Flags().StringVarP(&flags.Input, "input", "i", "", "Markdown test plan to read")
	testPlanCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "CSV file to write")
	testPlanCmd.Flags().BoolVarP(&flags.List, "list", "l", false, "Print the extracted test cases")
	testPlanCmd.Flags().BoolVar(&flags.Strict, "strict", false, "Fail when the plan contains no test case")
	rootCmd.AddCommand(testPlanCmd)

	// Test plan viewer
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "Browse the test plan interactively",
		Long:  "Display the extracted test cases in an interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  c.View.Execute,
	}
	viewCmd.Flags().StringVarP(&flags.Input, "input", "i", "", "Markdown test plan to read")
	viewCmd.Flags().BoolVar(&flags.Strict, "strict", false, "Fail when the plan contains no test case")
	testPlanCmd.AddCommand(viewCmd)

	// Organize command
	organizeCmd := &cobra.Command{
		Use:   "organize",
		Short: "Move the generated test artifacts into their folders",
		Long:  fmt.Sprintf("Move the test plan and its CSV into %s/ and the coverage report into %s/", config.DefaultFrontendDir, config.DefaultBackendDir),
		Args:  cobra.NoArgs,
		RunE:  c.Organize.Execute,
	}
	organizeCmd.Flags().BoolVarP(&flags.DryRun, "dry-run", "n", false, "Show the moves without performing them")
	organizeCmd.Flags().BoolVarP(&flags.Tree, "tree", "t", false, "Print the resulting layout as a tree")
	rootCmd.AddCommand(organizeCmd)

	// All command
	allCmd := &cobra.Command{
		Use:   "all",
		Short: "Run coverage, testplan and organize in order",
		Long:  "Generate the coverage report and the test plan CSV, then move them into their folders",
		Args:  cobra.NoArgs,
		RunE:  c.All.Execute,
	}
	rootCmd.AddCommand(allCmd)
}
