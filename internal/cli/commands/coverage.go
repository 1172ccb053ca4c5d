package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"qat/internal/config"
	"qat/internal/coverage"
	"qat/internal/domain"
	"qat/internal/report"
	"qat/internal/storage"
	"qat/internal/ui"
)

// previewWidth is the word wrap of the terminal preview
const previewWidth = 100

// CoverageCommand handles the coverage command
type CoverageCommand struct {
	config  *config.Config
	writer  *report.MarkdownWriter
	storage storage.Storage
}

// NewCoverageCommand creates a new CoverageCommand
func NewCoverageCommand(cfg *config.Config, writer *report.MarkdownWriter, st storage.Storage) *CoverageCommand {
	return &CoverageCommand{
		config:  cfg,
		writer:  writer,
		storage: st,
	}
}

// Execute runs the command
func (cc *CoverageCommand) Execute(cmd *cobra.Command, args []string) error {
	logger := zap.L()
	input := cc.config.GetCoverageInput()
	output := cc.config.GetCoverageOutput()

	files, err := coverage.NewLoader(logger).Load(input)
	if err != nil {
		return err
	}

	if pattern := cc.config.Flags.Filter; pattern != "" {
		files = coverage.Filter(files, pattern)
		logger.Debug("filtered coverage files", zap.String("pattern", pattern), zap.Int("kept", len(files)))
	}

	summaries := coverage.SummarizeAll(files)

	cc.writer.IncludeTotals = cc.config.Flags.Totals
	cc.writer.HTMLReport = cc.config.CoverageHTML
	if err := cc.writer.WriteFile(output, summaries); err != nil {
		return fmt.Errorf("failed to save coverage report: %w", err)
	}
	logger.Info("coverage report written",
		zap.String("input", input),
		zap.String("output", output),
		zap.Int("files", len(summaries)))

	var previous *domain.CoverageOutput
	if cc.config.Flags.JSON {
		previous, err = cc.storage.Load()
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				logger.Warn("previous coverage summary ignored", zap.Error(err))
			}
			previous = nil
		}

		if err := cc.storage.Save(input, summaries); err != nil {
			return fmt.Errorf("failed to save coverage summary: %w", err)
		}
		logger.Info("coverage summary written", zap.String("output", cc.config.GetSummaryPath()))
	}

	if cc.config.Flags.Preview {
		markdown, err := cc.writer.Render(summaries)
		if err != nil {
			return err
		}
		rendered, err := report.Preview(markdown, previewWidth)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	}

	if !cc.config.Flags.Quiet {
		formatter := ui.NewFormatter(cmd.OutOrStdout())
		formatter.PrintCoverageSummary(summaries, output)
		if previous != nil {
			formatter.PrintCoverageChange(previous.Meta, domain.NewFileEntry(coverage.Totals(summaries)))
		}
	}
	return nil
}
