// Package organizer moves generated test artifacts into their folders.
package organizer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"qat/internal/config"
	"qat/internal/domain"
)

// ErrSourceMissing is returned when a file to move does not exist
var ErrSourceMissing = fmt.Errorf("source file missing: %w", fs.ErrNotExist)

// Progress is notified after every move
type Progress interface {
	Update(done, failed int)
	Finish()
}

// Plan is an ordered list of moves
type Plan []domain.Move

// Directories returns the destination directories of the plan, in first-use order
func (p Plan) Directories() []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, m := range p {
		dir := filepath.Dir(m.Destination)
		if dir == "." || seen[dir] {
			continue
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}
	return dirs
}

// DefaultPlan returns the moves for the configured artifacts: the test plan
// and its CSV go to the frontend folder, the coverage report to the backend one.
func DefaultPlan(cfg *config.Config) Plan {
	into := func(file, dir string) domain.Move {
		return domain.Move{Source: file, Destination: filepath.Join(dir, filepath.Base(file))}
	}
	return Plan{
		into(cfg.TestPlanMarkdown, cfg.FrontendDir),
		into(cfg.TestPlanCSV, cfg.FrontendDir),
		into(cfg.CoverageMarkdown, cfg.BackendDir),
	}
}

// Organizer performs a plan relative to a root directory
type Organizer struct {
	root     string
	logger   *zap.Logger
	progress Progress
}

// New creates a new Organizer rooted at root
func New(root string, logger *zap.Logger) *Organizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Organizer{root: root, logger: logger}
}

// SetProgress sets the progress reporter for the organizer
func (o *Organizer) SetProgress(progress Progress) {
	o.progress = progress
}

// Run creates the destination directories, then moves the files one by one
// in plan order. The first failing move stops the run; moves already done
// are kept.
func (o *Organizer) Run(ctx context.Context, plan Plan) ([]domain.MoveResult, error) {
	for _, dir := range plan.Directories() {
		if err := os.MkdirAll(o.path(dir), 0755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	if o.progress != nil {
		defer o.progress.Finish()
	}

	results := make([]domain.MoveResult, 0, len(plan))
	for i, move := range plan {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result := o.move(move)
		results = append(results, result)

		if o.progress != nil {
			failed := 0
			if result.Error != nil {
				failed = 1
			}
			o.progress.Update(i+1-failed, failed)
		}

		if result.Error != nil {
			return results, result.Error
		}
		o.logger.Debug("moved file",
			zap.String("from", move.Source),
			zap.String("to", move.Destination),
			zap.Bool("copied", result.Copied))
	}

	return results, nil
}

// DryRun reports what Run would do without touching the filesystem.
// Moves whose source is missing carry an ErrSourceMissing error.
func (o *Organizer) DryRun(plan Plan) []domain.MoveResult {
	results := make([]domain.MoveResult, 0, len(plan))
	for _, move := range plan {
		result := domain.MoveResult{Move: move}
		if _, err := os.Stat(o.path(move.Source)); err != nil {
			result.Error = o.sourceError(move, err)
		}
		results = append(results, result)
	}
	return results
}

func (o *Organizer) move(move domain.Move) domain.MoveResult {
	result := domain.MoveResult{Move: move}
	src, dst := o.path(move.Source), o.path(move.Destination)

	info, err := os.Stat(src)
	if err != nil {
		result.Error = o.sourceError(move, err)
		return result
	}

	copied, err := moveFile(src, dst, info)
	if err != nil {
		result.Error = fmt.Errorf("move %s to %s: %w", move.Source, move.Destination, err)
		return result
	}

	result.Moved = true
	result.Copied = copied
	return result
}

func (o *Organizer) sourceError(move domain.Move, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("move %s: %w", move.Source, ErrSourceMissing)
	}
	return fmt.Errorf("move %s: %w", move.Source, err)
}

func (o *Organizer) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(o.root, p)
}
