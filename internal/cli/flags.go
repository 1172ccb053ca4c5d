package cli

import "qat/internal/config"

// Flags holds command-line flags
type Flags struct {
	ProjectPath string
	ConfigFile  string
	Verbose     bool
	Input       string
	Output      string
	Totals      bool
	Filter      string
	JSON        bool
	Preview     bool
	Quiet       bool
	List        bool
	Strict      bool
	DryRun      bool
	Tree        bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ProjectPath: f.ProjectPath,
		ConfigFile:  f.ConfigFile,
		Verbose:     f.Verbose,
		Input:       f.Input,
		Output:      f.Output,
		Totals:      f.Totals,
		Filter:      f.Filter,
		JSON:        f.JSON,
		Preview:     f.Preview,
		Quiet:       f.Quiet,
		List:        f.List,
		Strict:      f.Strict,
		DryRun:      f.DryRun,
		Tree:        f.Tree,
	}
}
