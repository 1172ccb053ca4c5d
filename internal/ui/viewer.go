package ui

import "qat/internal/domain"

// Viewer displays extracted test cases in an interactive TUI
type Viewer interface {
	View(source string, cases []domain.TestCase) error
}
