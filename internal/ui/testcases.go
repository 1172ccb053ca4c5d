package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"qat/internal/domain"
)

// TestCaseViewer browses extracted test cases in an interactive TUI
type TestCaseViewer struct{}

// NewTestCaseViewer creates a new TestCaseViewer
func NewTestCaseViewer() *TestCaseViewer {
	return &TestCaseViewer{}
}

// View displays the test cases of source: a list on the left, the selected
// case on the right
func (tv *TestCaseViewer) View(source string, cases []domain.TestCase) error {
	if len(cases) == 0 {
		color.Yellow("No test cases found in %s", source)
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i, tc := range cases {
		list.AddItem(listItemText(i, tc), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsContainer, 0, 2, false)

	withoutSteps := 0
	for _, tc := range cases {
		if !tc.HasSteps() {
			withoutSteps++
		}
	}

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" %s (%d test cases, %d without steps) | Use ↑↓ to navigate, → to view details, ← to go back, Ctrl+C to exit ",
			tview.Escape(source), len(cases), withoutSteps))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(cases) {
			detailsView.SetText(formatTestCase(cases[index], index+1))
			detailsView.ScrollToBeginning()
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC, tcell.KeyEsc:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

func listItemText(index int, tc domain.TestCase) string {
	title := firstLine(tc.Title)
	if title == "" {
		title = fmt.Sprintf("Test Case %d", index+1)
	}
	if !tc.HasSteps() {
		return fmt.Sprintf("[yellow]%d.[gray] %s[white]", index+1, tview.Escape(title))
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, tview.Escape(title))
}

// formatTestCase formats a test case for display using tview color tags
func formatTestCase(tc domain.TestCase, number int) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[cyan]Test Case %d:[white] %s\n\n", number, tview.Escape(tc.Title))

	builder.WriteString("[yellow]Steps:[white]\n")
	if tc.HasSteps() {
		for _, step := range strings.Split(tc.Steps, "; ") {
			fmt.Fprintf(&builder, "  %s\n", tview.Escape(step))
		}
	} else {
		builder.WriteString("  [gray](none)[white]\n")
	}
	builder.WriteString("\n")

	builder.WriteString("[yellow]Expected Result:[white]\n")
	for _, line := range strings.Split(tc.ExpectedResult, "; ") {
		fmt.Fprintf(&builder, "  %s\n", tview.Escape(line))
	}

	return builder.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
