package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/matzehuels/licensetracker/pkg/license"
)

// barWidth is the number of cells in the progress bar.
const barWidth = 30

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// =============================================================================
// ProgressModel - Batch progress bar
// =============================================================================

// outcomeMsg reports one finished package.
type outcomeMsg license.Outcome

// finishedMsg is sent once the batch returned.
type finishedMsg struct{}

// ProgressModel is the bubbletea model rendering batch progress.
type ProgressModel struct {
	Total    int
	Done     int
	Skipped  int
	Last     string
	Finished bool
}

// NewProgressModel creates a progress model for total packages.
func NewProgressModel(total int) ProgressModel {
	return ProgressModel{Total: total}
}

func (m ProgressModel) Init() tea.Cmd {
	return nil
}

func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case outcomeMsg:
		m.Done++
		o := license.Outcome(msg)
		if o.IsSkipped() {
			m.Skipped++
		}
		m.Last = o.Ref.Name
	case finishedMsg:
		m.Finished = true
		return m, tea.Quit
	}
	return m, nil
}

func (m ProgressModel) View() string {
	if m.Finished {
		return ""
	}

	filled := 0
	if m.Total > 0 {
		filled = m.Done * barWidth / m.Total
	}
	bar := styleBarDone.Render(strings.Repeat("█", filled)) + StyleDim.Render(strings.Repeat("░", barWidth-filled))

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Processing"))
	b.WriteString(" ")
	b.WriteString(bar)
	b.WriteString(" ")
	b.WriteString(StyleValue.Render(fmt.Sprintf("%d/%d", m.Done, m.Total)))
	if m.Skipped > 0 {
		b.WriteString(StyleWarning.Render(fmt.Sprintf("  %d skipped", m.Skipped)))
	}
	if m.Last != "" {
		b.WriteString(StyleDim.Render("  " + m.Last))
	}
	return b.String()
}

// runWithProgressBar runs work while rendering a progress bar to w. work
// receives a callback to report every finished package.
func runWithProgressBar(ctx context.Context, w io.Writer, total int, work func(onDone func(license.Outcome)) error) error {
	p := tea.NewProgram(NewProgressModel(total),
		tea.WithContext(ctx),
		tea.WithOutput(w),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	errc := make(chan error, 1)
	go func() {
		errc <- work(func(o license.Outcome) { p.Send(outcomeMsg(o)) })
		p.Send(finishedMsg{})
	}()

	_, uiErr := p.Run()
	if err := <-errc; err != nil {
		return err
	}
	if uiErr != nil && ctx.Err() == nil {
		return fmt.Errorf("progress display: %w", uiErr)
	}
	return ctx.Err()
}
