package export

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/licensetracker/pkg/license"
)

// DefaultWidth is the console table width.
const DefaultWidth = 150

var (
	consoleBorder     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	consoleKeyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("36")).Padding(0, 1)
	consoleValueStyle = lipgloss.NewStyle().Padding(0, 1)
)

// ConsoleExporter prints one key/value table per dependency.
type ConsoleExporter struct {
	Sink  *Recorder // Destination (default: stdout)
	Width int       // Table width (default [DefaultWidth])
}

// Export prints every dependency as a table.
func (e *ConsoleExporter) Export(deps []*license.Dependency, extraRows []string) {
	sink := e.Sink
	if sink == nil {
		sink = NewRecorder(os.Stdout)
	}
	if len(deps) == 0 {
		sink.Println(msgNothingToExport)
		return
	}
	for _, dep := range deps {
		sink.Println(e.Render(dep, extraRows))
	}
}

// Render returns the table for dep without printing it.
func (e *ConsoleExporter) Render(dep *license.Dependency, extraRows []string) string {
	width := e.Width
	if width <= 0 {
		width = DefaultWidth
	}

	rows := Rows(dep, extraRows)
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{r.Key, r.Value}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(consoleBorder).
		BorderRow(true).
		Width(width).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return consoleKeyStyle.Width(keyWidth)
			}
			return consoleValueStyle
		})
	return t.Render()
}
