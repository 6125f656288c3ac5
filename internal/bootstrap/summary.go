package bootstrap

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/lejos-tools/classsweep/internal/config"
	"github.com/lejos-tools/classsweep/internal/sweep"
	"golang.org/x/term"
)

const (
	colorOK     = lipgloss.Color("2")
	colorFailed = lipgloss.Color("1")
)

// printSummary writes the one-line run summary to w according to mode.
func printSummary(w io.Writer, mode string, res sweep.Result, dryRun bool) {
	switch mode {
	case config.SummaryNever:
		return
	case config.SummaryAlways:
	default:
		if !isTerminal(w) {
			return
		}
	}

	verb := "deleted"
	if dryRun {
		verb = "would be deleted"
	}
	line := fmt.Sprintf("%d %s, %d failed", res.Deleted, verb, res.Failed)

	color := colorOK
	if res.Failed > 0 {
		color = colorFailed
	}
	style := lipgloss.NewRenderer(w).NewStyle().Bold(true).Foreground(color)
	fmt.Fprintln(w, style.Render(line))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec
}
