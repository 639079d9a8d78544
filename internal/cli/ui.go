package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/relgraph/pkg/errors"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success, value nodes
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - relationship nodes
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleValueNode = lipgloss.NewStyle().Foreground(colorGreen)
	styleRelNode   = lipgloss.NewStyle().Foreground(colorBlue)
	styleHeader    = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// out and errOut receive status lines. Tests swap them for buffers.
var (
	out    io.Writer = os.Stdout
	errOut io.Writer = os.Stderr
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(format string, args ...any) {
	fmt.Fprintln(out, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Fprintln(errOut, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(out, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

func printInfo(format string, args ...any) {
	fmt.Fprintln(out, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(out, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Fprintln(out, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) { fprintKeyValue(out, key, value) }

func fprintKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// printStats prints graph statistics on a single line.
func printStats(nodeCount, edgeCount int, cached bool) {
	parts := []string{
		fmt.Sprintf("%d nodes", nodeCount),
		fmt.Sprintf("%d edges", edgeCount),
	}

	status, statusStyle := iconFresh, styleComputed
	if cached {
		status, statusStyle = iconCached, styleCached
	}

	var b strings.Builder
	b.WriteString("  ")
	for _, part := range parts {
		b.WriteString(StyleDim.Render(part))
		b.WriteString(StyleDim.Render(" · "))
	}
	b.WriteString(statusStyle.Render(status))
	fmt.Fprintln(out, b.String())
}

// newTable returns a rounded table with the CLI header style.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// ReportError prints a command failure with its user-facing message.
func ReportError(err error) {
	printError("%s", errors.UserMessage(err))
	if code := errors.GetCode(err); code != "" {
		fmt.Fprintln(errOut, "  "+StyleDim.Render("code: "+string(code)))
	}
}
