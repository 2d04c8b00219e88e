package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes a short colored header with the agent name and version.
func PrintBanner(w io.Writer, agent, version string) {
	p := termenv.ColorProfile()
	title := termenv.String(agent).Foreground(p.Color("#a78bfa")).Bold()
	ver := termenv.String(version).Foreground(p.Color("#818cf8")).Faint()
	fmt.Fprintf(w, "\n%s %s\n\n", title, ver)
}

// AgentPrefix styles the agent name shown before every dialog line.
func AgentPrefix(agent string) string {
	p := termenv.ColorProfile()
	return termenv.String(agent + ":").Foreground(p.Color("#c084fc")).Bold().String()
}
