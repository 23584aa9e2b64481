package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	hintStyle = lipgloss.NewStyle().Faint(true)
)

// SetOutput redirects OK/Fail/Hint; nil keeps the current writer.
func SetOutput(out, errOut io.Writer) {
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

func Stdout() io.Writer { return stdout }

func OK(msg string)   { fmt.Fprintln(stdout, okStyle.Render("✔ "+msg)) }
func Fail(msg string) { fmt.Fprintln(stderr, failStyle.Render("✖ "+msg)) }
func Hint(msg string) { fmt.Fprintln(stderr, hintStyle.Render(msg)) }
