// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

type styles struct {
	header lipgloss.Style
}

// newStyles styles headers only when out is a terminal, so piped output
// stays plain.
func newStyles(out io.Writer) styles {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return styles{header: lipgloss.NewStyle()}
	}
	return styles{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
	}
}
