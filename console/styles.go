// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	err  lipgloss.Style
	hint lipgloss.Style
}

// newStyles binds the styles to a renderer for w, so color is only emitted
// when w is a terminal that supports it.
func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		return styles{err: r.NewStyle(), hint: r.NewStyle()}
	}
	return styles{
		err:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		hint: r.NewStyle().Faint(true),
	}
}
