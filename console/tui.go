// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package console

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TUIInput is an InputProvider that reads each line through a bubbletea
// program with an editable text field. Enter submits; esc and ctrl+c
// return ErrUserQuit.
type TUIInput struct {
	in          io.Reader
	out         io.Writer
	placeholder string
	charLimit   int
}

// TUIOption configures a TUIInput.
type TUIOption func(*TUIInput)

// WithPlaceholder sets the faint text shown while the field is empty.
func WithPlaceholder(p string) TUIOption {
	return func(t *TUIInput) { t.placeholder = p }
}

// WithCharLimit caps the number of characters the field accepts.
// Zero means no limit.
func WithCharLimit(n int) TUIOption {
	return func(t *TUIInput) { t.charLimit = n }
}

// NewTUIInput returns a TUIInput reading keys from in and rendering to out.
func NewTUIInput(in io.Reader, out io.Writer, opts ...TUIOption) *TUIInput {
	t := &TUIInput{in: in, out: out}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// GetInput runs one line-editing session and returns the trimmed text.
func (t *TUIInput) GetInput(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p := tea.NewProgram(newLineModel(t.placeholder, t.charLimit),
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)

	final, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", err
	}

	return lineResult(final)
}

func lineResult(final tea.Model) (string, error) {
	m, ok := final.(lineModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if m.quit {
		return "", ErrUserQuit
	}
	return strings.TrimSpace(m.input.Value()), nil
}

// lineModel is a single text field that finishes on submit or quit.
type lineModel struct {
	input textinput.Model
	done  bool
	quit  bool
}

func newLineModel(placeholder string, charLimit int) lineModel {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = charLimit
	in.Focus()
	return lineModel{input: in}
}

func (m lineModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m lineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.submit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, keys.quit):
			m.quit = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m lineModel) View() string {
	if m.done || m.quit {
		return m.input.Value() + "\n"
	}
	return m.input.View()
}

// IsUserQuit reports whether err means the user abandoned the prompt.
func IsUserQuit(err error) bool {
	return errors.Is(err, ErrUserQuit)
}
