// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// InputReader reads one trimmed line of player input at a time.
type InputReader interface {
	// ReadLine blocks until a full line is available. Returns io.EOF
	// when the input source is exhausted or closed.
	ReadLine(prompt string) (string, error)
}

// =============================================================================
// StdinReader
// =============================================================================

// StdinReader is the plain line reader used for piped input and
// non-interactive terminals. It prints the prompt and reads until
// newline.
type StdinReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdinReader creates a reader over the given source and prompt
// sink. Nil arguments default to os.Stdin and os.Stdout.
func NewStdinReader(in io.Reader, out io.Writer) *StdinReader {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &StdinReader{in: bufio.NewReader(in), out: out}
}

// ReadLine prints the prompt and reads a single trimmed line.
func (r *StdinReader) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(r.out, prompt)
	}
	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

var _ InputReader = (*StdinReader)(nil)

// =============================================================================
// InteractiveReader
// =============================================================================

// InteractiveReader reads input through a bubbletea textinput with
// up/down history navigation and line editing. Construction falls back
// to StdinReader when stdin is not a TTY, so scripted runs behave.
type InteractiveReader struct {
	history *History
}

// NewInputReader returns the best reader for the environment: an
// InteractiveReader with the given history on a TTY, a StdinReader
// otherwise.
func NewInputReader(history *History) InputReader {
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return NewStdinReader(nil, nil)
	}
	if history == nil {
		history = NewHistory(DefaultHistorySize)
	}
	return &InteractiveReader{history: history}
}

// History exposes the backing buffer, mainly for tests and the stats
// view.
func (r *InteractiveReader) History() *History {
	return r.history
}

// ReadLine runs one textinput program to completion. Up/down navigate
// history, Ctrl+C clears the line, Ctrl+D on an empty line is io.EOF.
// Submitted non-empty lines are recorded in history.
func (r *InteractiveReader) ReadLine(prompt string) (string, error) {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = 80

	m := inputModel{
		textInput:    ti,
		history:      r.history.Entries(),
		historyIndex: -1,
	}

	p := tea.NewProgram(m, tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(inputModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type from bubbletea: %T", finalModel)
	}

	if result.cancelled && result.textInput.Value() == "" {
		return "", io.EOF
	}

	input := strings.TrimSpace(result.textInput.Value())
	r.history.Add(input)
	return input, nil
}

var _ InputReader = (*InteractiveReader)(nil)

// inputModel is the bubbletea model for one line of input.
type inputModel struct {
	textInput    textinput.Model
	history      []string
	historyIndex int
	currentInput string // stashed live input while navigating history
	done         bool
	cancelled    bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit

		case tea.KeyCtrlC:
			m.textInput.SetValue("")
			m.done = true
			return m, tea.Quit

		case tea.KeyCtrlD:
			m.cancelled = true
			m.textInput.SetValue("")
			m.done = true
			return m, tea.Quit

		case tea.KeyUp:
			if len(m.history) == 0 {
				return m, nil
			}
			if m.historyIndex == -1 {
				m.currentInput = m.textInput.Value()
				m.historyIndex = len(m.history) - 1
			} else if m.historyIndex > 0 {
				m.historyIndex--
			}
			m.textInput.SetValue(m.history[m.historyIndex])
			m.textInput.CursorEnd()
			return m, nil

		case tea.KeyDown:
			if m.historyIndex == -1 {
				return m, nil
			}
			if m.historyIndex < len(m.history)-1 {
				m.historyIndex++
				m.textInput.SetValue(m.history[m.historyIndex])
			} else {
				m.historyIndex = -1
				m.textInput.SetValue(m.currentInput)
			}
			m.textInput.CursorEnd()
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return ""
	}
	return m.textInput.View()
}

// =============================================================================
// ScriptedReader
// =============================================================================

// ScriptedReader returns predetermined inputs in order, then io.EOF.
// It exists for tests and demos that drive the game without a TTY.
type ScriptedReader struct {
	inputs []string
	index  int
}

// NewScriptedReader creates a reader over the given inputs.
func NewScriptedReader(inputs []string) *ScriptedReader {
	return &ScriptedReader{inputs: inputs}
}

// ReadLine returns the next scripted input.
func (r *ScriptedReader) ReadLine(prompt string) (string, error) {
	if r.index >= len(r.inputs) {
		return "", io.EOF
	}
	line := r.inputs[r.index]
	r.index++
	return strings.TrimSpace(line), nil
}

var _ InputReader = (*ScriptedReader)(nil)
