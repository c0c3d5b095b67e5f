package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	sampleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	bytesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	result   string
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
}

type modelState int

const (
	stateSelectSample modelState = iota
	stateEditFields
	stateShowBytes
)

func newInteractiveModel() *interactiveModel {
	return &interactiveModel{state: stateSelectSample}
}

type encodedMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateEditFields {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectSample && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectSample && m.selected < len(samples)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectSample:
				m.prepareInputs()
				m.state = stateEditFields

			case stateEditFields:
				return m, m.encodeSample

			case stateShowBytes:
				m.state = stateSelectSample
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateEditFields && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateEditFields:
				m.state = stateSelectSample
				m.inputs = nil
			case stateShowBytes:
				m.state = stateSelectSample
				m.result = ""
				m.err = nil
			}
		}

	case encodedMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowBytes
	}

	if m.state == stateEditFields {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	s := samples[m.selected]
	m.inputs = make([]textinput.Model, len(s.fields))
	for i, f := range s.fields {
		ti := textinput.New()
		ti.Placeholder = f.typ
		ti.Prompt = f.name + ": "
		ti.Width = 40
		ti.SetValue(f.val)
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) encodeSample() tea.Msg {
	s := samples[m.selected]
	vals := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		vals[i] = input.Value()
	}

	data, spans, err := s.encode(vals)
	if err != nil {
		return encodedMsg{err: err}
	}

	back, err := s.decode(data)
	if err != nil {
		return encodedMsg{err: fmt.Errorf("round trip: %w", err)}
	}

	var b strings.Builder
	for i, sp := range spans {
		b.WriteString(fmt.Sprintf("  %6d  %s  %s = %s\n",
			sp.start,
			bytesStyle.Render(fmt.Sprintf("%-16s", hex.EncodeToString(data[sp.start:sp.end]))),
			s.fields[i].name, back[i]))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d bytes: %s", len(data), bytesStyle.Render(hex.EncodeToString(data))))
	return encodedMsg{result: b.String()}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("wire workbench"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectSample:
		b.WriteString("Select a sample shape:\n\n")
		for i, s := range samples {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + m.formatSample(s)))
			} else {
				b.WriteString(cursor + m.formatSample(s))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter edit • q quit"))

	case stateEditFields:
		s := samples[m.selected]
		b.WriteString(fmt.Sprintf("Editing %s\n\n", sampleStyle.Render(s.name)))
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(typeStyle.Render(s.fields[i].typ))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter encode • esc back"))

	case stateShowBytes:
		s := samples[m.selected]
		b.WriteString(fmt.Sprintf("Encoding of %s:\n\n", sampleStyle.Render(s.name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(m.result)
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatSample(s sample) string {
	var fields []string
	for _, f := range s.fields {
		fields = append(fields, f.name+": "+typeStyle.Render(f.typ))
	}
	return sampleStyle.Render(s.name) + " {" + strings.Join(fields, ", ") + "}"
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
