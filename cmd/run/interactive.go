package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/ffi-runtime/runtime"
	"github.com/wippyai/ffi-runtime/types"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	symStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err        error
	declareErr error
	lib        *runtime.Library
	filename   string
	result     string
	syms       []*runtime.Symbol
	inputs     []textinput.Model
	selected   int
	focusIdx   int
	state      modelState
}

type modelState int

const (
	stateSelectSym modelState = iota
	stateDeclare
	stateInputArgs
	stateShowResult
)

func newInteractiveModel(filename string) *interactiveModel {
	return &interactiveModel{
		filename: filename,
		state:    stateSelectSym,
	}
}

type openedMsg struct {
	err error
	lib *runtime.Library
}

type callResultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.openLibrary
}

func (m *interactiveModel) openLibrary() tea.Msg {
	lib, err := runtime.Open(m.filename)
	if err != nil {
		return openedMsg{err: err}
	}
	return openedMsg{lib: lib}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if m.lib != nil {
				m.lib.Close()
			}
			return m, tea.Quit

		case "q":
			if m.state == stateSelectSym || m.state == stateShowResult {
				if m.lib != nil {
					m.lib.Close()
				}
				return m, tea.Quit
			}

		case "d":
			if m.state == stateSelectSym {
				m.prepareDeclareInputs()
				m.state = stateDeclare
				return m, nil
			}

		case "up", "k":
			if m.state == stateSelectSym && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectSym && m.selected < len(m.syms)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectSym:
				if len(m.syms) == 0 {
					return m, nil
				}
				m.prepareArgInputs()
				if len(m.inputs) == 0 {
					return m, m.callSymbol
				}
				m.state = stateInputArgs

			case stateDeclare:
				if err := m.declare(); err != nil {
					m.declareErr = err
					return m, nil
				}
				m.declareErr = nil
				m.inputs = nil
				m.selected = len(m.syms) - 1
				m.state = stateSelectSym

			case stateInputArgs:
				return m, m.callSymbol

			case stateShowResult:
				m.state = stateSelectSym
				m.result = ""
				m.err = nil
			}

		case "tab":
			if (m.state == stateInputArgs || m.state == stateDeclare) && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateDeclare:
				m.state = stateSelectSym
				m.inputs = nil
				m.declareErr = nil
			case stateInputArgs:
				m.state = stateSelectSym
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectSym
				m.result = ""
				m.err = nil
			}
		}

	case openedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.lib = msg.lib

	case callResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs || m.state == stateDeclare {
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

func (m *interactiveModel) prepareDeclareInputs() {
	m.inputs = make([]textinput.Model, 3)
	prompts := []string{"symbol: ", "returns: ", "args: "}
	placeholders := []string{"pow", "double", "double, double"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = prompts[i]
		ti.Placeholder = placeholders[i]
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) prepareArgInputs() {
	sym := m.syms[m.selected]
	args := sym.Args()
	m.inputs = make([]textinput.Model, len(args))
	for i, tag := range args {
		ti := textinput.New()
		ti.Placeholder = tag.String()
		ti.Prompt = fmt.Sprintf("arg%d: ", i+1)
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) declare() error {
	name := strings.TrimSpace(m.inputs[0].Value())
	if name == "" {
		return fmt.Errorf("symbol name is empty")
	}
	retStr := strings.TrimSpace(m.inputs[1].Value())
	if retStr == "" {
		retStr = "void"
	}
	ret, ok := types.Resolve(retStr)
	if !ok {
		return fmt.Errorf("unknown return tag %q", retStr)
	}
	args, err := parseTags(m.inputs[2].Value())
	if err != nil {
		return err
	}

	sym, err := m.lib.Declare(ret, name, args...)
	if err != nil {
		return err
	}
	m.syms = append(m.syms, sym)
	return nil
}

func (m *interactiveModel) callSymbol() tea.Msg {
	sym := m.syms[m.selected]
	tags := sym.Args()

	args := make([]any, len(m.inputs))
	for i, input := range m.inputs {
		v, err := parseValue(tags[i], input.Value())
		if err != nil {
			return callResultMsg{err: fmt.Errorf("argument %d: %w", i+1, err)}
		}
		args[i] = v
	}

	result, err := sym.Invoke(args...)
	if err != nil {
		return callResultMsg{err: err}
	}
	return callResultMsg{result: formatValue(result)}
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.lib == nil {
		return "Opening library..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("FFI Runner"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectSym:
		if len(m.syms) == 0 {
			b.WriteString("No symbols declared yet.\n\n")
			b.WriteString(helpStyle.Render("d declare • q quit"))
			break
		}
		b.WriteString("Select a symbol to call:\n\n")
		for i, sym := range m.syms {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + m.formatSym(sym)))
			} else {
				b.WriteString(cursor + m.formatSym(sym))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter call • d declare • q quit"))

	case stateDeclare:
		b.WriteString("Declare a symbol:\n\n")
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		if m.declareErr != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.declareErr)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter declare • esc back"))

	case stateInputArgs:
		sym := m.syms[m.selected]
		b.WriteString(fmt.Sprintf("Calling %s\n\n", symStyle.Render(sym.Name())))
		tags := sym.Args()
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(typeStyle.Render(tags[i].String()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter call • esc back"))

	case stateShowResult:
		sym := m.syms[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", symStyle.Render(sym.Name())))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatSym(sym *runtime.Symbol) string {
	parts := make([]string, len(sym.Args()))
	for i, a := range sym.Args() {
		parts[i] = typeStyle.Render(a.String())
	}
	ret := ""
	if sym.Ret() != types.Void {
		ret = " -> " + typeStyle.Render(sym.Ret().String())
	}
	return symStyle.Render(sym.Name()) + "(" + strings.Join(parts, ", ") + ")" + ret
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newInteractiveModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
