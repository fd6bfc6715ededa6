package wizard

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/predator-rgb/internal/ui"
)

// TextInputReader asks each question with a one-line Bubble Tea program.
type TextInputReader struct {
	in  io.Reader
	out io.Writer
}

// NewTextInputReader creates a terminal line reader.
func NewTextInputReader(in io.Reader, out io.Writer) *TextInputReader {
	return &TextInputReader{in: in, out: out}
}

// ReadLine implements LineReader
func (r *TextInputReader) ReadLine(prompt, def string) (string, error) {
	model := newInputModel(prompt, def)

	p := tea.NewProgram(model, tea.WithInput(r.in), tea.WithOutput(r.out))
	final, err := p.Run()
	if err != nil {
		return "", err
	}

	m := final.(inputModel)
	if m.aborted {
		return "", ErrAborted
	}

	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		return def, nil
	}
	return value, nil
}

// inputModel is a single question with a text field.
type inputModel struct {
	prompt  string
	input   textinput.Model
	done    bool
	aborted bool
}

func newInputModel(prompt, def string) inputModel {
	input := textinput.New()
	input.Placeholder = def
	input.Prompt = "> "
	input.PromptStyle = ui.PromptDefaultStyle
	input.CharLimit = 64
	input.Width = 40
	input.Focus()

	return inputModel{prompt: prompt, input: input}
}

// Init implements tea.Model
func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m inputModel) View() string {
	if m.done || m.aborted {
		// Leave the answered question on screen
		answer := m.input.Value()
		if answer == "" {
			answer = m.input.Placeholder
		}
		return ui.PromptStyle.Render(m.prompt) + " " + answer + "\n"
	}
	return ui.PromptStyle.Render(m.prompt) + "\n" + m.input.View() + "\n"
}
