package wizard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/muurk/predator-rgb/internal/ui"
)

// ErrAborted is returned when the user cancels the wizard (Ctrl-C, Esc or EOF).
var ErrAborted = errors.New("interactive setup aborted")

// LineReader asks one question and returns the answer. An empty answer is
// replaced by def.
type LineReader interface {
	ReadLine(prompt, def string) (string, error)
}

// NewLineReader returns a Bubble Tea text input when in is a terminal and a
// plain line reader otherwise.
func NewLineReader(in *os.File, out io.Writer) LineReader {
	if term.IsTerminal(int(in.Fd())) {
		return NewTextInputReader(in, out)
	}
	return NewBufioReader(in, out)
}

// BufioReader reads answers line by line. Used for pipes and tests.
type BufioReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewBufioReader creates a line reader over in, writing prompts to out.
func NewBufioReader(in io.Reader, out io.Writer) *BufioReader {
	return &BufioReader{in: bufio.NewReader(in), out: out}
}

// ReadLine implements LineReader
func (r *BufioReader) ReadLine(prompt, def string) (string, error) {
	fmt.Fprint(r.out, renderPrompt(prompt, def))

	line, err := r.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		fmt.Fprintln(r.out)
		if errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

func renderPrompt(prompt, def string) string {
	return ui.PromptStyle.Render(prompt) + " " + ui.PromptDefaultStyle.Render("["+def+"]") + ": "
}
