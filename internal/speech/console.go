package speech

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// terminator ends a console recording, standing in for the stop button of
// a real microphone capture.
const terminator = "."

// Console implements both speech capabilities over a terminal: Speak
// prints the question and Transcribe collects typed lines until a lone
// terminator line or EOF.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsole creates a console speech device over the given streams.
func NewConsole(in io.Reader, out io.Writer) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return &Console{in: scanner, out: out}
}

// Speak prints the text to the output stream.
func (c *Console) Speak(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(c.out, "%s\n", text)
	return err
}

// Transcribe reads lines until the terminator or EOF and joins them into
// a single transcript string. An already-exhausted input stream yields
// io.EOF so callers can tell a silent answer from a gone capture device.
func (c *Console) Transcribe(ctx context.Context) (string, error) {
	var parts []string
	scanned := false
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return "", fmt.Errorf("reading answer: %w", err)
			}
			if !scanned {
				return "", io.EOF
			}
			break
		}
		scanned = true

		line := c.in.Text()
		if strings.TrimSpace(line) == terminator {
			break
		}
		parts = append(parts, strings.TrimSpace(line))
	}

	return strings.TrimSpace(strings.Join(parts, " ")), nil
}
