// Package input contains readers that get lines of player input from a
// terminal or any other source of input.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// DefaultPrompt is the prompt shown on the input line in interactive mode.
const DefaultPrompt = "> "

// DirectReader implements command.Reader and reads lines from any generic
// input stream directly. It can be used with any io.Reader but does not
// sanitize the input of control and escape sequences.
//
// DirectReader should not be used directly; instead, create one with
// [NewDirectReader].
type DirectReader struct {
	r *bufio.Reader
}

// InteractiveReader implements command.Reader and reads lines from stdin using
// a go implementation of the GNU Readline library. This keeps input clear of
// all typing and editing escape sequences and enables the use of command
// history. This should in general only be used when directly connected to a
// TTY for input.
//
// InteractiveReader should not be used directly; instead, create one with
// [NewInteractiveReader].
type InteractiveReader struct {
	rl *readline.Instance
}

// NewDirectReader creates a new DirectReader with a buffered reader on the
// provided reader.
func NewDirectReader(r io.Reader) *DirectReader {
	return &DirectReader{
		r: bufio.NewReader(r),
	}
}

// NewInteractiveReader creates a new InteractiveReader and initializes
// readline. If historyFile is not empty, lines entered are saved to it and
// loaded from it on later runs. The returned InteractiveReader must have
// Close() called on it before disposal to properly teardown readline
// resources.
func NewInteractiveReader(historyFile string) (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          DefaultPrompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveReader{rl: rl}, nil
}

// Close cleans up resources associated with the DirectReader. The underlying
// io.Reader is not closed.
func (dr *DirectReader) Close() error {
	return nil
}

// Close cleans up readline resources and other resources associated with the
// InteractiveReader.
func (ir *InteractiveReader) Close() error {
	return ir.rl.Close()
}

// ReadCommand reads the next line that contains non-space characters, with
// leading and trailing space removed. Blank lines are skipped.
//
// If at end of input, the returned string will be empty and error will be
// io.EOF. If any other error occurs, the returned string will be empty and
// error will be that error.
func (dr *DirectReader) ReadCommand() (string, error) {
	return readNonBlank(func() (string, error) {
		return dr.r.ReadString('\n')
	})
}

// ReadCommand reads the next line that contains non-space characters from
// the terminal. Blank lines are skipped. An interrupt (Ctrl-C) is reported as
// io.EOF.
//
// If at end of input, the returned string will be empty and error will be
// io.EOF. If any other error occurs, the returned string will be empty and
// error will be that error.
func (ir *InteractiveReader) ReadCommand() (string, error) {
	return readNonBlank(func() (string, error) {
		line, err := ir.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			return "", io.EOF
		}
		return line, err
	})
}

// readNonBlank calls next until it gives a line with something other than
// whitespace in it or fails. A final line without a newline before EOF is
// still returned; the EOF is then given on the following call.
func readNonBlank(next func() (string, error)) (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = next()
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)

		if line == "" && err == io.EOF {
			return "", io.EOF
		}
	}

	return line, nil
}
