package command

import (
	"bufio"
	"fmt"
)

// Reader is a type that can be used for getting command input.
type Reader interface {
	// ReadCommand reads a single line of user input. It will block until one
	// is ready. If there is an error or input is at end (EOF), the returned
	// string will be empty, otherwise it will always be non-empty.
	//
	// When error is io.EOF, string will always be empty. If EOF was encountered
	// on a call but some input was received, the input will be returned and
	// error will be nil, and the next call to ReadCommand will return "",
	// io.EOF.
	ReadCommand() (string, error)

	// Close performs any operations required to clean the resources created by
	// the Reader. It should be called at least once when the Reader is no
	// longer needed.
	Close() error
}

// Get shows the prompt on ostream and then reads a single line from cmdStream
// and splits it into words with Tokenize. If prompt is empty, nothing is shown
// before reading.
//
// Note that this function does not check if the words contain a command, only
// that a line was read.
func Get(cmdStream Reader, ostream *bufio.Writer, prompt string) ([]string, error) {
	if prompt != "" {
		if _, err := ostream.WriteString(prompt + "\n"); err != nil {
			return nil, fmt.Errorf("could not write output: %w", err)
		}
		if err := ostream.Flush(); err != nil {
			return nil, fmt.Errorf("could not flush output: %w", err)
		}
	}

	input, err := cmdStream.ReadCommand()
	if err != nil {
		return nil, fmt.Errorf("could not get input: %w", err)
	}

	return Tokenize(input), nil
}
