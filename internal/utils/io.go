package utils

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNoInput indicates stdin is a terminal or carried no data.
var ErrNoInput = errors.New("no data provided on stdin")

// ReadStdin reads all content from stdin.
// Returns ErrNoInput if stdin is a terminal (no piped data) or empty.
func ReadStdin() ([]byte, error) {
	return readPiped(os.Stdin)
}

func readPiped(f *os.File) ([]byte, error) {
	if IsTerminal(f) {
		return nil, fmt.Errorf("%w (hint: pipe a JSON document to this command)", ErrNoInput)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read from stdin: %w", err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: stdin is empty", ErrNoInput)
	}

	return data, nil
}
