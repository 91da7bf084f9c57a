package booking

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrInputRead  = errors.New("input read failure")
	ErrEndOfInput = fmt.Errorf("%w: end of input", ErrInputRead)
)

type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInputRead, e.Err)
}

func (e *ReadError) Unwrap() []error {
	return []error{ErrInputRead, e.Err}
}

type LineReader struct {
	r *bufio.Reader
	// a "\r" ended the previous line, so a leading "\n" belongs to it
	skipLF bool
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadLine splits on "\n", "\r" or "\r\n".
func (l *LineReader) ReadLine() (string, error) {
	var sb strings.Builder
	for {
		b, err := l.r.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return "", &ReadError{Err: err}
			}
			if sb.Len() == 0 {
				return "", ErrEndOfInput
			}
			return sb.String(), nil
		}

		if l.skipLF {
			l.skipLF = false
			if b == '\n' {
				continue
			}
		}

		switch b {
		case '\n':
			return sb.String(), nil
		case '\r':
			l.skipLF = true
			return sb.String(), nil
		}
		sb.WriteByte(b)
	}
}
