package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// LineReader reads lines from a stream that may block, such as a terminal
// or a pipe, while respecting context cancellation.
type LineReader struct {
	reader *bufio.Reader
	mu     sync.Mutex
	line   atomic.Int64
}

// NewLineReader creates a line reader over r.
func NewLineReader(r io.Reader) *LineReader {
	if r == nil {
		panic("reader cannot be nil")
	}
	return &LineReader{reader: bufio.NewReader(r)}
}

// ReadLine returns the next line without its line ending or surrounding
// whitespace. It returns io.EOF once the stream is exhausted; a final line
// without a trailing newline is still returned.
func (r *LineReader) ReadLine(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ErrInputCancelled
	}

	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	go func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		value, err := r.reader.ReadString('\n')
		resultCh <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ErrInputCancelled
	case res := <-resultCh:
		if res.err != nil && (!errors.Is(res.err, io.EOF) || res.value == "") {
			return "", res.err
		}
		r.line.Add(1)
		return strings.TrimSpace(res.value), nil
	}
}

// Line returns the number of lines read so far.
func (r *LineReader) Line() int {
	return int(r.line.Load())
}
