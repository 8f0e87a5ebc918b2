package prompt

import (
	"bufio"
	"context"
	"errors"
	"io"
	"sync"
)

// LineReader yields one line of user input at a time.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

// ScannerReader reads lines from a stream such as stdin. Scanning happens
// on a background goroutine started by the first ReadLine, so a pending read
// can be abandoned when ctx is cancelled.
type ScannerReader struct {
	src   io.Reader
	once  sync.Once
	lines chan string
	chans *ChanReader
	// err is set before lines is closed.
	err error
}

// NewScannerReader wraps r in a line scanner.
func NewScannerReader(r io.Reader) *ScannerReader {
	lines := make(chan string)
	return &ScannerReader{src: r, lines: lines, chans: NewChanReader(lines)}
}

// ReadLine returns the next line without its terminator. It returns io.EOF
// once the stream is exhausted and ctx.Err() as soon as ctx is done, even
// while the underlying stream is still blocked.
func (r *ScannerReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r.once.Do(func() { go r.scan() })
	line, err := r.chans.ReadLine(ctx)
	if errors.Is(err, io.EOF) && r.err != nil {
		return "", r.err
	}
	return line, err
}

func (r *ScannerReader) scan() {
	scanner := bufio.NewScanner(r.src)
	for scanner.Scan() {
		r.lines <- scanner.Text()
	}
	r.err = scanner.Err()
	close(r.lines)
}

// ChanReader reads lines delivered on a channel, e.g. from a terminal UI.
type ChanReader struct {
	lines <-chan string
}

// NewChanReader reads from lines until it is closed.
func NewChanReader(lines <-chan string) *ChanReader {
	return &ChanReader{lines: lines}
}

// ReadLine blocks until a line arrives, the channel closes, or ctx is done.
func (r *ChanReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-r.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	}
}
