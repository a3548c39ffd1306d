// Package console provides a line-oriented Prompter for terminals and pipes.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrClosed is returned by Ask after Close.
var ErrClosed = errors.New("prompter closed")

type line struct {
	text string
	err  error
}

// Prompter writes questions to out and reads one line per answer from in.
// Trailing "\r\n" or "\n" is stripped; other whitespace is kept.
//
// Lines are read by a background goroutine started on the first Ask, so a
// cancelled context returns promptly even while input is pending. Call
// Close when done so that goroutine stops once its pending read returns.
type Prompter struct {
	in  io.Reader
	out io.Writer

	start     sync.Once
	closeOnce sync.Once
	lines     chan line
	done      chan struct{}
}

// NewPrompter creates a Prompter over in and out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:    in,
		out:   out,
		lines: make(chan line),
		done:  make(chan struct{}),
	}
}

// Close stops the background reader. It does not close in, so a read
// already blocked on in finishes before the goroutine exits. Close is safe
// to call more than once.
func (p *Prompter) Close() error {
	p.closeOnce.Do(func() { close(p.done) })
	return nil
}

// Ask writes prompt and waits for the next line of input. Once input is
// exhausted it returns io.EOF.
func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	select {
	case <-p.done:
		return "", ErrClosed
	default:
	}

	if _, err := io.WriteString(p.out, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	p.start.Do(func() { go p.readLines() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-p.done:
		return "", ErrClosed
	case l, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// Notify writes message on its own line.
func (p *Prompter) Notify(_ context.Context, message string) error {
	_, err := fmt.Fprintln(p.out, message)
	return err
}

func (p *Prompter) readLines() {
	defer close(p.lines)

	r := bufio.NewReader(p.in)
	for {
		text, err := r.ReadString('\n')
		if err != nil {
			if err == io.EOF && text != "" {
				p.send(line{text: strings.TrimRight(text, "\r")})
			} else if err != io.EOF {
				p.send(line{err: err})
			}
			return
		}
		if !p.send(line{text: strings.TrimRight(strings.TrimSuffix(text, "\n"), "\r")}) {
			return
		}
	}
}

// send hands l to a waiting Ask and reports false once the prompter is closed.
func (p *Prompter) send(l line) bool {
	select {
	case p.lines <- l:
		return true
	case <-p.done:
		return false
	}
}
