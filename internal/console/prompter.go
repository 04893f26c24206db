// Package console implements the interactive sandwich shop screens.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// maxLineLength caps a single answer; longer lines are discarded and the
// prompt repeats.
const maxLineLength = 4096

var errLineTooLong = errors.New("input line too long")

type inputLine struct {
	text string
	err  error
}

// Prompter reads answers line by line and writes styled screen output.
// Reads are cancelled by the context passed to each prompt.
type Prompter struct {
	in  io.Reader
	out io.Writer

	lines     chan inputLine
	done      chan struct{}
	once      sync.Once
	closeOnce sync.Once

	titleStyle   lipgloss.Style
	headingStyle lipgloss.Style
	noticeStyle  lipgloss.Style
	errorStyle   lipgloss.Style
}

// NewPrompter creates a prompter. Styling is dropped automatically when out
// is not a terminal.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	r := lipgloss.NewRenderer(out)

	return &Prompter{
		in:           in,
		out:          out,
		done:         make(chan struct{}),
		titleStyle:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")),
		headingStyle: r.NewStyle().Bold(true),
		noticeStyle:  r.NewStyle().Foreground(lipgloss.Color("#FFC107")),
		errorStyle:   r.NewStyle().Foreground(lipgloss.Color("#e53935")),
	}
}

// Close stops the background reader. Pending input is discarded.
func (p *Prompter) Close() {
	p.closeOnce.Do(func() { close(p.done) })
}

func (p *Prompter) startReader() {
	p.lines = make(chan inputLine)

	go func() {
		defer close(p.lines)

		reader := bufio.NewReader(p.in)
		for {
			text, err := scanLine(reader)
			if !p.send(inputLine{text: text, err: err}) {
				return
			}
			if err != nil && !errors.Is(err, errLineTooLong) {
				return
			}
		}
	}()
}

func (p *Prompter) send(line inputLine) bool {
	select {
	case p.lines <- line:
		return true
	case <-p.done:
		return false
	}
}

// scanLine reads one line without its line ending. A line over maxLineLength
// is consumed in full and reported as errLineTooLong.
func scanLine(r *bufio.Reader) (string, error) {
	var b strings.Builder
	tooLong := false

	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if b.Len() > 0 || tooLong {
				break
			}
			return "", err
		}

		if tooLong || b.Len()+len(chunk) > maxLineLength {
			tooLong = true
		} else {
			b.Write(chunk)
		}

		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", errLineTooLong
	}
	return b.String(), nil
}

func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.once.Do(p.startReader)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return line.text, line.err
	}
}

// String prints label and returns the trimmed answer.
func (p *Prompter) String(ctx context.Context, label string) (string, error) {
	for {
		fmt.Fprint(p.out, label)

		text, err := p.readLine(ctx)
		if errors.Is(err, errLineTooLong) {
			p.Error("That answer is too long. Please try again.")
			continue
		}
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(text), nil
	}
}

// Int prints label until the answer is a whole number.
func (p *Prompter) Int(ctx context.Context, label string) (int, error) {
	for {
		text, err := p.String(ctx, label)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(text)
		if err == nil {
			return n, nil
		}
		p.Error("Please enter a number.")
	}
}

// Confirm prints label and reports whether the answer was yes.
func (p *Prompter) Confirm(ctx context.Context, label string) (bool, error) {
	text, err := p.String(ctx, label)
	if err != nil {
		return false, err
	}
	return isYes(text), nil
}

func isYes(answer string) bool {
	return strings.EqualFold(answer, "yes") || strings.EqualFold(answer, "y")
}

// Title prints a screen title preceded by a blank line.
func (p *Prompter) Title(text string) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.titleStyle.Render(text))
}

// Heading prints a section heading preceded by a blank line.
func (p *Prompter) Heading(text string) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.headingStyle.Render(text))
}

// Notice prints an informational message.
func (p *Prompter) Notice(format string, args ...any) {
	fmt.Fprintln(p.out, p.noticeStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints a message about rejected input.
func (p *Prompter) Error(text string) {
	fmt.Fprintln(p.out, p.errorStyle.Render(text))
}

// Printf writes unstyled formatted output.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes an unstyled line.
func (p *Prompter) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}
