package handler

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter owns the console dialogue. Reader and writer are injected so
// workflows can be scripted in tests.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	eof bool
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// ReadLine prints the prompt and returns one trimmed line. Free text is not
// validated further.
func (p *Prompter) ReadLine(prompt string) string {
	p.Printf("%s", prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		p.eof = true
	}
	return strings.TrimSpace(line)
}

// ReadInt re-prompts until the operator supplies an integer. A closed input
// stream yields 0, which every workflow treats as abort.
func (p *Prompter) ReadInt(prompt string) int {
	for {
		line := p.ReadLine(prompt)
		value, err := strconv.Atoi(line)
		if err == nil {
			return value
		}
		if p.eof {
			return 0
		}
		p.Printf("Invalid number format. Try again.\n")
	}
}

// Confirm asks a yes/no question; only "t"/"T" counts as yes, anything else
// cancels, no retry.
func (p *Prompter) Confirm(prompt string) bool {
	answer := p.ReadLine(prompt)
	return answer == "t" || answer == "T"
}
