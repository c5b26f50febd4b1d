// Package cli is the console transport: menus, bounded prompts, input
// validation and table rendering. It never touches files or computes
// domain values itself; everything flows through the domain services.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads interactive input. Out-of-range or non-numeric input
// re-prompts indefinitely. Once the input stream ends, every numeric prompt
// yields its lower bound, which is the cancel or exit choice in every menu,
// so the program backs out cleanly instead of spinning.
type Prompter struct {
	raw io.Reader
	in  *bufio.Reader
	out io.Writer
	eof bool
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{raw: in, in: bufio.NewReader(in), out: out}
}

func (p *Prompter) Line(prompt string) string {
	if p.eof {
		return ""
	}
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		p.eof = true
	}
	return strings.TrimSpace(line)
}

// ValidatedLine re-prompts until validate accepts the input.
func (p *Prompter) ValidatedLine(prompt string, validate func(string) error) string {
	for {
		raw := p.Line(prompt)
		if p.eof && raw == "" {
			return ""
		}
		if err := validate(raw); err != nil {
			fmt.Fprintf(p.out, "Error: %v\n", err)
			continue
		}
		return raw
	}
}

// Int re-prompts until the input is a whole number within [min, max].
func (p *Prompter) Int(prompt string, min, max int) int {
	for {
		raw := p.Line(prompt)
		if p.eof && raw == "" {
			return min
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a whole number.")
			continue
		}
		if value < min || value > max {
			fmt.Fprintf(p.out, "The number must be between %d and %d.\n", min, max)
			continue
		}
		return value
	}
}

// Float re-prompts until the input is a number within [min, max].
func (p *Prompter) Float(prompt string, min, max float64) float64 {
	for {
		raw := p.Line(prompt)
		if p.eof && raw == "" {
			return min
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a number.")
			continue
		}
		if value < min || value > max {
			fmt.Fprintf(p.out, "The number must be between %g and %g.\n", min, max)
			continue
		}
		return value
	}
}
