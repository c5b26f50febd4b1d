package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Password reads a line without echo when the input is a terminal, and falls
// back to a plain line read otherwise (pipes, tests).
func (p *Prompter) Password(prompt string) string {
	fmt.Fprint(p.out, prompt)
	if file, ok := p.raw.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		raw, err := term.ReadPassword(int(file.Fd()))
		fmt.Fprintln(p.out)
		if err == nil {
			return strings.TrimSpace(string(raw))
		}
	}
	return p.Line("")
}
