// Package repl implements the interactive read-eval-print loop: a
// persistent session that reads Mew fragments line by line, echoing the
// value of the last expression and any side effects, while keeping
// declarations alive across fragments.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/mewisme/mew/errs"
	"github.com/mewisme/mew/interp"
	"github.com/mewisme/mew/objects"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration of an interactive session.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

func New(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Mew "+r.Version)
	cyanColor.Fprintf(w, "%s\n", "Type a fragment and press enter. Type .exit to quit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the loop until EOF, '.exit', or a readline error. A
// fragment spanning several lines (an open block, for instance) is
// detected by the parser reporting an unexpected-EOF error, in which
// case the REPL keeps reading lines and retrying instead of reporting
// the error.
func (r *Repl) Start(w io.Writer) {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(w, "could not start the line editor: %v\n", err)
		return
	}
	defer rl.Close()

	session := interp.NewSession(w)

	var pending strings.Builder
	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("Good bye!\n"))
			return
		}
		trimmed := strings.TrimSpace(line)
		if pending.Len() == 0 {
			if trimmed == "" {
				continue
			}
			if trimmed == ".exit" {
				w.Write([]byte("Good bye!\n"))
				return
			}
		}
		rl.SaveHistory(line)

		if pending.Len() > 0 {
			pending.WriteString("\n")
		}
		pending.WriteString(line)

		result, evalErr := session.EvalFragment(pending.String())
		if evalErr != nil {
			if isUnexpectedEOF(evalErr) {
				continue // wait for more lines
			}
			pending.Reset()
			printError(w, evalErr, "")
			continue
		}
		pending.Reset()
		printResult(w, result)
	}
}

func isUnexpectedEOF(err error) bool {
	e, ok := err.(*errs.Error)
	return ok && e.Kind == errs.ParseError && strings.Contains(e.Message, "got EOF")
}

func printError(w io.Writer, err error, source string) {
	if e, ok := err.(*errs.Error); ok {
		redColor.Fprintf(w, "%s\n", e.Format(source))
		return
	}
	redColor.Fprintf(w, "%v\n", err)
}

func printResult(w io.Writer, v objects.Value) {
	if v == nil {
		return
	}
	if _, ok := v.(*objects.Undefined); ok {
		return
	}
	yellowColor.Fprintf(w, "%s\n", v.Display())
}
