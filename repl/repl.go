// Package repl implements the interactive read-eval-print loop.  It is a
// thin wrapper: one line of text in, one formatted value or error out, with
// multi-line buffering when the input is syntactically incomplete.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/clove-lang/clove/lisp"
	"github.com/clove-lang/clove/parser"
	"github.com/clove-lang/clove/parser/lexer"
)

// Run runs a read-eval-print loop against interp until the input ends.  The
// interpreter's global scope persists across entries, including entries that
// fail.
func Run(prompt string, interp *lisp.Interp) error {
	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	var buf []byte
	for {
		line, err := rl.ReadSlice()
		if err == readline.ErrInterrupt {
			buf = nil
			rl.SetPrompt(prompt)
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if len(buf) != 0 {
			buf = append(buf, '\n')
			line = append(buf, line...)
			buf = nil
			rl.SetPrompt(prompt)
		}
		if strings.TrimSpace(string(line)) == "" {
			continue
		}
		v, err := interp.RunNamed("<repl>", string(line))
		if err != nil {
			if Incomplete(err) {
				buf = append([]byte(nil), line...)
				rl.SetPrompt(contPrompt)
				continue
			}
			errln(err)
			continue
		}
		fmt.Println(v)
	}
}

// Incomplete returns true when err indicates input that could become valid
// given more lines: an unclosed string literal or an unterminated list or
// call form.
func Incomplete(err error) bool {
	var lerr *lexer.Error
	if errors.As(err, &lerr) {
		return lerr.Kind == lexer.UnclosedString
	}
	var perr *parser.Error
	if errors.As(err, &perr) {
		return perr.Kind == parser.UnexpectedEOF
	}
	return false
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
