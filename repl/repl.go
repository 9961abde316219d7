// Copyright 2023 The Tempora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package repl provides a read/eval/print loop for interactive time
// scale arithmetic.
//
// It supports readline-style command editing and interrupts through
// Control-C. Each input line is one expression: an instant timestamp,
// a duration, or an arithmetic combination of them, optionally
// converted into another time scale. See the "help" command for the
// full syntax.
package repl // import "go.tempora.net/repl"

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
)

// REPL executes a read, eval, print loop over the session.
func REPL(s *Session) {
	rl, err := readline.New("> ")
	if err != nil {
		PrintError(err)
		return
	}
	defer rl.Close()
	for {
		if err := rep(rl, s); err != nil {
			if err == readline.ErrInterrupt {
				fmt.Println(err)
				continue
			}
			break
		}
	}
	fmt.Println()
}

// rep reads, evaluates, and prints one expression.
//
// It returns an error (possibly readline.ErrInterrupt) only if
// readline failed. Evaluation errors are printed.
func rep(rl *readline.Instance, s *Session) error {
	line, err := rl.Readline()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return err
	}

	out, err := s.Eval(line)
	if err != nil {
		PrintError(err)
		return nil
	}
	if out != "" {
		fmt.Println(out)
	}
	return nil
}

// PrintError prints the error to stderr.
func PrintError(err error) {
	fmt.Fprintln(os.Stderr, err)
}
