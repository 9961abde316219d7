// Copyright 2023 The Tempora Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The tempora command evaluates time scale expressions: it parses
// timestamps, converts them between astronomical time scales, and
// does instant and duration arithmetic. With no arguments, it starts
// a read-eval-print loop (REPL).
package main // import "go.tempora.net/cmd/tempora"

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"go.tempora.net/leapfile"
	"go.tempora.net/repl"
	"go.tempora.net/tempora"
)

// flags
var (
	execexpr  = flag.String("c", "", "evaluate single expression `expr`")
	precision = flag.Int("precision", -1, "fractional digits displayed, -1 for all")
	leapFile  = flag.String("leapfile", "", "load leap-second table from TOML `file`")
)

func main() {
	os.Exit(doMain())
}

func doMain() int {
	log.SetPrefix("tempora: ")
	log.SetFlags(0)
	flag.Parse()

	var provider tempora.LeapSecondProvider
	if *leapFile != "" {
		p, err := leapfile.Load(*leapFile)
		if err != nil {
			log.Print(err)
			return 1
		}
		provider = p
	}
	session := repl.NewSession(provider)
	session.Precision = *precision

	switch {
	case *execexpr != "":
		if flag.NArg() > 0 {
			log.Print("cannot combine -c with a script file")
			return 1
		}
		out, err := session.Eval(*execexpr)
		if err != nil {
			repl.PrintError(err)
			return 1
		}
		if out != "" {
			fmt.Println(out)
		}
	case flag.NArg() == 1:
		if err := runScript(session, flag.Arg(0)); err != nil {
			repl.PrintError(err)
			return 1
		}
	case flag.NArg() == 0:
		if !interactive() {
			// Piped input is a script.
			if err := runLines(session, os.Stdin, "<stdin>"); err != nil {
				repl.PrintError(err)
				return 1
			}
			break
		}
		fmt.Println("Welcome to tempora (go.tempora.net)")
		repl.REPL(session)
	default:
		log.Print("want at most one script file")
		return 1
	}
	return 0
}

// runScript evaluates a file of expressions, one per line. Blank
// lines and lines starting with '#' are skipped.
func runScript(session *repl.Session, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return runLines(session, f, path)
}

func runLines(session *repl.Session, r io.Reader, name string) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		out, err := session.Eval(text)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", name, line, err)
		}
		if out != "" {
			fmt.Println(out)
		}
	}
	return scanner.Err()
}
