// Command scanner-repl is an interactive shell around the scanner package:
// bind a text, compile patterns on the fly and watch the cursor, the match
// record and the undo slot react to every operation.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	scanner "github.com/RISCfuture/unicode-scanner"
	"github.com/coregx/coregex"
	"github.com/peterh/liner"
)

const (
	prompt      = "scan> "
	historyFile = ".scanner_repl_history"
)

// REPL holds the state of the interactive session.
type REPL struct {
	s *scanner.Scanner
}

func main() {
	fmt.Println("scanner REPL - type 'help' for commands, 'quit' or Ctrl-D to exit")
	fmt.Println()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	repl := &REPL{s: scanner.New("")}
	for {
		input, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Println()
			return
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		ln.AppendHistory(input)

		if !repl.handleCommand(input) {
			return
		}
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}

// handleCommand dispatches one input line. It returns false to exit.
func (r *REPL) handleCommand(input string) bool {
	cmd, arg := input, ""
	if i := strings.IndexByte(input, ' '); i >= 0 {
		cmd, arg = input[:i], strings.TrimSpace(input[i+1:])
	}

	switch strings.ToLower(cmd) {
	case "help":
		printHelp()

	case "quit", "exit":
		return false

	case "text":
		r.s.SetText(arg)
		r.status()

	case "append":
		r.s.Append(arg)
		r.status()

	case "scan":
		r.matchString(arg, (*scanner.Scanner).Scan)
	case "scanuntil":
		r.matchString(arg, (*scanner.Scanner).ScanUntil)
	case "check":
		r.matchString(arg, (*scanner.Scanner).Check)
	case "checkuntil":
		r.matchString(arg, (*scanner.Scanner).CheckUntil)

	case "match":
		r.matchLen(arg, (*scanner.Scanner).Match)
	case "exist":
		r.matchLen(arg, (*scanner.Scanner).Exist)
	case "skip":
		r.matchLen(arg, (*scanner.Scanner).Skip)
	case "skipuntil":
		r.matchLen(arg, (*scanner.Scanner).SkipUntil)

	case "getch":
		if ch, ok := r.s.NextChar(); ok {
			fmt.Printf("=> %q\n", ch)
		} else {
			fmt.Println("=> no match")
		}
		r.status()

	case "peek":
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Println("usage: peek <n>")
			return true
		}
		fmt.Printf("=> %q\n", r.s.Peek(n))

	case "seek":
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Println("usage: seek <n>  (negative counts from the end)")
			return true
		}
		if err := r.s.SetPos(n); err != nil {
			fmt.Println("error:", err)
			return true
		}
		r.status()

	case "unscan":
		if err := r.s.Unscan(); err != nil {
			fmt.Println("error:", err)
			return true
		}
		r.status()

	case "reset":
		r.s.Reset()
		r.status()

	case "terminate":
		r.s.Terminate()
		r.status()

	case "pos":
		fmt.Println("=>", r.s.Pos())

	case "rest":
		fmt.Printf("=> %q (%d codepoints)\n", r.s.Rest(), r.s.RestLen())

	case "matched":
		if m, ok := r.s.Matched(); ok {
			fmt.Printf("=> %q\n", m)
		} else {
			fmt.Println("=> no match")
		}

	case "groups":
		n, ok := r.s.GroupCount()
		if !ok {
			fmt.Println("=> no match")
			return true
		}
		for i := 0; i < n; i++ {
			if g, ok := r.s.Group(i); ok {
				fmt.Printf("  %d: %q\n", i, g)
			} else {
				fmt.Printf("  %d: (absent)\n", i)
			}
		}

	case "pre":
		if p, ok := r.s.PreMatch(); ok {
			fmt.Printf("=> %q\n", p)
		} else {
			fmt.Println("=> no match")
		}

	case "post":
		if p, ok := r.s.PostMatch(); ok {
			fmt.Printf("=> %q\n", p)
		} else {
			fmt.Println("=> no match")
		}

	case "bol":
		fmt.Println("=>", r.s.IsBOL())

	case "eof":
		fmt.Println("=>", r.s.IsEOF())

	case "inspect":
		fmt.Println(r.s)

	default:
		fmt.Printf("unknown command %q; type 'help'\n", cmd)
	}
	return true
}

// matchString runs one of the text-returning matching operations with a
// pattern compiled from the argument.
func (r *REPL) matchString(arg string, op func(*scanner.Scanner, scanner.Pattern) (string, bool)) {
	re, err := coregex.Compile(arg)
	if err != nil {
		fmt.Println("bad pattern:", err)
		return
	}
	if got, ok := op(r.s, re); ok {
		fmt.Printf("=> %q\n", got)
	} else {
		fmt.Println("=> no match")
	}
	r.status()
}

// matchLen runs one of the length-returning matching operations.
func (r *REPL) matchLen(arg string, op func(*scanner.Scanner, scanner.Pattern) (int, bool)) {
	re, err := coregex.Compile(arg)
	if err != nil {
		fmt.Println("bad pattern:", err)
		return
	}
	if n, ok := op(r.s, re); ok {
		fmt.Printf("=> %d codepoints\n", n)
	} else {
		fmt.Println("=> no match")
	}
	r.status()
}

func (r *REPL) status() {
	fmt.Println("  ", r.s)
}

func printHelp() {
	fmt.Print(`Buffer:
  text <str>        bind a new text (cursor back to 0)
  append <str>      extend the current text in place

Matching (patterns use regular expression syntax):
  scan <re>         anchored match, consume, print matched text
  scanuntil <re>    search, consume through match end
  check <re>        anchored match without consuming
  checkuntil <re>   search without consuming
  match <re>        anchored match length
  exist <re>        distance to match end
  skip <re>         anchored match, consume, print length
  skipuntil <re>    search, consume, print length
  getch             consume one codepoint

Queries:
  matched           whole text of the last match
  groups            all capture groups of the last match
  pre / post        text before / after the last match
  peek <n>          next n codepoints without consuming
  rest              remaining text
  pos / bol / eof   cursor offset, start-of-line, end-of-input
  inspect           debug rendering of the scanner

Cursor:
  seek <n>          set cursor (negative counts from the end)
  unscan            undo the most recent advancing match
  reset             cursor to 0, match cleared
  terminate         cursor to end, match cleared

quit                exit
`)
}
