package scanner_test

import (
	"fmt"

	scanner "github.com/RISCfuture/unicode-scanner"
	"github.com/coregx/coregex"
)

// Example walks a sentence word by word.
func Example() {
	word := coregex.MustCompile(`\w+`)
	space := coregex.MustCompile(`\s+`)

	s := scanner.New("This is an example string")
	for !s.IsEOF() {
		if w, ok := s.Scan(word); ok {
			fmt.Println(w)
		}
		s.Skip(space)
	}
	// Output:
	// This
	// is
	// an
	// example
	// string
}

// ExampleScanner_Scan demonstrates capture groups and the pre/post views of
// the last match.
func ExampleScanner_Scan() {
	s := scanner.New("Fri Dec 12 1975 14:39")

	matched, _ := s.Scan(coregex.MustCompile(`(\w+) (\w+) (\d+) `))
	fmt.Printf("%q\n", matched)

	day, _ := s.Group(1)
	month, _ := s.Group(2)
	date, _ := s.Group(3)
	fmt.Println(day, month, date)

	rest, _ := s.PostMatch()
	fmt.Println(rest)
	// Output:
	// "Fri Dec 12 "
	// Fri Dec 12
	// 1975 14:39
}

// ExampleScanner_ScanUntil consumes everything up to and including the first
// occurrence of a pattern.
func ExampleScanner_ScanUntil() {
	s := scanner.New("Fri Dec 12 1975 14:39")

	got, _ := s.ScanUntil(coregex.MustCompile(`12`))
	fmt.Println(got)
	fmt.Println(s.Pos())
	// Output:
	// Fri Dec 12
	// 10
}

// ExampleScanner_Unscan rolls back the single most recent advancing match.
func ExampleScanner_Unscan() {
	s := scanner.New("test string")

	first, _ := s.Scan(coregex.MustCompile(`\w+`))
	fmt.Println(first)

	s.Unscan()
	second, _ := s.Scan(coregex.MustCompile(`..`))
	fmt.Println(second)
	// Output:
	// test
	// te
}

// ExampleScanner_NextChar consumes one codepoint at a time, never a partial
// encoding unit.
func ExampleScanner_NextChar() {
	s := scanner.New("日本語")
	for {
		ch, ok := s.NextChar()
		if !ok {
			break
		}
		fmt.Println(ch)
	}
	// Output:
	// 日
	// 本
	// 語
}

// ExampleScanner_String shows the debug rendering of the scanner state.
func ExampleScanner_String() {
	s := scanner.New("Fri Dec 12 1975 14:39")
	fmt.Println(s)

	s.ScanUntil(coregex.MustCompile(`12`))
	fmt.Println(s)

	s.Terminate()
	fmt.Println(s)
	// Output:
	// <ScannerCore 0/21 @ "Fri D...">
	// <ScannerCore 10/21 "...ec 12" @ " 1975...">
	// <ScannerCore fin>
}
