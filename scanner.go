// Package scanner provides a stateful, codepoint-aware pattern scanner for strings.
//
// A Scanner walks forward through a string one match at a time: every matching
// operation is anchored at (or searches after) a single cursor, and the most
// recent match stays queryable until the next attempt. All positions and
// lengths in the public API are codepoint offsets, never byte offsets.
package scanner

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/coregx/coregex"
)

// A Pattern is the matching capability a Scanner consumes. It must return
// byte-offset pairs for the leftmost match of the pattern in s and for every
// capture group (group 0 is the whole match, unparticipating groups are -1),
// or nil when there is no match.
//
// Both *coregex.Regex and the standard library's *regexp.Regexp satisfy it.
type Pattern interface {
	FindStringSubmatchIndex(s string) []int
}

// subexpNamer is satisfied by pattern engines that expose capture-group names.
type subexpNamer interface {
	SubexpNames() []string
}

// anyChar matches exactly one codepoint, including line feeds.
var anyChar = coregex.MustCompile(`(?s).`)

// A Scanner holds a text buffer, a cursor into it, a one-slot undo position
// and the record of the most recent match.
//
// A Scanner is not safe for concurrent use; callers scanning from multiple
// goroutines need independent instances or external synchronization.
type Scanner struct {
	text    string
	pos     int // cursor, in codepoints
	bytePos int // cursor, in bytes; always in sync with pos
	charLen int // codepoint length of text

	// match holds absolute byte-offset pairs for each capture group of the
	// last successful match, or nil when the last attempt failed. matchPat is
	// the pattern that produced it, kept for named-group lookup.
	match    []int
	matchPat Pattern

	// Cursor saved before the most recent advancing match. One slot only;
	// Unscan is not a stack.
	prevPos     int
	prevBytePos int

	unscanOK bool
	bound    bool
}

// New creates a Scanner over text with the cursor at the first codepoint.
func New(text string) *Scanner {
	s := &Scanner{}
	s.SetText(text)
	return s
}

// scan is the single matching primitive behind all eight matching operations.
// It searches p against the suffix of the text starting at the cursor. When
// anchored, a match that does not begin exactly at the cursor counts as no
// match. On success the match record is stored; if advance is set the cursor
// is saved to the undo slot and then moved to the end of the match.
//
// Every call, including a failing one, overwrites the previous match record.
// At end of input the result is always no match, even for patterns that could
// match empty.
func (s *Scanner) scan(p Pattern, advance, anchored bool) bool {
	if p == nil {
		panic(ErrNilPattern)
	}

	if s.pos >= s.charLen {
		s.clearMatch()
		return false
	}

	loc := p.FindStringSubmatchIndex(s.text[s.bytePos:])
	if loc == nil || (anchored && loc[0] != 0) {
		s.clearMatch()
		return false
	}

	// Re-base the group offsets from the searched suffix to the full text.
	m := make([]int, len(loc))
	for i, off := range loc {
		if off < 0 {
			m[i] = -1
		} else {
			m[i] = s.bytePos + off
		}
	}
	s.match = m
	s.matchPat = p
	s.unscanOK = true

	if advance {
		s.prevPos, s.prevBytePos = s.pos, s.bytePos
		s.pos += utf8.RuneCountInString(s.text[s.bytePos:m[1]])
		s.bytePos = m[1]
	}
	return true
}

func (s *Scanner) clearMatch() {
	s.match = nil
	s.matchPat = nil
	s.unscanOK = false
}

// Scan attempts to match p exactly at the cursor. On success the cursor moves
// past the match and the matched text is returned.
func (s *Scanner) Scan(p Pattern) (string, bool) {
	if !s.scan(p, true, true) {
		return "", false
	}
	return s.text[s.match[0]:s.match[1]], true
}

// ScanUntil searches for p at or after the cursor. On success the cursor
// moves past the match and everything from the old cursor through the end of
// the match is returned.
func (s *Scanner) ScanUntil(p Pattern) (string, bool) {
	if !s.scan(p, true, false) {
		return "", false
	}
	return s.text[s.prevBytePos:s.match[1]], true
}

// Check works like Scan but leaves the cursor where it is.
func (s *Scanner) Check(p Pattern) (string, bool) {
	if !s.scan(p, false, true) {
		return "", false
	}
	return s.text[s.match[0]:s.match[1]], true
}

// CheckUntil works like ScanUntil but leaves the cursor where it is.
func (s *Scanner) CheckUntil(p Pattern) (string, bool) {
	if !s.scan(p, false, false) {
		return "", false
	}
	return s.text[s.bytePos:s.match[1]], true
}

// Match attempts to match p exactly at the cursor without moving it; on
// success it reports the length of the match in codepoints.
func (s *Scanner) Match(p Pattern) (int, bool) {
	if !s.scan(p, false, true) {
		return 0, false
	}
	return utf8.RuneCountInString(s.text[s.bytePos:s.match[1]]), true
}

// Exist searches for p at or after the cursor without moving it; on success
// it reports the distance in codepoints from the cursor to the end of the
// match.
func (s *Scanner) Exist(p Pattern) (int, bool) {
	if !s.scan(p, false, false) {
		return 0, false
	}
	return utf8.RuneCountInString(s.text[s.bytePos:s.match[1]]), true
}

// Skip attempts to match p exactly at the cursor and moves past it on
// success, reporting how many codepoints were consumed.
func (s *Scanner) Skip(p Pattern) (int, bool) {
	if !s.scan(p, true, true) {
		return 0, false
	}
	return s.pos - s.prevPos, true
}

// SkipUntil searches for p at or after the cursor and moves past the match on
// success, reporting how many codepoints were consumed.
func (s *Scanner) SkipUntil(p Pattern) (int, bool) {
	if !s.scan(p, true, false) {
		return 0, false
	}
	return s.pos - s.prevPos, true
}

// NextChar consumes exactly one codepoint and returns it. It goes through the
// same match bookkeeping as Scan, so Matched and Unscan see it like any other
// match. At end of input it reports no match.
func (s *Scanner) NextChar() (string, bool) {
	return s.Scan(anyChar)
}

// HasMatch reports whether the most recent matching attempt succeeded.
func (s *Scanner) HasMatch() bool {
	return s.match != nil
}

// Matched returns the whole text of the last match.
func (s *Scanner) Matched() (string, bool) {
	if s.match == nil {
		return "", false
	}
	return s.text[s.match[0]:s.match[1]], true
}

// MatchedLen returns the length of the last match in codepoints.
func (s *Scanner) MatchedLen() (int, bool) {
	if s.match == nil {
		return 0, false
	}
	return utf8.RuneCountInString(s.text[s.match[0]:s.match[1]]), true
}

// Group returns the text of capture group n of the last match. Group 0 is the
// whole match. Any n outside the captured groups, or a group that did not
// participate in the match, reports absent rather than an error.
func (s *Scanner) Group(n int) (string, bool) {
	if s.match == nil || n < 0 || 2*n+1 >= len(s.match) {
		return "", false
	}
	start, end := s.match[2*n], s.match[2*n+1]
	if start < 0 {
		return "", false
	}
	return s.text[start:end], true
}

// GroupCount returns the number of capture groups of the last match,
// including group 0.
func (s *Scanner) GroupCount() (int, bool) {
	if s.match == nil {
		return 0, false
	}
	return len(s.match) / 2, true
}

// Captures returns the text of capture groups 1 and up of the last match, in
// order. Groups that did not participate are empty strings.
func (s *Scanner) Captures() ([]string, bool) {
	if s.match == nil {
		return nil, false
	}
	caps := make([]string, 0, len(s.match)/2-1)
	for n := 1; n < len(s.match)/2; n++ {
		start, end := s.match[2*n], s.match[2*n+1]
		if start < 0 {
			caps = append(caps, "")
		} else {
			caps = append(caps, s.text[start:end])
		}
	}
	return caps, true
}

// NamedGroup returns the text of the named capture group of the last match.
// It reports absent when there is no match, when the pattern engine does not
// expose group names, or when no group has the given name.
func (s *Scanner) NamedGroup(name string) (string, bool) {
	if s.match == nil || name == "" {
		return "", false
	}
	namer, ok := s.matchPat.(subexpNamer)
	if !ok {
		return "", false
	}
	for i, n := range namer.SubexpNames() {
		if n == name {
			return s.Group(i)
		}
	}
	return "", false
}

// PreMatch returns all text before the start of the last match.
func (s *Scanner) PreMatch() (string, bool) {
	if s.match == nil {
		return "", false
	}
	return s.text[:s.match[0]], true
}

// PostMatch returns all text after the end of the last match.
func (s *Scanner) PostMatch() (string, bool) {
	if s.match == nil {
		return "", false
	}
	return s.text[s.match[1]:], true
}

// Pos returns the cursor's codepoint offset.
func (s *Scanner) Pos() int {
	return s.pos
}

// Text returns the buffer being scanned.
func (s *Scanner) Text() string {
	return s.text
}

// IsEOF reports whether the cursor is at or past the end of the text.
func (s *Scanner) IsEOF() bool {
	return s.pos >= s.charLen
}

// IsBOL reports whether the cursor is at the beginning of a line: at offset 0
// or immediately after a line feed.
func (s *Scanner) IsBOL() bool {
	if s.bytePos == 0 {
		return true
	}
	return s.text[s.bytePos-1] == '\n'
}

// Peek returns the next n codepoints without consuming them and without
// touching the match record. At end of input it returns the empty string; a
// request past the end is clamped to the remaining text.
func (s *Scanner) Peek(n int) string {
	if n <= 0 || s.bytePos >= len(s.text) {
		return ""
	}
	end := s.bytePos
	for i := 0; i < n && end < len(s.text); i++ {
		_, w := utf8.DecodeRuneInString(s.text[end:])
		end += w
	}
	return s.text[s.bytePos:end]
}

// Rest returns the text from the cursor to the end; empty at end of input.
func (s *Scanner) Rest() string {
	return s.text[s.bytePos:]
}

// RestLen returns the number of codepoints from the cursor to the end.
func (s *Scanner) RestLen() int {
	return s.charLen - s.pos
}

// Reset moves the cursor back to the start and clears the match record.
// Unscan is not available again until a match succeeds.
func (s *Scanner) Reset() {
	s.pos, s.bytePos = 0, 0
	s.prevPos, s.prevBytePos = 0, 0
	s.clearMatch()
}

// Terminate moves the cursor to the end of the text and clears the match
// record. It neither writes nor consumes the undo slot: an Unscan after
// Terminate restores the cursor saved by the advancing match before it.
func (s *Scanner) Terminate() {
	s.pos, s.bytePos = s.charLen, len(s.text)
	s.match = nil
	s.matchPat = nil
}

// SetPos moves the cursor to the codepoint offset n. Negative n counts from
// the end of the text. If the resolved offset lies outside [0, length] the
// error wraps ErrOutOfRange and the scanner is unchanged. The match record is
// left untouched.
func (s *Scanner) SetPos(n int) error {
	if n < 0 {
		n += s.charLen
	}
	if n < 0 || n > s.charLen {
		return fmt.Errorf("%w: %d (text length %d)", ErrOutOfRange, n, s.charLen)
	}
	for s.pos < n {
		_, w := utf8.DecodeRuneInString(s.text[s.bytePos:])
		s.bytePos += w
		s.pos++
	}
	for s.pos > n {
		_, w := utf8.DecodeLastRuneInString(s.text[:s.bytePos])
		s.bytePos -= w
		s.pos--
	}
	return nil
}

// Append extends the buffer in place. Cursor and match record are untouched,
// so a scanner that had reached end of input has more to scan afterwards.
func (s *Scanner) Append(text string) {
	s.text += text
	s.charLen += utf8.RuneCountInString(text)
}

// SetText rebinds the scanner to a new buffer: cursor back to 0, match record
// cleared, undo unavailable.
func (s *Scanner) SetText(text string) {
	s.text = text
	s.charLen = utf8.RuneCountInString(text)
	s.pos, s.bytePos = 0, 0
	s.prevPos, s.prevBytePos = 0, 0
	s.clearMatch()
	s.bound = true
}

// Unscan restores the cursor to its value before the most recent advancing
// match and clears the match record. It requires a successful match since the
// last Reset, SetText or Unscan; otherwise it returns ErrNoPreviousMatch and
// leaves the scanner unchanged. Only one level is remembered.
func (s *Scanner) Unscan() error {
	if !s.unscanOK {
		return ErrNoPreviousMatch
	}
	s.pos, s.bytePos = s.prevPos, s.prevBytePos
	s.clearMatch()
	return nil
}

// contextLen caps the before/after windows rendered by String.
const contextLen = 5

// String renders the scanner state for debugging. The shape is a fixed
// contract shared with compatible ports of this scanner:
//
//	<ScannerCore uninitialized>
//	<ScannerCore fin>
//	<ScannerCore 10/21 "...ec 12" @ " 1975...">
//
// with positions in codepoints, the before-context omitted at offset 0 and
// both context windows capped at five codepoints.
func (s *Scanner) String() string {
	if !s.bound {
		return "<ScannerCore uninitialized>"
	}
	if s.pos >= s.charLen {
		return "<ScannerCore fin>"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<ScannerCore %d/%d", s.pos, s.charLen)
	if s.pos > 0 {
		before, truncated := tailChars(s.text[:s.bytePos], contextLen)
		b.WriteString(` "`)
		if truncated {
			b.WriteString("...")
		}
		b.WriteString(before)
		b.WriteString(`"`)
	}
	after, truncated := headChars(s.text[s.bytePos:], contextLen)
	b.WriteString(` @ "`)
	b.WriteString(after)
	if truncated {
		b.WriteString("...")
	}
	b.WriteString(`">`)
	return b.String()
}

// headChars returns the first n codepoints of str and whether anything was
// cut off.
func headChars(str string, n int) (string, bool) {
	end := 0
	for i := 0; i < n && end < len(str); i++ {
		_, w := utf8.DecodeRuneInString(str[end:])
		end += w
	}
	return str[:end], end < len(str)
}

// tailChars returns the last n codepoints of str and whether anything was
// cut off.
func tailChars(str string, n int) (string, bool) {
	start := len(str)
	for i := 0; i < n && start > 0; i++ {
		_, w := utf8.DecodeLastRuneInString(str[:start])
		start -= w
	}
	return str[start:], start > 0
}
