/*
Package scanner splits GEDCOM text into line tokens.

A GEDCOM file is line-oriented: every physical line carries a nesting level,
an optional cross-reference id, a tag and an optional value. The scanner
produces one gedgo.LineToken per line and skips blank lines. Lines that
cannot be tokenized are reported through the error handler and skipped, so a
single bad line never aborts a scan.

Continuation lines (CONT/CONC) are folded by the Merger, a thin wrapper
around any Tokenizer.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 The gedgo authors

*/
package scanner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/genealogit/gedgo"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gedgo.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gedgo.scanner")
}

// Tokenizer is a source of GEDCOM line tokens. After the last line it
// returns a token for which IsEOF() is true, and keeps returning it.
type Tokenizer interface {
	NextToken() gedgo.LineToken
	SetErrorHandler(func(gedgo.Diagnostic))
}

// Default handler for scanning problems.
func logDiag(d gedgo.Diagnostic) {
	tracer().Errorf("scanner: %s", d)
}

// LineScanner is the default Tokenizer implementation, walking the complete
// file contents line by line. Create one with New.
type LineScanner struct {
	lines []string
	pos   int
	Error func(gedgo.Diagnostic) // handler for malformed lines
}

var _ Tokenizer = (*LineScanner)(nil)

// New creates a scanner over the contents of a GEDCOM file. Both CRLF and LF
// line endings are accepted. A leading byte-order mark is ignored.
func New(input string) *LineScanner {
	input = strings.TrimPrefix(input, "\ufeff")
	return &LineScanner{
		lines: strings.Split(input, "\n"),
		Error: logDiag,
	}
}

// SetErrorHandler sets the handler invoked for every malformed line.
func (s *LineScanner) SetErrorHandler(h func(gedgo.Diagnostic)) {
	if h == nil {
		s.Error = logDiag
		return
	}
	s.Error = h
}

// NextToken returns the token for the next non-blank line. Malformed lines
// are reported and skipped.
func (s *LineScanner) NextToken() gedgo.LineToken {
	for s.pos < len(s.lines) {
		raw := s.lines[s.pos]
		s.pos++
		if strings.TrimSpace(raw) == "" {
			continue // blank lines are legal padding, not an error
		}
		tok, err := Tokenize(raw, s.pos)
		if err != nil {
			s.Error(gedgo.Diag(gedgo.MalformedLine, s.pos, "%v", err))
			continue
		}
		return tok
	}
	return gedgo.EOFToken(len(s.lines))
}

// Tokenize splits one physical line (without its line terminator) into a
// line token. The grammar is
//
//    LEVEL [XREF] TAG [VALUE]
//
// where LEVEL is a non-negative integer, XREF is delimited by '@…@' and may
// appear only directly after the level, and VALUE is the verbatim remainder
// of the line. Pointer-looking substrings inside VALUE are not re-tokenized.
//
// Tokenize fails when the level does not parse as a non-negative integer or
// when the tag field is missing.
func Tokenize(raw string, lineno int) (gedgo.LineToken, error) {
	line := strings.TrimSuffix(raw, "\r")
	line = strings.TrimPrefix(line, "\ufeff")
	line = strings.TrimSpace(line)
	tok := gedgo.LineToken{Line: lineno}
	//
	head, rest := cutField(line)
	level, err := strconv.Atoi(head)
	if err != nil || level < 0 {
		return tok, fmt.Errorf("unparsable level number %q", head)
	}
	tok.Level = level
	head, rest = cutTag(rest)
	if head == "" {
		return tok, fmt.Errorf("tag field is missing")
	}
	if len(head) >= 2 && head[0] == '@' && head[len(head)-1] == '@' {
		tok.XRef = head
		head, rest = cutTag(strings.TrimLeft(rest, " \t"))
		if head == "" {
			return tok, fmt.Errorf("tag field is missing after xref id %s", tok.XRef)
		}
	}
	tok.Tag = head
	tok.Value = rest
	tracer().Debugf("line %d: %s", lineno, tok)
	return tok, nil
}

// cutField splits off the first space-delimited field, trimming the run of
// separating whitespace. Used for the level field, where sloppy producers
// pad with extra blanks.
func cutField(s string) (string, string) {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeft(s[i:], " \t")
}

// cutTag splits off the tag field, consuming exactly one delimiter so the
// value keeps any further leading whitespace. CONC merges depend on values
// staying verbatim.
func cutTag(s string) (string, string) {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}
