package gedgo

import (
	"fmt"
	"strings"
)

// --- Line tokens ------------------------------------------------------------

// A LineToken is the structured form of one GEDCOM line:
//
//    LEVEL [XREF] TAG [VALUE]
//
// An example would be the opening line of an individual record:
//
//    Level = 0
//    XRef  = "@I1@"     // cross-reference id declared by this record
//    Tag   = "INDI"
//    Value = ""
//
// After continuation folding (see package scanner), a token's Value carries
// the text of its CONT/CONC successors as well, so tokens are one-per-logical
// entry rather than one-per-physical-line.
type LineToken struct {
	Level int    // nesting depth, non-negative for real tokens
	XRef  string // optional cross-reference id, including the '@' delimiters
	Tag   string // uppercase tag, or a custom tag starting with '_'
	Value string // verbatim remainder of the line
	Line  int    // 1-based physical line number the token started on
}

// EOFToken returns the token signalling end of input. Scanners emit it once
// the input is exhausted; it carries the number of the last physical line.
func EOFToken(line int) LineToken {
	return LineToken{Level: -1, Line: line}
}

// IsEOF reports whether a token marks the end of the input stream.
func (t LineToken) IsEOF() bool {
	return t.Level < 0
}

// IsCustom reports whether a token carries a user-defined tag ("_UID" etc.).
func (t LineToken) IsCustom() bool {
	return strings.HasPrefix(t.Tag, "_")
}

// IsPointer reports whether a token's value is a cross-reference pointer,
// i.e. of the form "@…@".
func (t LineToken) IsPointer() bool {
	return len(t.Value) > 2 && t.Value[0] == '@' && t.Value[len(t.Value)-1] == '@'
}

func (t LineToken) String() string {
	if t.IsEOF() {
		return "<EOF>"
	}
	if t.XRef != "" {
		return fmt.Sprintf("<%d %s %s %q>", t.Level, t.XRef, t.Tag, t.Value)
	}
	return fmt.Sprintf("<%d %s %q>", t.Level, t.Tag, t.Value)
}

// --- Diagnostics ------------------------------------------------------------

// DiagKind classifies the problems a best-effort parse may run into.
// None of them aborts the parse.
type DiagKind int8

// Diagnostic kinds, covering the error taxonomy of the parser.
const (
	MalformedLine     DiagKind = iota // line could not be tokenized; line skipped
	LevelSkip                         // level jumped past parent+1; reattached to nearest ancestor
	UnsupportedTag                    // syntactically valid tag that is not modeled; kept in skip list
	DanglingReference                 // pointer id declared nowhere in the file
	DuplicateXref                     // second declaration of an xref id
)

func (k DiagKind) String() string {
	switch k {
	case MalformedLine:
		return "malformed line"
	case LevelSkip:
		return "level skip"
	case UnsupportedTag:
		return "unsupported tag"
	case DanglingReference:
		return "dangling reference"
	case DuplicateXref:
		return "duplicate xref id"
	}
	return "unknown"
}

// A Diagnostic describes one non-fatal problem encountered during a parse.
// Callers receive the full list alongside the parsed data.
type Diagnostic struct {
	Kind    DiagKind `json:"kind"`
	Line    int      `json:"line"`
	Message string   `json:"message"`
}

// Diag builds a diagnostic from a format string.
func Diag(kind DiagKind, line int, format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Kind:    kind,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	}
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s: %s", d.Line, d.Kind, d.Message)
}
