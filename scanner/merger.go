package scanner

import "github.com/genealogit/gedgo"

// Continuation tags. CONT introduces a line break in the extended value,
// CONC concatenates without a separator.
const (
	TagCont = "CONT"
	TagConc = "CONC"
)

// A Merger folds CONT/CONC continuation tokens into the value of the most
// recently emitted token. Continuations attach by stream order, not by level
// arithmetic: whatever token preceded them is the one they extend. The
// output is an equivalent token stream with no continuation tokens left.
//
// A continuation with no preceding token extends an empty value owned by
// nobody; GEDCOM tolerates this, so the token is dropped with a trace entry
// instead of an error.
type Merger struct {
	src     Tokenizer
	pending *gedgo.LineToken // first non-continuation token read past the current one
}

var _ Tokenizer = (*Merger)(nil)

// Merged wraps a Tokenizer so that continuation lines disappear into the
// values they extend.
func Merged(src Tokenizer) *Merger {
	return &Merger{src: src}
}

// SetErrorHandler is part of the Tokenizer interface; it configures the
// wrapped scanner.
func (m *Merger) SetErrorHandler(h func(gedgo.Diagnostic)) {
	m.src.SetErrorHandler(h)
}

// NextToken returns the next token with all of its continuations merged in.
func (m *Merger) NextToken() gedgo.LineToken {
	var cur gedgo.LineToken
	if m.pending != nil {
		cur = *m.pending
		m.pending = nil
	} else {
		cur = m.src.NextToken()
	}
	for isContinuation(cur) {
		tracer().Infof("line %d: %s without a preceding value, dropped", cur.Line, cur.Tag)
		cur = m.src.NextToken()
	}
	if cur.IsEOF() {
		return cur
	}
	for {
		nxt := m.src.NextToken()
		switch {
		case isContinuation(nxt) && nxt.Tag == TagCont:
			cur.Value += "\n" + nxt.Value
		case isContinuation(nxt) && nxt.Tag == TagConc:
			cur.Value += nxt.Value
		default:
			m.pending = &nxt
			return cur
		}
	}
}

func isContinuation(t gedgo.LineToken) bool {
	return !t.IsEOF() && (t.Tag == TagCont || t.Tag == TagConc)
}
