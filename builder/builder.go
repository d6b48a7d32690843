/*
Package builder reconstructs the record tree from the token stream.

GEDCOM encodes its tree with nothing but per-line nesting levels: there are
no closing markers, and the same tag means different things depending on the
record it appears under. The builder therefore keeps an explicit stack of
open nodes keyed by level, closing nodes as soon as a token at the same or a
shallower level arrives, and hands every token to a dispatch table selected
by the kind of the enclosing node.

Parsing is best effort. Structural problems (level jumps, unknown tags,
duplicate ids) are recorded as diagnostics and the builder carries on; no
input aborts the build.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 The gedgo authors

*/
package builder

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/genealogit/gedgo"
	"github.com/genealogit/gedgo/model"
	"github.com/genealogit/gedgo/xref"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gedgo.builder'.
func tracer() tracing.Trace {
	return tracing.Select("gedgo.builder")
}

// A frame is one open node on the builder stack: a top-level record at
// level 0 or a substructure of one further down.
type frame struct {
	level int
	kind  nodeKind
	node  interface{}
}

// Builder consumes line tokens in file order and assembles the data model.
// Create one with New, feed it with Consume and collect the result with
// Finish. A Builder is good for a single run.
type Builder struct {
	data   *model.GedcomData
	stack  *arraystack.Stack // of *frame
	symtab *xref.Table
	diags  []gedgo.Diagnostic
}

// New creates a builder registering xref declarations in tab.
func New(tab *xref.Table) *Builder {
	return &Builder{
		data:   model.NewGedcomData(),
		stack:  arraystack.New(),
		symtab: tab,
	}
}

// Consume processes the next token of the stream. Tokens must arrive in
// file order; EOF tokens are ignored (call Finish instead).
func (b *Builder) Consume(tok gedgo.LineToken) {
	if tok.IsEOF() {
		return
	}
	b.popTo(tok.Level) // the token's arrival closes nodes at its level and deeper
	if tok.Level == 0 {
		b.openRecord(tok)
		return
	}
	top, ok := b.peek()
	if !ok {
		b.diag(gedgo.LevelSkip, tok.Line,
			"line at level %d before any record was opened", tok.Level)
		return
	}
	if top.level != tok.Level-1 {
		b.diag(gedgo.LevelSkip, tok.Line,
			"level jumps from %d to %d, attaching to nearest ancestor", top.level, tok.Level)
	}
	b.dispatch(top, tok)
}

// Finish closes all remaining open nodes and returns the assembled model
// along with every diagnostic of the build.
func (b *Builder) Finish() (*model.GedcomData, []gedgo.Diagnostic) {
	b.popTo(0)
	return b.data, b.diags
}

func (b *Builder) diag(kind gedgo.DiagKind, line int, format string, args ...interface{}) {
	d := gedgo.Diag(kind, line, format, args...)
	tracer().Infof("%s", d)
	b.diags = append(b.diags, d)
}

func (b *Builder) peek() (*frame, bool) {
	v, ok := b.stack.Peek()
	if !ok {
		return nil, false
	}
	return v.(*frame), true
}

// popTo closes every open node whose level is >= level. Popping a level-0
// frame finalizes the record into the container.
func (b *Builder) popTo(level int) {
	for {
		top, ok := b.peek()
		if !ok || top.level < level {
			return
		}
		b.stack.Pop()
		if top.level == 0 {
			b.closeRecord(top)
		}
	}
}

// openRecord starts a new top-level record. Unrecognized level-0 tags open
// an inert node that swallows its subtree.
func (b *Builder) openRecord(tok gedgo.LineToken) {
	kind, node := newRecord(tok)
	switch {
	case kind == nIgnore && tok.IsCustom():
		tracer().Debugf("line %d: skipping custom top-level record %s", tok.Line, tok.Tag)
	case kind == nIgnore && tok.Tag != tagTrailer:
		b.diag(gedgo.UnsupportedTag, tok.Line, "unsupported record tag %s", tok.Tag)
	case tok.XRef != "" && kind.recordKind() != model.KindUnknown:
		if old, dup := b.symtab.Define(tok.XRef, kind.recordKind(), tok.Line); dup {
			b.diag(gedgo.DuplicateXref, tok.Line,
				"xref id %s already declared on line %d", tok.XRef, old.Line)
		}
	}
	b.stack.Push(&frame{level: 0, kind: kind, node: node})
}

// closeRecord pushes a finished top-level record into its container sequence.
func (b *Builder) closeRecord(f *frame) {
	switch f.kind {
	case nHeader:
		if b.data.Header != nil {
			tracer().Infof("second header record replaces the first")
		}
		b.data.Header = f.node.(*model.Header)
	case nSubmission:
		b.data.AddSubmission(f.node.(*model.Submission))
	case nSubmitter:
		b.data.AddSubmitter(f.node.(*model.Submitter))
	case nIndividual:
		b.data.AddIndividual(f.node.(*model.Individual))
	case nFamily:
		b.data.AddFamily(f.node.(*model.Family))
	case nSource:
		b.data.AddSource(f.node.(*model.Source))
	case nRepository:
		b.data.AddRepository(f.node.(*model.Repository))
	case nMultimedia:
		b.data.AddMultimedia(f.node.(*model.Multimedia))
	case nNote:
		b.data.AddNote(f.node.(*model.Note))
	}
}

// dispatch interprets a token in the context of the enclosing node and
// pushes the substructure it opens, if any.
func (b *Builder) dispatch(parent *frame, tok gedgo.LineToken) {
	if parent.kind == nIgnore {
		b.push(tok.Level, nIgnore, nil)
		return
	}
	if tok.IsCustom() {
		if ext, ok := parent.node.(customAdder); ok {
			ext.AddCustom(model.UserDefined{Tag: tok.Tag, Value: tok.Value})
		}
		b.push(tok.Level, nIgnore, nil) // subtree of custom data is not modeled
		return
	}
	if h, ok := dispatch[parent.kind][tok.Tag]; ok {
		if child := h(b, parent, tok); child != nil {
			child.level = tok.Level
			b.stack.Push(child)
		}
		return
	}
	b.diag(gedgo.UnsupportedTag, tok.Line,
		"unsupported tag %s in %s context", tok.Tag, parent.kind)
	if ext, ok := parent.node.(skipAdder); ok {
		ext.AddSkipped(model.UserDefined{Tag: tok.Tag, Value: tok.Value})
	}
	b.push(tok.Level, nIgnore, nil)
}

func (b *Builder) push(level int, kind nodeKind, node interface{}) {
	b.stack.Push(&frame{level: level, kind: kind, node: node})
}

type customAdder interface {
	AddCustom(model.UserDefined)
}

type skipAdder interface {
	AddSkipped(model.UserDefined)
}
