/*
Package xref tracks cross-reference ids and resolves pointer fields.

Every GEDCOM record may declare an id ("@I1@") that other records point at.
Forward references are legal, so nothing resolves while the file is being
scanned: the builder only registers declarations in a Table, and Resolve
rewrites the model's pointer fields in a second pass once the whole file has
been seen.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 The gedgo authors

*/
package xref

import (
	"github.com/genealogit/gedgo/model"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gedgo.xref'.
func tracer() tracing.Trace {
	return tracing.Select("gedgo.xref")
}

// Policy decides which declaration a duplicate xref id ends up naming.
// GEDCOM itself leaves this open; both declarations are diagnosed either way.
type Policy int8

// Duplicate-id policies.
const (
	LastWins Policy = iota
	FirstWins
)

// An Entry is one registered xref declaration.
type Entry struct {
	ID   string
	Kind model.RecordKind
	Line int // line the declaration appeared on
}

// Table is the symbol table of xref declarations. The id namespace is
// global across the file; the declared kind is kept per entry so lookups
// can be checked against the expected record kind.
type Table struct {
	entries map[string]Entry
	policy  Policy
}

// NewTable creates an empty symbol table with the given duplicate policy.
func NewTable(policy Policy) *Table {
	return &Table{
		entries: make(map[string]Entry),
		policy:  policy,
	}
}

// Define registers a declaration. It returns the previously stored entry
// and a flag signalling whether the id was already declared; on a duplicate
// the surviving entry depends on the table's policy.
func (t *Table) Define(id string, kind model.RecordKind, line int) (Entry, bool) {
	old, dup := t.entries[id]
	if dup {
		tracer().P("xref", id).Infof("duplicate declaration, lines %d and %d", old.Line, line)
		if t.policy == FirstWins {
			return old, true
		}
	}
	t.entries[id] = Entry{ID: id, Kind: kind, Line: line}
	return old, dup
}

// Lookup finds the entry an id resolves to.
func (t *Table) Lookup(id string) (Entry, bool) {
	e, ok := t.entries[id]
	return e, ok
}

// Size counts the declared ids.
func (t *Table) Size() int {
	return len(t.entries)
}

// Each iterates over every entry, executing a mapper function.
func (t *Table) Each(mapper func(Entry)) {
	for _, e := range t.entries {
		mapper(e)
	}
}
