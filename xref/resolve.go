package xref

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/genealogit/gedgo"
	"github.com/genealogit/gedgo/model"
)

// Resolve walks every pointer-valued field of the finished model and looks
// its id up in the symbol table, stamping resolved links with the kind of
// the record they name. Ids declared nowhere produce DanglingReference
// diagnostics; the raw id is retained on the link so consumers can still
// inspect it.
func Resolve(data *model.GedcomData, tab *Table) []gedgo.Diagnostic {
	r := &resolver{
		tab:     tab,
		missing: treeset.NewWith(utils.StringComparator),
	}
	if data.Header != nil {
		r.link(data.Header.Submitter)
		r.link(data.Header.Submission)
		r.link(data.Header.NoteRef)
	}
	for _, s := range data.Submissions {
		r.link(s.Submitter)
		r.link(s.NoteRef)
	}
	for _, s := range data.Submitters {
		r.link(s.NoteRef)
	}
	for _, ind := range data.Individuals {
		for _, fl := range ind.Families {
			r.link(fl.Family)
		}
		r.link(ind.NoteRef)
		r.events(ind.Events)
	}
	for _, fam := range data.Families {
		r.link(fam.Individual1)
		r.link(fam.Individual2)
		for _, ch := range fam.Children {
			r.link(ch)
		}
		r.link(fam.NoteRef)
		r.events(fam.Events)
	}
	for _, src := range data.Sources {
		for _, rc := range src.Repositories {
			r.link(rc.Repository)
		}
		r.link(src.NoteRef)
		r.events(src.Data.Events)
	}
	for _, rep := range data.Repositories {
		r.link(rep.NoteRef)
	}
	for _, m := range data.Multimedia {
		if m.Citation != nil {
			r.link(m.Citation.Source)
		}
		r.link(m.NoteRef)
	}
	for _, n := range data.Notes {
		if n.Citation != nil {
			r.link(n.Citation.Source)
		}
	}
	if !r.missing.Empty() {
		tracer().Infof("%d distinct xref ids could not be resolved: %v",
			r.missing.Size(), r.missing.Values())
	}
	return r.diags
}

type resolver struct {
	tab     *Table
	diags   []gedgo.Diagnostic
	missing *treeset.Set // distinct unresolved ids, ordered
}

func (r *resolver) events(events []*model.Event) {
	for _, e := range events {
		for _, c := range e.Citations {
			r.link(c.Source)
		}
	}
}

// link rewrites a single pointer field in place. Nil and already resolved
// links are left alone.
func (r *resolver) link(l *model.Link) {
	if l == nil || l.Resolved {
		return
	}
	entry, ok := r.tab.Lookup(l.Xref)
	if !ok {
		r.missing.Add(l.Xref)
		r.diags = append(r.diags, gedgo.Diag(gedgo.DanglingReference, l.Line,
			"pointer %s does not resolve to any record", l.Xref))
		return
	}
	l.Kind = entry.Kind
	l.Resolved = true
	tracer().Debugf("resolved %s", l)
}
