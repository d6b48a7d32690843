/*
Package ged parses GEDCOM file contents into a cross-referenced data model.

Parse is the single entry point. It is a best-effort parser: per-line
problems (malformed lines, level jumps, unknown tags, dangling or duplicate
cross-references) never fail the parse; they come back as a diagnostics
list next to the model. An error is returned only when the input is
structurally unusable as a whole.

	data, diags, err := ged.Parse(contents)
	if err != nil {
		...
	}
	fmt.Println(data.Stats().Individuals)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 The gedgo authors

*/
package ged

import (
	"fmt"

	"github.com/genealogit/gedgo"
	"github.com/genealogit/gedgo/builder"
	"github.com/genealogit/gedgo/model"
	"github.com/genealogit/gedgo/scanner"
	"github.com/genealogit/gedgo/xref"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gedgo.ged'.
func tracer() tracing.Trace {
	return tracing.Select("gedgo.ged")
}

type config struct {
	policy        xref.Policy
	requireHeader bool
}

// Option configures a parse run.
type Option func(*config)

// WithDuplicatePolicy decides which declaration survives when two records
// declare the same xref id. The default is xref.LastWins; both declarations
// are diagnosed regardless.
func WithDuplicatePolicy(p xref.Policy) Option {
	return func(c *config) {
		c.policy = p
	}
}

// WithRequireHeader makes the absence of a HEAD record a fatal error
// instead of a tolerated omission.
func WithRequireHeader(require bool) Option {
	return func(c *config) {
		c.requireHeader = require
	}
}

// Parse consumes the complete contents of a GEDCOM file and returns the
// assembled model together with all diagnostics of the run. The model is
// always returned as complete as the input allowed; err is non-nil only
// for input that yields no GEDCOM lines at all, or under WithRequireHeader.
func Parse(input string, opts ...Option) (*model.GedcomData, []gedgo.Diagnostic, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	var diags []gedgo.Diagnostic
	//
	scan := scanner.New(input)
	scan.SetErrorHandler(func(d gedgo.Diagnostic) {
		diags = append(diags, d)
	})
	toks := scanner.Merged(scan)
	tab := xref.NewTable(cfg.policy)
	bld := builder.New(tab)
	count := 0
	for tok := toks.NextToken(); !tok.IsEOF(); tok = toks.NextToken() {
		bld.Consume(tok)
		count++
	}
	if count == 0 {
		return nil, diags, fmt.Errorf("input contains no GEDCOM lines")
	}
	data, bdiags := bld.Finish()
	diags = append(diags, bdiags...)
	diags = append(diags, xref.Resolve(data, tab)...)
	tab.Each(func(e xref.Entry) { // only visible in debug mode
		tracer().Debugf("xref %s declares a %s record (line %d)", e.ID, e.Kind, e.Line)
	})
	tracer().Infof("parsed %d logical lines, %d xref ids, %d diagnostics",
		count, tab.Size(), len(diags))
	if cfg.requireHeader && data.Header == nil {
		return data, diags, fmt.Errorf("file carries no header record")
	}
	return data, diags, nil
}
