package scanner

import (
	"testing"

	"github.com/genealogit/gedgo"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var tokenizeInputs = []string{
	"0 HEAD",
	"0 @I1@ INDI",
	"1 NAME John /Doe/",
	"2 SOUR @S1@",
	"1 _UID 12345",
	"0 @F1@ FAM\r",
	"  1 SEX M",
}

var tokenizeExpected = []gedgo.LineToken{
	{Level: 0, Tag: "HEAD"},
	{Level: 0, XRef: "@I1@", Tag: "INDI"},
	{Level: 1, Tag: "NAME", Value: "John /Doe/"},
	{Level: 2, Tag: "SOUR", Value: "@S1@"},
	{Level: 1, Tag: "_UID", Value: "12345"},
	{Level: 0, XRef: "@F1@", Tag: "FAM"},
	{Level: 1, Tag: "SEX", Value: "M"},
}

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gedgo.scanner")
	defer teardown()
	//
	for i, input := range tokenizeInputs {
		tok, err := Tokenize(input, i+1)
		if err != nil {
			t.Errorf("input #%d %q: unexpected error: %v", i, input, err)
			continue
		}
		t.Logf("input #%d: %s", i, tok)
		want := tokenizeExpected[i]
		if tok.Level != want.Level || tok.XRef != want.XRef ||
			tok.Tag != want.Tag || tok.Value != want.Value {
			t.Errorf("input #%d %q: have %s, want %s", i, input, tok, want)
		}
		if tok.Line != i+1 {
			t.Errorf("input #%d: line number is %d, want %d", i, tok.Line, i+1)
		}
	}
}

func TestTokenizeMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gedgo.scanner")
	defer teardown()
	//
	bad := []string{
		"NAME John",      // no level number
		"-1 INDI",        // negative level
		"0",              // tag missing
		"0 @I1@",         // tag missing after xref
		"x0 HEAD",        // junk before level
	}
	for i, input := range bad {
		if _, err := Tokenize(input, i+1); err == nil {
			t.Errorf("input #%d %q: expected an error, got none", i, input)
		} else {
			t.Logf("input #%d: %v", i, err)
		}
	}
}

func TestTokenizeValueVerbatim(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gedgo.scanner")
	defer teardown()
	//
	tok, err := Tokenize("1 NOTE  two  spaces @X@ kept", 1)
	if err != nil {
		t.Fatal(err)
	}
	if tok.Value != " two  spaces @X@ kept" {
		t.Errorf("value not kept verbatim: %q", tok.Value)
	}
	if tok.IsPointer() {
		t.Errorf("value with embedded pointer text must not count as a pointer")
	}
}

func TestScanSkipsBlankAndBadLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gedgo.scanner")
	defer teardown()
	//
	input := "0 HEAD\n\n   \nnot a gedcom line\n1 CHAR UTF-8\n"
	scan := New(input)
	var diags []gedgo.Diagnostic
	scan.SetErrorHandler(func(d gedgo.Diagnostic) {
		diags = append(diags, d)
	})
	var toks []gedgo.LineToken
	for tok := scan.NextToken(); !tok.IsEOF(); tok = scan.NextToken() {
		toks = append(toks, tok)
	}
	if len(toks) != 2 {
		t.Fatalf("expected 2 tokens, have %d", len(toks))
	}
	if toks[0].Tag != "HEAD" || toks[1].Tag != "CHAR" {
		t.Errorf("unexpected tokens: %v %v", toks[0], toks[1])
	}
	if len(diags) != 1 || diags[0].Kind != gedgo.MalformedLine {
		t.Errorf("expected one malformed-line diagnostic, have %v", diags)
	}
	if diags[0].Line != 4 {
		t.Errorf("diagnostic line is %d, want 4", diags[0].Line)
	}
}

func TestScanEOFIsSticky(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gedgo.scanner")
	defer teardown()
	//
	scan := New("0 HEAD")
	scan.NextToken()
	for i := 0; i < 3; i++ {
		if tok := scan.NextToken(); !tok.IsEOF() {
			t.Fatalf("call %d after exhaustion: expected EOF, have %s", i, tok)
		}
	}
}
