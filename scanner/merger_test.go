package scanner

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func collectValues(input string) []string {
	toks := Merged(New(input))
	var values []string
	for tok := toks.NextToken(); !tok.IsEOF(); tok = toks.NextToken() {
		values = append(values, tok.Value)
	}
	return values
}

func TestMergeCont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gedgo.scanner")
	defer teardown()
	//
	values := collectValues("1 NOTE Hello\n2 CONT World")
	if len(values) != 1 {
		t.Fatalf("expected 1 merged token, have %d", len(values))
	}
	if values[0] != "Hello\nWorld" {
		t.Errorf("CONT merge is %q, want %q", values[0], "Hello\nWorld")
	}
}

func TestMergeConc(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gedgo.scanner")
	defer teardown()
	//
	values := collectValues("1 NOTE Hello\n2 CONC , World")
	if len(values) != 1 {
		t.Fatalf("expected 1 merged token, have %d", len(values))
	}
	if values[0] != "Hello, World" {
		t.Errorf("CONC merge is %q, want %q", values[0], "Hello, World")
	}
}

func TestMergeChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gedgo.scanner")
	defer teardown()
	//
	input := "0 @N1@ NOTE first\n1 CONC  line\n1 CONT second line\n1 CONT \n0 TRLR"
	values := collectValues(input)
	if len(values) != 2 {
		t.Fatalf("expected 2 tokens, have %d", len(values))
	}
	want := "first line\nsecond line\n"
	if values[0] != want {
		t.Errorf("merged value is %q, want %q", values[0], want)
	}
}

func TestMergeKeepsSurroundingTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gedgo.scanner")
	defer teardown()
	//
	input := "0 HEAD\n1 NOTE a\n2 CONC b\n1 CHAR UTF-8\n0 TRLR"
	toks := Merged(New(input))
	var tags []string
	for tok := toks.NextToken(); !tok.IsEOF(); tok = toks.NextToken() {
		tags = append(tags, tok.Tag)
	}
	want := []string{"HEAD", "NOTE", "CHAR", "TRLR"}
	if len(tags) != len(want) {
		t.Fatalf("expected %d tokens, have %d: %v", len(want), len(tags), tags)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("token #%d is %s, want %s", i, tags[i], want[i])
		}
	}
}

func TestMergeOrphanContinuation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gedgo.scanner")
	defer teardown()
	//
	values := collectValues("1 CONT orphan\n0 HEAD")
	if len(values) != 1 {
		t.Fatalf("expected the orphan to be dropped, have %d tokens", len(values))
	}
}
