package builder

import (
	"strings"
	"testing"

	"github.com/genealogit/gedgo"
	"github.com/genealogit/gedgo/model"
	"github.com/genealogit/gedgo/scanner"
	"github.com/genealogit/gedgo/xref"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// build feeds a GEDCOM snippet through scanner, merger and builder.
func build(t *testing.T, input string) (*model.GedcomData, []gedgo.Diagnostic) {
	t.Helper()
	toks := scanner.Merged(scanner.New(input))
	b := New(xref.NewTable(xref.LastWins))
	for tok := toks.NextToken(); !tok.IsEOF(); tok = toks.NextToken() {
		b.Consume(tok)
	}
	return b.Finish()
}

func TestBuildIndividual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gedgo.builder")
	defer teardown()
	//
	input := strings.Join([]string{
		"0 @I1@ INDI",
		"1 NAME John /Doe/",
		"2 GIVN John",
		"2 SURN Doe",
		"1 SEX M",
		"1 BIRT",
		"2 DATE 1 APR 1950",
		"2 PLAC Glasgow, Scotland",
		"1 FAMS @F1@",
		"0 TRLR",
	}, "\n")
	data, diags := build(t, input)
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, have %v", diags)
	}
	if len(data.Individuals) != 1 {
		t.Fatalf("expected 1 individual, have %d", len(data.Individuals))
	}
	ind := data.Individuals[0]
	if ind.Xref != "@I1@" || ind.Sex != model.Male {
		t.Errorf("unexpected individual: %+v", ind)
	}
	if ind.Name == nil || ind.Name.Given != "John" || ind.Name.Surname != "Doe" {
		t.Errorf("name pieces not picked up: %+v", ind.Name)
	}
	if len(ind.Events) != 1 || ind.Events[0].Tag != "BIRT" {
		t.Fatalf("expected one birth event, have %+v", ind.Events)
	}
	ev := ind.Events[0]
	if ev.When == nil || ev.When.Year != 1950 {
		t.Errorf("event date not interpreted: %+v", ev.When)
	}
	if ev.Place == nil || ev.Place.Value != "Glasgow, Scotland" {
		t.Errorf("event place is %+v", ev.Place)
	}
	if len(ind.Families) != 1 || ind.Families[0].Relation != model.Spouse {
		t.Errorf("family link is %+v", ind.Families)
	}
}

func TestBuildFamily(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gedgo.builder")
	defer teardown()
	//
	input := strings.Join([]string{
		"0 @F1@ FAM",
		"1 HUSB @I1@",
		"1 WIFE @I2@",
		"1 CHIL @I3@",
		"1 CHIL @I4@",
		"1 NCHI 2",
		"1 MARR",
		"2 DATE BET 1850 AND 1860",
	}, "\n")
	data, diags := build(t, input)
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, have %v", diags)
	}
	fam := data.Families[0]
	if fam.Individual1 == nil || fam.Individual1.Xref != "@I1@" {
		t.Errorf("husband link is %s", fam.Individual1)
	}
	if fam.Individual2 == nil || fam.Individual2.Xref != "@I2@" {
		t.Errorf("wife link is %s", fam.Individual2)
	}
	if len(fam.Children) != 2 || fam.NumChildren != 2 {
		t.Errorf("children: %d links, NCHI %d", len(fam.Children), fam.NumChildren)
	}
	if len(fam.Events) != 1 || fam.Events[0].Tag != "MARR" {
		t.Fatalf("expected a marriage event, have %+v", fam.Events)
	}
	when := fam.Events[0].When
	if when == nil || when.Qualifier != "BET" || when.End == nil || when.End.Year != 1860 {
		t.Errorf("marriage date is %+v", when)
	}
}

func TestBuildHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gedgo.builder")
	defer teardown()
	//
	input := strings.Join([]string{
		"0 HEAD",
		"1 SOUR gedgo",
		"2 VERS 0.1",
		"2 CORP genealogit",
		"1 CHAR UTF-8",
		"1 GEDC",
		"2 VERS 5.5.1",
		"2 FORM LINEAGE-LINKED",
		"1 DATE 1 JAN 2023",
		"2 TIME 12:00:00",
		"1 SUBM @SUBM1@",
		"0 TRLR",
	}, "\n")
	data, diags := build(t, input)
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, have %v", diags)
	}
	h := data.Header
	if h == nil {
		t.Fatal("no header record")
	}
	if h.Encoding != "UTF-8" {
		t.Errorf("encoding is %q", h.Encoding)
	}
	if h.Source == nil || h.Source.Value != "gedgo" || h.Source.Version != "0.1" {
		t.Errorf("header source is %+v", h.Source)
	}
	if h.Source.Corporation == nil || h.Source.Corporation.Value != "genealogit" {
		t.Errorf("corporation is %+v", h.Source.Corporation)
	}
	if h.Version == nil || h.Version.Version != "5.5.1" || h.Version.Form != "LINEAGE-LINKED" {
		t.Errorf("gedcom version is %+v", h.Version)
	}
	if h.Date != "1 JAN 2023 12:00:00" {
		t.Errorf("header date is %q", h.Date)
	}
	if h.Submitter == nil || h.Submitter.Xref != "@SUBM1@" {
		t.Errorf("submitter link is %s", h.Submitter)
	}
}

func TestLevelSkipRecovers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gedgo.builder")
	defer teardown()
	//
	input := strings.Join([]string{
		"0 @I1@ INDI",
		"2 SEX M", // jumps over level 1
	}, "\n")
	data, diags := build(t, input)
	if len(diags) != 1 || diags[0].Kind != gedgo.LevelSkip {
		t.Fatalf("expected one level-skip diagnostic, have %v", diags)
	}
	// the line still attaches to the nearest ancestor
	if data.Individuals[0].Sex != model.Male {
		t.Errorf("skipped-level line was not attached")
	}
}

func TestSubstructureBeforeRecord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gedgo.builder")
	defer teardown()
	//
	data, diags := build(t, "1 SEX M\n0 @I1@ INDI")
	if len(diags) != 1 || diags[0].Kind != gedgo.LevelSkip {
		t.Fatalf("expected one diagnostic, have %v", diags)
	}
	if len(data.Individuals) != 1 {
		t.Errorf("the later record must still build")
	}
}

func TestUnsupportedTagsSkipSubtree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gedgo.builder")
	defer teardown()
	//
	input := strings.Join([]string{
		"0 @I1@ INDI",
		"1 WEIRD stuff",
		"2 DEEPER below an unsupported line",
		"1 SEX F",
	}, "\n")
	data, diags := build(t, input)
	if len(diags) != 1 || diags[0].Kind != gedgo.UnsupportedTag {
		t.Fatalf("expected exactly the WEIRD diagnostic, have %v", diags)
	}
	ind := data.Individuals[0]
	if ind.Sex != model.Female {
		t.Errorf("parsing did not continue after the skipped subtree")
	}
	skipped := ind.Skipped()
	if len(skipped) != 1 || skipped[0].Tag != "WEIRD" {
		t.Errorf("skip list is %+v", skipped)
	}
}

func TestCustomTagsAreKept(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gedgo.builder")
	defer teardown()
	//
	input := strings.Join([]string{
		"0 @I1@ INDI",
		"1 _UID 1234-5678",
		"2 _SUB below custom data",
		"1 SEX M",
	}, "\n")
	data, diags := build(t, input)
	if len(diags) != 0 {
		t.Fatalf("custom tags are not diagnostics: %v", diags)
	}
	ind := data.Individuals[0]
	if len(ind.Custom) != 1 || ind.Custom[0].Tag != "_UID" || ind.Custom[0].Value != "1234-5678" {
		t.Errorf("custom data is %+v", ind.Custom)
	}
}

func TestDuplicateXref(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gedgo.builder")
	defer teardown()
	//
	input := "0 @I1@ INDI\n0 @I1@ INDI"
	tab := xref.NewTable(xref.LastWins)
	toks := scanner.Merged(scanner.New(input))
	b := New(tab)
	for tok := toks.NextToken(); !tok.IsEOF(); tok = toks.NextToken() {
		b.Consume(tok)
	}
	data, diags := b.Finish()
	if len(diags) != 1 || diags[0].Kind != gedgo.DuplicateXref {
		t.Fatalf("expected one duplicate-xref diagnostic, have %v", diags)
	}
	// both records are kept in the container regardless of the policy
	if len(data.Individuals) != 2 {
		t.Errorf("expected both records, have %d", len(data.Individuals))
	}
	if e, _ := tab.Lookup("@I1@"); e.Line != 2 {
		t.Errorf("LastWins must keep the later declaration, has line %d", e.Line)
	}
}

func TestSourceRecord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gedgo.builder")
	defer teardown()
	//
	input := strings.Join([]string{
		"0 @S1@ SOUR",
		"1 TITL Parish register",
		"1 ABBR PR",
		"1 REPO @R1@",
		"2 CALN 1234",
		"3 MEDI Microfilm",
		"1 DATA",
		"2 EVEN BIRT, DEAT",
		"2 AGNC Parish office",
	}, "\n")
	data, diags := build(t, input)
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, have %v", diags)
	}
	src := data.Sources[0]
	if src.Title != "Parish register" || src.Abbreviation != "PR" {
		t.Errorf("source is %+v", src)
	}
	if len(src.Repositories) != 1 {
		t.Fatalf("expected one repo citation")
	}
	rc := src.Repositories[0]
	if rc.Repository.Xref != "@R1@" || rc.CallNumber != "1234" || rc.Media != "Microfilm" {
		t.Errorf("repo citation is %+v", rc)
	}
	if src.Data.Agency != "Parish office" || len(src.Data.Events) != 1 {
		t.Errorf("source data is %+v", src.Data)
	}
}

func TestMultimediaRecord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gedgo.builder")
	defer teardown()
	//
	input := strings.Join([]string{
		"0 @M1@ OBJE",
		"1 FILE scans/birth-cert.jpg",
		"2 FORM jpeg",
		"3 TYPE photo",
		"2 TITL Birth certificate",
		"1 REFN 42",
		"2 TYPE inventory",
		"1 RIN 77",
		"1 NOTE @N1@",
	}, "\n")
	data, diags := build(t, input)
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, have %v", diags)
	}
	if len(data.Multimedia) != 1 {
		t.Fatalf("expected 1 multimedia record, have %d", len(data.Multimedia))
	}
	m := data.Multimedia[0]
	if m.File == nil || m.File.Value != "scans/birth-cert.jpg" {
		t.Fatalf("media file is %+v", m.File)
	}
	if m.File.Form == nil || m.File.Form.Value != "jpeg" || m.File.Form.MediaType != "photo" {
		t.Errorf("media format is %+v", m.File.Form)
	}
	if m.File.Title != "Birth certificate" {
		t.Errorf("file title is %q", m.File.Title)
	}
	if m.Reference == nil || m.Reference.Value != "42" || m.Reference.Type != "inventory" {
		t.Errorf("user reference is %+v", m.Reference)
	}
	if m.RecordID != "77" {
		t.Errorf("record id is %q", m.RecordID)
	}
	if m.NoteRef == nil || m.NoteRef.Xref != "@N1@" || m.Note != "" {
		t.Errorf("pointer note must land in NoteRef: %s / %q", m.NoteRef, m.Note)
	}
}

func TestMultimediaSiblingForm(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gedgo.builder")
	defer teardown()
	//
	// FORM and TITL as siblings of FILE, the way several producers emit them
	input := strings.Join([]string{
		"0 @M1@ OBJE",
		"1 FILE photo.gif",
		"1 FORM gif",
		"1 TITL A photo",
	}, "\n")
	data, diags := build(t, input)
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, have %v", diags)
	}
	m := data.Multimedia[0]
	if m.Form == nil || m.Form.Value != "gif" {
		t.Errorf("sibling form is %+v", m.Form)
	}
	if m.Title != "A photo" {
		t.Errorf("sibling title is %q", m.Title)
	}
}

func TestSubmissionRecord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gedgo.builder")
	defer teardown()
	//
	input := strings.Join([]string{
		"0 @U1@ SUBN",
		"1 SUBM @SUBM1@",
		"1 FAMF Doe family file",
		"1 TEMP SLAKE",
		"1 ANCE 2",
		"1 DESC 3",
		"1 ORDI yes",
		"1 RIN 9",
		"1 NOTE created for a migration run",
	}, "\n")
	data, diags := build(t, input)
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, have %v", diags)
	}
	if len(data.Submissions) != 1 {
		t.Fatalf("expected 1 submission record, have %d", len(data.Submissions))
	}
	s := data.Submissions[0]
	if s.Xref != "@U1@" {
		t.Errorf("xref is %q", s.Xref)
	}
	if s.Submitter == nil || s.Submitter.Xref != "@SUBM1@" {
		t.Errorf("submitter link is %s", s.Submitter)
	}
	if s.FamilyFile != "Doe family file" || s.TempleCode != "SLAKE" {
		t.Errorf("FAMF/TEMP are %q / %q", s.FamilyFile, s.TempleCode)
	}
	if s.AncestorGenerations != "2" || s.DescendantGenerations != "3" {
		t.Errorf("ANCE/DESC are %q / %q", s.AncestorGenerations, s.DescendantGenerations)
	}
	if s.OrdinanceFlag != "yes" || s.RecordID != "9" {
		t.Errorf("ORDI/RIN are %q / %q", s.OrdinanceFlag, s.RecordID)
	}
	if s.Note != "created for a migration run" || s.NoteRef != nil {
		t.Errorf("inline note must land in Note: %q / %s", s.Note, s.NoteRef)
	}
}

func TestNoteValueMerging(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gedgo.builder")
	defer teardown()
	//
	input := strings.Join([]string{
		"0 @N1@ NOTE A note that goes",
		"1 CONT on and on",
		"1 CONC , really",
	}, "\n")
	data, diags := build(t, input)
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, have %v", diags)
	}
	n := data.Notes[0]
	if n.Value != "A note that goes\non and on, really" {
		t.Errorf("note value is %q", n.Value)
	}
}
