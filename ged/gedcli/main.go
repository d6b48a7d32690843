package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/genealogit/gedgo/ged"
	"github.com/genealogit/gedgo/model"
	"github.com/genealogit/gedgo/xref"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 The gedgo authors

*/

// main() starts a small CLI around the GEDCOM parser. Given a file it will
// parse it, report diagnostics and print summary counts per record kind.
// With -json the whole record container is dumped as JSON, with -i the CLI
// switches into an interactive mode where cross-reference identifiers may
// be looked up and inspected one by one.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	jsondump := flag.Bool("json", false, "Dump parsed records as JSON")
	interactive := flag.Bool("i", false, "Interactive mode (xref lookup)")
	firstwins := flag.Bool("firstwins", false, "Keep the first record on duplicate xref ids")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	if flag.NArg() != 1 {
		pterm.Error.Println("usage: gedcli [options] <file.ged>")
		os.Exit(1)
	}
	filename := flag.Arg(0)
	raw, err := ioutil.ReadFile(filename)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	//
	// parse the input file
	opts := []ged.Option{}
	if *firstwins {
		opts = append(opts, ged.WithDuplicatePolicy(xref.FirstWins))
	}
	data, diags, err := ged.Parse(string(raw), opts...)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	for _, d := range diags {
		pterm.Error.Println(d.String())
	}
	if *jsondump {
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(2)
		}
		fmt.Println(string(out))
		return
	}
	printStats(filename, data, len(diags))
	if *interactive {
		intp, err := newIntp(data)
		if err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(3)
		}
		pterm.Info.Println("Enter an xref id to inspect a record, quit with <ctrl>D")
		intp.REPL()
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func printStats(filename string, data *model.GedcomData, diagcnt int) {
	stats := data.Stats()
	pterm.Info.Printf("%s: %d diagnostics\n", filename, diagcnt)
	ll := pterm.LeveledList{
		{Level: 0, Text: "records"},
		{Level: 1, Text: fmt.Sprintf("submissions   %d", stats.Submissions)},
		{Level: 1, Text: fmt.Sprintf("submitters    %d", stats.Submitters)},
		{Level: 1, Text: fmt.Sprintf("individuals   %d", stats.Individuals)},
		{Level: 1, Text: fmt.Sprintf("families      %d", stats.Families)},
		{Level: 1, Text: fmt.Sprintf("sources       %d", stats.Sources)},
		{Level: 1, Text: fmt.Sprintf("repositories  %d", stats.Repositories)},
		{Level: 1, Text: fmt.Sprintf("multimedia    %d", stats.Multimedia)},
		{Level: 1, Text: fmt.Sprintf("notes         %d", stats.Notes)},
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

// Intp is our interactive inspector object
type Intp struct {
	data    *model.GedcomData
	records map[string]interface{}
	repl    *readline.Instance
}

func newIntp(data *model.GedcomData) (*Intp, error) {
	repl, err := readline.New("gedcli> ")
	if err != nil {
		return nil, err
	}
	intp := &Intp{
		data:    data,
		records: make(map[string]interface{}),
		repl:    repl,
	}
	for _, r := range data.Submissions {
		intp.index(r.Xref, r)
	}
	for _, r := range data.Submitters {
		intp.index(r.Xref, r)
	}
	for _, r := range data.Individuals {
		intp.index(r.Xref, r)
	}
	for _, r := range data.Families {
		intp.index(r.Xref, r)
	}
	for _, r := range data.Sources {
		intp.index(r.Xref, r)
	}
	for _, r := range data.Repositories {
		intp.index(r.Xref, r)
	}
	for _, r := range data.Multimedia {
		intp.index(r.Xref, r)
	}
	for _, r := range data.Notes {
		intp.index(r.Xref, r)
	}
	return intp, nil
}

// index registers a record under its xref id, without the '@' delimiters.
func (intp *Intp) index(id string, rec interface{}) {
	if id == "" {
		return
	}
	intp.records[strings.Trim(id, "@")] = rec
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval inspects a single command line. An xref id, with or without the
// bracketing '@' characters, prints the record it denotes.
func (intp *Intp) Eval(line string) (bool, error) {
	switch line {
	case "quit", "exit":
		return true, nil
	case "stats":
		printStats("records", intp.data, 0)
		return false, nil
	case "list":
		for id := range intp.records {
			fmt.Println(id)
		}
		return false, nil
	}
	id := strings.Trim(line, "@")
	rec, ok := intp.records[id]
	if !ok {
		return false, fmt.Errorf("no record with xref id %s", id)
	}
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return false, err
	}
	fmt.Println(string(out))
	return false, nil
}

// tracer traces with key 'gedgo.ged'.
func tracer() tracing.Trace {
	return tracing.Select("gedgo.ged")
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
