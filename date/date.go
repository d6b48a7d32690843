/*
Package date interprets GEDCOM date values.

GEDCOM stores dates as free-ish text like "1 APR 1950", "ABT 1850" or
"BET 1850 AND 1860". The exchange format never validates them, and neither
does this package: values that do not lex as a date keep only their raw
string. Lexing is done with a lexmachine DFA over the small vocabulary of
date keywords, month names and numbers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 The gedgo authors

*/
package date

import (
	"strconv"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'gedgo.date'.
func tracer() tracing.Trace {
	return tracing.Select("gedgo.date")
}

// A Date is the interpreted form of a GEDCOM date value. Raw is always set;
// the remaining fields are filled in as far as the value could be read.
// Range values (BET…AND, FROM…TO) put their second half into End.
type Date struct {
	Raw       string `json:"raw"`
	Qualifier string `json:"qualifier,omitempty"` // ABT, CAL, EST, INT, BEF, AFT, BET, FROM
	Day       int    `json:"day,omitempty"`
	Month     int    `json:"month,omitempty"` // 1…12
	Year      int    `json:"year,omitempty"`
	Phrase    string `json:"phrase,omitempty"` // parenthesized date phrase, if any
	End       *Date  `json:"end,omitempty"`
}

// Token types for the date lexer.
const (
	tokNum = iota + 1
	tokMonth
	tokQualifier // ABT CAL EST INT
	tokBefore
	tokAfter
	tokBetween
	tokAnd
	tokFrom
	tokTo
	tokPhrase
	tokWord
)

var monthNum = map[string]int{
	"JAN": 1, "FEB": 2, "MAR": 3, "APR": 4, "MAY": 5, "JUN": 6,
	"JUL": 7, "AUG": 8, "SEP": 9, "OCT": 10, "NOV": 11, "DEC": 12,
}

var lexer *lexmachine.Lexer
var lexerErr error
var initOnce sync.Once // monitors one-time compilation of the date DFA

func initLexer() {
	initOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`@#D[A-Z ]+@`), skip) // calendar escape, e.g. @#DGREGORIAN@
		lexer.Add([]byte(`ABT|CAL|EST|INT`), makeToken(tokQualifier))
		lexer.Add([]byte(`BEF`), makeToken(tokBefore))
		lexer.Add([]byte(`AFT`), makeToken(tokAfter))
		lexer.Add([]byte(`BET`), makeToken(tokBetween))
		lexer.Add([]byte(`AND`), makeToken(tokAnd))
		lexer.Add([]byte(`FROM`), makeToken(tokFrom))
		lexer.Add([]byte(`TO`), makeToken(tokTo))
		lexer.Add([]byte(`JAN|FEB|MAR|APR|MAY|JUN|JUL|AUG|SEP|OCT|NOV|DEC`), makeToken(tokMonth))
		lexer.Add([]byte(`[0-9]+(/[0-9]+)?`), makeToken(tokNum))
		lexer.Add([]byte(`\([^)]*\)`), makeToken(tokPhrase))
		lexer.Add([]byte(`[A-Z\.]+`), makeToken(tokWord))
		lexer.Add([]byte(`( |\t|,)+`), skip)
		lexerErr = lexer.Compile()
		if lexerErr != nil {
			tracer().Errorf("Error compiling DFA: %v", lexerErr)
		}
	})
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

type lexeme struct {
	id   int
	text string
}

// Parse interprets a GEDCOM date value. It always returns a Date carrying
// the raw input; the boolean reports whether the value was fully understood.
func Parse(value string) (*Date, bool) {
	initLexer()
	d := &Date{Raw: value}
	if lexerErr != nil {
		return d, false
	}
	toks, ok := scan(strings.ToUpper(value))
	if !ok || len(toks) == 0 {
		return d, false
	}
	rest, ok := parseInto(d, toks)
	if !ok {
		return d, false
	}
	// second half of a range
	if len(rest) > 0 && (rest[0].id == tokAnd || rest[0].id == tokTo) {
		if d.Qualifier != "BET" && d.Qualifier != "FROM" {
			return d, false
		}
		end := &Date{}
		rest, ok = parseInto(end, rest[1:])
		if !ok {
			return d, false
		}
		d.End = end
	}
	return d, len(rest) == 0
}

func scan(input string) ([]lexeme, bool) {
	s, err := lexer.Scanner([]byte(input))
	if err != nil {
		return nil, false
	}
	var toks []lexeme
	for tok, err, eof := s.Next(); !eof; tok, err, eof = s.Next() {
		if err != nil {
			tracer().Debugf("date value does not lex: %v", err)
			return nil, false
		}
		t := tok.(*lexmachine.Token)
		toks = append(toks, lexeme{id: t.Type, text: string(t.Lexeme)})
	}
	return toks, true
}

// parseInto reads  [qualifier] [day] [month] [year] [phrase]  from the front
// of toks into d, returning the unconsumed remainder.
func parseInto(d *Date, toks []lexeme) ([]lexeme, bool) {
	if len(toks) == 0 {
		return toks, false
	}
	switch toks[0].id {
	case tokQualifier, tokBefore, tokAfter, tokBetween, tokFrom:
		d.Qualifier = toks[0].text
		toks = toks[1:]
	}
	// day is a number directly followed by a month
	if len(toks) >= 2 && toks[0].id == tokNum && toks[1].id == tokMonth {
		d.Day, _ = strconv.Atoi(toks[0].text)
		toks = toks[1:]
	}
	if len(toks) > 0 && toks[0].id == tokMonth {
		d.Month = monthNum[toks[0].text]
		toks = toks[1:]
	}
	if len(toks) > 0 && toks[0].id == tokNum {
		d.Year, _ = strconv.Atoi(yearPart(toks[0].text))
		toks = toks[1:]
	}
	if len(toks) > 0 && toks[0].id == tokPhrase {
		d.Phrase = strings.Trim(toks[0].text, "()")
		toks = toks[1:]
	}
	if d.Day == 0 && d.Month == 0 && d.Year == 0 && d.Phrase == "" {
		return toks, false
	}
	return toks, true
}

// yearPart strips the dual-year suffix from values like "1699/00".
func yearPart(s string) string {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		return s[:i]
	}
	return s
}
