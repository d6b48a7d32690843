package model

import "fmt"

// RecordKind enumerates the top-level record variants of a GEDCOM file.
type RecordKind int8

// Record kinds. KindUnknown is the zero value and marks unresolved links.
const (
	KindUnknown RecordKind = iota
	KindHeader
	KindSubmission
	KindSubmitter
	KindIndividual
	KindFamily
	KindSource
	KindRepository
	KindMultimedia
	KindNote
)

func (k RecordKind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindSubmission:
		return "submission"
	case KindSubmitter:
		return "submitter"
	case KindIndividual:
		return "individual"
	case KindFamily:
		return "family"
	case KindSource:
		return "source"
	case KindRepository:
		return "repository"
	case KindMultimedia:
		return "multimedia"
	case KindNote:
		return "note"
	}
	return "unknown"
}

// A Link is a pointer-valued field: a cross-reference id denoting a relation
// to a record elsewhere in the same file, never ownership. It keeps the raw
// id as written; resolution stamps Kind and Resolved in a second pass. An
// unresolvable link stays raw so consumers can still inspect it.
type Link struct {
	Xref     string     `json:"xref"`
	Kind     RecordKind `json:"kind,omitempty"`
	Resolved bool       `json:"resolved"`
	Line     int        `json:"-"` // declaring line, for diagnostics
}

// NewLink wraps a raw "@…@" pointer value.
func NewLink(xref string, line int) *Link {
	return &Link{Xref: xref, Line: line}
}

func (l *Link) String() string {
	if l == nil {
		return "<nil link>"
	}
	if l.Resolved {
		return fmt.Sprintf("<%s %s>", l.Kind, l.Xref)
	}
	return fmt.Sprintf("<unresolved %s>", l.Xref)
}

// UserDefined keeps the raw tag and value of a line the dispatcher did not
// interpret, either a custom "_TAG" or an unmodeled standard tag.
type UserDefined struct {
	Tag   string `json:"tag"`
	Value string `json:"value"`
}

// UserData collects uninterpreted lines of a record. Record types embed it.
type UserData struct {
	Custom  []UserDefined `json:"custom,omitempty"` // user-defined "_TAG" data
	skipped []UserDefined // unmodeled standard tags, for diagnostics only
}

// AddCustom appends user-defined tag data.
func (u *UserData) AddCustom(d UserDefined) {
	u.Custom = append(u.Custom, d)
}

// AddSkipped appends an unmodeled tag/value pair to the skip list.
func (u *UserData) AddSkipped(d UserDefined) {
	u.skipped = append(u.skipped, d)
}

// Skipped returns the tags the dispatcher ignored while building this record.
func (u *UserData) Skipped() []UserDefined {
	return u.skipped
}

// Address is a physical address, the ADDR structure. The unstructured Value
// may span several lines (CONT).
type Address struct {
	Value      string `json:"value,omitempty"`
	Line1      string `json:"adr1,omitempty"`
	Line2      string `json:"adr2,omitempty"`
	Line3      string `json:"adr3,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"post,omitempty"`
	Country    string `json:"country,omitempty"`
}

// ChangeDate records the last change to a record (the CHAN structure).
type ChangeDate struct {
	Date string `json:"date,omitempty"`
	Time string `json:"time,omitempty"`
	Note string `json:"note,omitempty"`
}

// Datetime returns date and time folded into one string, or just the date.
func (c *ChangeDate) Datetime() string {
	if c.Time == "" {
		return c.Date
	}
	return c.Date + " " + c.Time
}
