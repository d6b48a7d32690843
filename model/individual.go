package model

import (
	"encoding/json"
	"fmt"
)

// An Individual is a person within the family tree, the INDI record.
type Individual struct {
	Xref     string        `json:"xref,omitempty"`
	Name     *Name         `json:"name,omitempty"`
	Sex      Gender        `json:"sex"`
	Families []*FamilyLink `json:"families"`
	Events   []*Event      `json:"events"`
	Note     string        `json:"note,omitempty"`
	NoteRef  *Link         `json:"note_ref,omitempty"`
	Change   *ChangeDate   `json:"change,omitempty"`
	UserData
}

// NewIndividual creates an individual from its declared xref id, if any.
func NewIndividual(xref string) *Individual {
	return &Individual{
		Xref:     xref,
		Families: make([]*FamilyLink, 0),
		Events:   make([]*Event, 0),
	}
}

// AddEvent appends a life event.
func (i *Individual) AddEvent(e *Event) {
	i.Events = append(i.Events, e)
}

// AddFamilyLink appends a link into a family. A second link to the same
// family is ignored; exports occasionally repeat them.
func (i *Individual) AddFamilyLink(l *FamilyLink) {
	for _, fl := range i.Families {
		if fl.Family.Xref == l.Family.Xref && fl.Relation == l.Relation {
			return
		}
	}
	i.Families = append(i.Families, l)
}

// Name is a personal name with its optional name pieces. Value keeps the
// composite form, with slashes around the surname as written.
type Name struct {
	Value         string `json:"value,omitempty"`
	Given         string `json:"given,omitempty"`
	Surname       string `json:"surname,omitempty"`
	Prefix        string `json:"prefix,omitempty"`
	SurnamePrefix string `json:"surname_prefix,omitempty"`
	Suffix        string `json:"suffix,omitempty"`
}

// Gender of an individual, the SEX line.
type Gender int8

// Gender values. GEDCOM writes them as single letters M/F/N/U.
const (
	Unknown Gender = iota
	Male
	Female
	Nonbinary
)

// ParseGender reads a SEX line value.
func ParseGender(s string) (Gender, bool) {
	switch s {
	case "M":
		return Male, true
	case "F":
		return Female, true
	case "N":
		return Nonbinary, true
	case "U", "":
		return Unknown, true
	}
	return Unknown, false
}

func (g Gender) String() string {
	switch g {
	case Male:
		return "Male"
	case Female:
		return "Female"
	case Nonbinary:
		return "Nonbinary"
	}
	return "Unknown"
}

// MarshalJSON writes the gender as its name, not as a bare number.
func (g Gender) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

// UnmarshalJSON accepts the names produced by MarshalJSON.
func (g *Gender) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "Male":
		*g = Male
	case "Female":
		*g = Female
	case "Nonbinary":
		*g = Nonbinary
	case "Unknown":
		*g = Unknown
	default:
		return fmt.Errorf("unknown gender %q", s)
	}
	return nil
}

// Relation is the role an individual has within a linked family.
type Relation string

// Relations, determined by the linking tag (FAMS or FAMC).
const (
	Spouse Relation = "spouse"
	Child  Relation = "child"
)

// A FamilyLink connects an individual to a family record, from the FAMS and
// FAMC lines. Family is a pointer into the file, resolved after the scan.
type FamilyLink struct {
	Family   *Link    `json:"family"`
	Relation Relation `json:"relation"`
	Pedigree string   `json:"pedigree,omitempty"` // adopted, birth, foster, sealing
}
