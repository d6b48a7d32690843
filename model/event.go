package model

import "github.com/genealogit/gedgo/date"

// An Event is a fact attached to an individual, family or source: birth,
// death, marriage and the rest of the GEDCOM event tag set. Tag keeps the
// originating tag; Type carries the free-text TYPE classifier, which for
// generic EVEN lines is all the typing there is.
type Event struct {
	Tag       string            `json:"event"`
	Type      string            `json:"type,omitempty"`
	Date      string            `json:"date,omitempty"`
	When      *date.Date        `json:"when,omitempty"` // interpreted form of Date
	Place     *Place            `json:"place,omitempty"`
	Address   *Address          `json:"address,omitempty"`
	Agency    string            `json:"agency,omitempty"`
	Cause     string            `json:"cause,omitempty"`
	Citations []*SourceCitation `json:"citations"`
	Note      string            `json:"note,omitempty"`
	UserData
}

// NewEvent creates an event for the given originating tag.
func NewEvent(tag string) *Event {
	return &Event{
		Tag:       tag,
		Citations: make([]*SourceCitation, 0),
	}
}

// AddCitation appends a source citation supporting this event.
func (e *Event) AddCitation(c *SourceCitation) {
	e.Citations = append(e.Citations, c)
}

// SetDate stores a DATE value, both raw and interpreted.
func (e *Event) SetDate(value string) {
	e.Date = value
	if d, ok := date.Parse(value); ok {
		e.When = d
	}
}

// Place is where an event occurred: a comma-separated jurisdiction list,
// optionally typed by a FORM line.
type Place struct {
	Value string `json:"value,omitempty"`
	Form  string `json:"form,omitempty"`
}
