package model

// Family is a relationship between individuals, the FAM record.
//
// HUSB and WIFE are understood as poorly named pointers to individuals;
// no gender checking is done on parse.
type Family struct {
	Xref        string      `json:"xref,omitempty"`
	Individual1 *Link       `json:"individual1,omitempty"` // mapped from HUSB
	Individual2 *Link       `json:"individual2,omitempty"` // mapped from WIFE
	Children    []*Link     `json:"children"`
	NumChildren int         `json:"num_children,omitempty"`
	Events      []*Event    `json:"events"`
	Note        string      `json:"note,omitempty"`
	NoteRef     *Link       `json:"note_ref,omitempty"`
	Change      *ChangeDate `json:"change,omitempty"`
	UserData
}

// NewFamily creates a family from its declared xref id, if any.
func NewFamily(xref string) *Family {
	return &Family{
		Xref:     xref,
		Children: make([]*Link, 0),
		Events:   make([]*Event, 0),
	}
}

// AddChild appends a child pointer.
func (f *Family) AddChild(l *Link) {
	f.Children = append(f.Children, l)
}

// AddEvent appends a family event (marriage, divorce, …).
func (f *Family) AddEvent(e *Event) {
	f.Events = append(f.Events, e)
}
