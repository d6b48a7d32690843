package model

// Source is a SOUR record: where genealogy facts were found.
type Source struct {
	Xref         string          `json:"xref,omitempty"`
	Data         SourceData      `json:"data"`
	Abbreviation string          `json:"abbreviation,omitempty"`
	Title        string          `json:"title,omitempty"`
	Author       string          `json:"author,omitempty"`
	Publication  string          `json:"publication,omitempty"`
	Text         string          `json:"text,omitempty"`
	Repositories []*RepoCitation `json:"repo_citations"`
	Note         string          `json:"note,omitempty"`
	NoteRef      *Link           `json:"note_ref,omitempty"`
	Change       *ChangeDate     `json:"change,omitempty"`
	UserData
}

// NewSource creates a source from its declared xref id, if any.
func NewSource(xref string) *Source {
	return &Source{
		Xref:         xref,
		Data:         SourceData{Events: make([]*Event, 0)},
		Repositories: make([]*RepoCitation, 0),
	}
}

// AddRepoCitation appends a citation into a repository.
func (s *Source) AddRepoCitation(rc *RepoCitation) {
	s.Repositories = append(s.Repositories, rc)
}

// SourceData describes what a source covers (the DATA structure).
type SourceData struct {
	Events []*Event `json:"events"`
	Agency string   `json:"agency,omitempty"`
}

// AddEvent appends an event kind this source has data about.
func (sd *SourceData) AddEvent(e *Event) {
	sd.Events = append(sd.Events, e)
}

// A SourceCitation points from a fact to the source record supporting it.
type SourceCitation struct {
	Source  *Link  `json:"source"`
	Page    string `json:"page,omitempty"`
	Quality string `json:"quality,omitempty"` // QUAY, the submitter's confidence
	Date    string `json:"date,omitempty"`    // DATA.DATE
	Text    string `json:"text,omitempty"`    // DATA.TEXT
}

// A RepoCitation links a source to the repository holding it.
type RepoCitation struct {
	Repository *Link  `json:"repository"`
	CallNumber string `json:"call_number,omitempty"`
	Media      string `json:"media,omitempty"` // CALN.MEDI
}
