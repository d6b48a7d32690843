package model

// Header carries the file metadata of the HEAD record.
type Header struct {
	Encoding        string         `json:"encoding,omitempty"` // CHAR
	EncodingVersion string         `json:"encoding_version,omitempty"`
	Source          *HeaderSource  `json:"source,omitempty"` // the producing system
	Destinations    []string       `json:"destinations,omitempty"`
	Date            string         `json:"date,omitempty"` // with TIME folded in
	Submitter       *Link          `json:"submitter,omitempty"`
	Submission      *Link          `json:"submission,omitempty"`
	Filename        string         `json:"filename,omitempty"`
	Copyright       string         `json:"copyright,omitempty"`
	Version         *GedcomVersion `json:"gedcom,omitempty"` // GEDC
	Language        string         `json:"language,omitempty"`
	Note            string         `json:"note,omitempty"`
	NoteRef         *Link          `json:"note_ref,omitempty"`
	UserData
}

// AddDestination appends a receiving-system id (DEST).
func (h *Header) AddDestination(dest string) {
	h.Destinations = append(h.Destinations, dest)
}

// GedcomVersion is the GEDC structure: version and form of the file itself.
type GedcomVersion struct {
	Version string `json:"version,omitempty"` // e.g. "5.5.1"
	Form    string `json:"form,omitempty"`    // e.g. "LINEAGE-LINKED"
}

// HeaderSource identifies the system that produced the file (HEAD.SOUR).
type HeaderSource struct {
	Value       string       `json:"value,omitempty"` // system id
	Version     string       `json:"version,omitempty"`
	Name        string       `json:"name,omitempty"`
	Corporation *Corporation `json:"corporation,omitempty"`
}

// Corporation names the business that produced or commissioned the product.
type Corporation struct {
	Value   string   `json:"value,omitempty"`
	Address *Address `json:"address,omitempty"`
	Phone   string   `json:"phone,omitempty"`
	Email   string   `json:"email,omitempty"`
	Fax     string   `json:"fax,omitempty"`
	Website string   `json:"website,omitempty"`
}
