package model

// Repository is a REPO record: an archive or institution holding sources.
type Repository struct {
	Xref    string      `json:"xref,omitempty"`
	Name    string      `json:"name,omitempty"`
	Address *Address    `json:"address,omitempty"`
	Phone   string      `json:"phone,omitempty"`
	Email   string      `json:"email,omitempty"`
	Website string      `json:"website,omitempty"`
	Note    string      `json:"note,omitempty"`
	NoteRef *Link       `json:"note_ref,omitempty"`
	Change  *ChangeDate `json:"change,omitempty"`
	UserData
}

// Submitter is a SUBM record: who reported the genealogy facts.
type Submitter struct {
	Xref     string      `json:"xref,omitempty"`
	Name     string      `json:"name,omitempty"`
	Address  *Address    `json:"address,omitempty"`
	Phone    string      `json:"phone,omitempty"`
	Language string      `json:"language,omitempty"`
	RecordID string      `json:"record_id,omitempty"` // RIN
	Note     string      `json:"note,omitempty"`
	NoteRef  *Link       `json:"note_ref,omitempty"`
	Change   *ChangeDate `json:"change,omitempty"`
	UserData
}

// Submission is a SUBN record, used by the sending system to pass
// instructions to the receiving system. Files should carry at most one.
type Submission struct {
	Xref                  string      `json:"xref,omitempty"`
	Submitter             *Link       `json:"submitter,omitempty"`
	FamilyFile            string      `json:"family_file,omitempty"` // FAMF
	TempleCode            string      `json:"temple_code,omitempty"`
	AncestorGenerations   string      `json:"generations_of_ancestors,omitempty"`
	DescendantGenerations string      `json:"generations_of_descendants,omitempty"`
	OrdinanceFlag         string      `json:"ordinance_process_flag,omitempty"`
	RecordID              string      `json:"record_id,omitempty"`
	Note                  string      `json:"note,omitempty"`
	NoteRef               *Link       `json:"note_ref,omitempty"`
	Change                *ChangeDate `json:"change,omitempty"`
	UserData
}

// Multimedia is an OBJE record referring to external digital files.
//
// The 5.5 spec shows FORM and TITL as substructures of FILE, but several
// producers emit them as siblings; both spellings land in the same fields.
type Multimedia struct {
	Xref      string          `json:"xref,omitempty"`
	File      *MediaFile      `json:"file,omitempty"`
	Form      *MediaFormat    `json:"form,omitempty"`
	Title     string          `json:"title,omitempty"`
	Reference *UserReference  `json:"user_reference,omitempty"` // REFN
	RecordID  string          `json:"record_id,omitempty"`
	Citation  *SourceCitation `json:"citation,omitempty"`
	Note      string          `json:"note,omitempty"`
	NoteRef   *Link           `json:"note_ref,omitempty"`
	Change    *ChangeDate     `json:"change,omitempty"`
	UserData
}

// MediaFile is a local or remote file reference (FILE).
type MediaFile struct {
	Value string       `json:"value,omitempty"`
	Form  *MediaFormat `json:"form,omitempty"`
	Title string       `json:"title,omitempty"`
}

// MediaFormat describes the format of a referenced file (FORM, with an
// optional TYPE classifier).
type MediaFormat struct {
	Value     string `json:"value,omitempty"`
	MediaType string `json:"media_type,omitempty"`
}

// UserReference is a submitter-defined reference number (REFN).
type UserReference struct {
	Value string `json:"value,omitempty"`
	Type  string `json:"type,omitempty"`
}

// Note is a standalone NOTE record. Inline notes attached to other records
// live in those records' Note fields; this type only backs `0 @N1@ NOTE`.
type Note struct {
	Xref        string          `json:"xref,omitempty"`
	Value       string          `json:"value,omitempty"`
	Mime        string          `json:"mime,omitempty"`
	Language    string          `json:"language,omitempty"`
	Translation *Translation    `json:"translation,omitempty"`
	Citation    *SourceCitation `json:"citation,omitempty"`
	Change      *ChangeDate     `json:"change,omitempty"`
	UserData
}

// Translation is a TRAN structure of a note.
type Translation struct {
	Value    string `json:"value,omitempty"`
	Mime     string `json:"mime,omitempty"`
	Language string `json:"language,omitempty"`
}
