package model

import (
	"github.com/cnf/structhash"
)

// GedcomData holds every record of a parsed file, per kind and in file
// order, plus the header. It is immutable once the parse that produced it
// has returned.
type GedcomData struct {
	Header       *Header       `json:"header,omitempty"`
	Submissions  []*Submission `json:"submissions,omitempty"`
	Submitters   []*Submitter  `json:"submitters"`
	Individuals  []*Individual `json:"individuals"`
	Families     []*Family     `json:"families"`
	Sources      []*Source     `json:"sources"`
	Repositories []*Repository `json:"repositories"`
	Multimedia   []*Multimedia `json:"multimedia"`
	Notes        []*Note       `json:"notes,omitempty"`
}

// NewGedcomData creates an empty container.
func NewGedcomData() *GedcomData {
	return &GedcomData{
		Submitters:   make([]*Submitter, 0),
		Individuals:  make([]*Individual, 0),
		Families:     make([]*Family, 0),
		Sources:      make([]*Source, 0),
		Repositories: make([]*Repository, 0),
		Multimedia:   make([]*Multimedia, 0),
	}
}

// AddSubmission appends a submission record.
func (d *GedcomData) AddSubmission(s *Submission) {
	d.Submissions = append(d.Submissions, s)
}

// AddSubmitter appends a submitter record.
func (d *GedcomData) AddSubmitter(s *Submitter) {
	d.Submitters = append(d.Submitters, s)
}

// AddIndividual appends an individual record.
func (d *GedcomData) AddIndividual(i *Individual) {
	d.Individuals = append(d.Individuals, i)
}

// AddFamily appends a family record.
func (d *GedcomData) AddFamily(f *Family) {
	d.Families = append(d.Families, f)
}

// AddSource appends a source record.
func (d *GedcomData) AddSource(s *Source) {
	d.Sources = append(d.Sources, s)
}

// AddRepository appends a repository record.
func (d *GedcomData) AddRepository(r *Repository) {
	d.Repositories = append(d.Repositories, r)
}

// AddMultimedia appends a multimedia record.
func (d *GedcomData) AddMultimedia(m *Multimedia) {
	d.Multimedia = append(d.Multimedia, m)
}

// AddNote appends a standalone note record.
func (d *GedcomData) AddNote(n *Note) {
	d.Notes = append(d.Notes, n)
}

// Stats are the derived per-kind record counts of a file.
type Stats struct {
	Submissions  int `json:"submissions"`
	Submitters   int `json:"submitters"`
	Individuals  int `json:"individuals"`
	Families     int `json:"families"`
	Sources      int `json:"sources"`
	Repositories int `json:"repositories"`
	Multimedia   int `json:"multimedia"`
	Notes        int `json:"notes"`
}

// Stats derives the summary counts, purely from sequence lengths.
func (d *GedcomData) Stats() Stats {
	return Stats{
		Submissions:  len(d.Submissions),
		Submitters:   len(d.Submitters),
		Individuals:  len(d.Individuals),
		Families:     len(d.Families),
		Sources:      len(d.Sources),
		Repositories: len(d.Repositories),
		Multimedia:   len(d.Multimedia),
		Notes:        len(d.Notes),
	}
}

// Fingerprint returns a structural hash over the whole container. Two parses
// of the same input yield the same fingerprint.
func (d *GedcomData) Fingerprint() (string, error) {
	return structhash.Hash(d, 1)
}
