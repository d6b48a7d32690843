package builder

import (
	"github.com/genealogit/gedgo"
	"github.com/genealogit/gedgo/model"
)

// nodeKind identifies what an open node on the stack is, so the dispatcher
// can pick the tag table for it. Record kinds and substructure kinds share
// the enumeration; nIgnore marks subtrees that are skipped wholesale.
type nodeKind int8

const (
	nIgnore nodeKind = iota
	// top-level records
	nHeader
	nSubmission
	nSubmitter
	nIndividual
	nFamily
	nSource
	nRepository
	nMultimedia
	nNote
	// substructures
	nName
	nEvent
	nPlace
	nFamilyLink
	nAddress
	nChangeDate
	nChangeDateDate
	nCitation
	nCitationData
	nRepoCitation
	nCallNumber
	nSourceData
	nHeaderSource
	nCorporation
	nGedc
	nHeaderDate
	nCharset
	nMediaFile
	nMediaFormat
	nUserRef
	nTranslation
)

func (k nodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "ignored"
}

var nodeKindNames = map[nodeKind]string{
	nHeader: "header", nSubmission: "submission", nSubmitter: "submitter",
	nIndividual: "individual", nFamily: "family", nSource: "source",
	nRepository: "repository", nMultimedia: "multimedia", nNote: "note",
	nName: "name", nEvent: "event", nPlace: "place", nFamilyLink: "family link",
	nAddress: "address", nChangeDate: "change date", nChangeDateDate: "change date",
	nCitation: "source citation", nCitationData: "citation data",
	nRepoCitation: "repository citation", nCallNumber: "call number",
	nSourceData: "source data", nHeaderSource: "header source",
	nCorporation: "corporation", nGedc: "gedcom version", nHeaderDate: "header date",
	nCharset: "character set", nMediaFile: "media file", nMediaFormat: "media format",
	nUserRef: "user reference", nTranslation: "translation",
}

// recordKind maps stack node kinds onto the public record kinds.
func (k nodeKind) recordKind() model.RecordKind {
	switch k {
	case nHeader:
		return model.KindHeader
	case nSubmission:
		return model.KindSubmission
	case nSubmitter:
		return model.KindSubmitter
	case nIndividual:
		return model.KindIndividual
	case nFamily:
		return model.KindFamily
	case nSource:
		return model.KindSource
	case nRepository:
		return model.KindRepository
	case nMultimedia:
		return model.KindMultimedia
	case nNote:
		return model.KindNote
	}
	return model.KindUnknown
}

// tagTrailer ends the file; it opens nothing and needs no diagnostic.
const tagTrailer = "TRLR"

// newRecord creates the node for a level-0 line. Unknown tags yield nIgnore.
func newRecord(tok gedgo.LineToken) (nodeKind, interface{}) {
	switch tok.Tag {
	case "HEAD":
		return nHeader, &model.Header{}
	case "SUBN":
		return nSubmission, &model.Submission{Xref: tok.XRef}
	case "SUBM":
		return nSubmitter, &model.Submitter{Xref: tok.XRef}
	case "INDI":
		return nIndividual, model.NewIndividual(tok.XRef)
	case "FAM":
		return nFamily, model.NewFamily(tok.XRef)
	case "SOUR":
		return nSource, model.NewSource(tok.XRef)
	case "REPO":
		return nRepository, &model.Repository{Xref: tok.XRef}
	case "OBJE":
		return nMultimedia, &model.Multimedia{Xref: tok.XRef}
	case "NOTE":
		return nNote, &model.Note{Xref: tok.XRef, Value: tok.Value}
	}
	return nIgnore, nil
}

// A handler interprets one tag in the context of the node it appears under.
// It mutates the parent's node and returns a new frame when the tag opens a
// substructure of its own (the builder stamps the frame's level).
type handler func(b *Builder, parent *frame, tok gedgo.LineToken) *frame

// dispatch holds one tag table per node kind. Tags missing from a table are
// unsupported in that context and end up in the record's skip list.
var dispatch map[nodeKind]map[string]handler

func init() {
	dispatch = map[nodeKind]map[string]handler{
		nHeader:         headerTags,
		nHeaderSource:   headerSourceTags,
		nCorporation:    corporationTags,
		nGedc:           gedcTags,
		nHeaderDate:     headerDateTags,
		nCharset:        charsetTags,
		nSubmission:     submissionTags,
		nSubmitter:      submitterTags,
		nIndividual:     individualTags,
		nName:           nameTags,
		nFamilyLink:     familyLinkTags,
		nFamily:         familyTags,
		nEvent:          eventTags,
		nPlace:          placeTags,
		nAddress:        addressTags,
		nChangeDate:     changeDateTags,
		nChangeDateDate: changeDateDateTags,
		nCitation:       citationTags,
		nCitationData:   citationDataTags,
		nSource:         sourceTags,
		nSourceData:     sourceDataTags,
		nRepoCitation:   repoCitationTags,
		nCallNumber:     callNumberTags,
		nRepository:     repositoryTags,
		nMultimedia:     multimediaTags,
		nMediaFile:      mediaFileTags,
		nMediaFormat:    mediaFormatTags,
		nUserRef:        userRefTags,
		nNote:           noteTags,
		nTranslation:    translationTags,
	}
	for _, tag := range individualEventTags {
		individualTags[tag] = openIndividualEvent
	}
	for _, tag := range familyEventTags {
		familyTags[tag] = openFamilyEvent
	}
}

// --- Shared substructures ---------------------------------------------------

var addressTags = map[string]handler{
	"ADR1": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Address).Line1 = tok.Value
		return nil
	},
	"ADR2": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Address).Line2 = tok.Value
		return nil
	},
	"ADR3": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Address).Line3 = tok.Value
		return nil
	},
	"CITY": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Address).City = tok.Value
		return nil
	},
	"STAE": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Address).State = tok.Value
		return nil
	},
	"POST": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Address).PostalCode = tok.Value
		return nil
	},
	"CTRY": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Address).Country = tok.Value
		return nil
	},
}

var placeTags = map[string]handler{
	"FORM": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Place).Form = tok.Value
		return nil
	},
}

var changeDateTags = map[string]handler{
	"DATE": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		ch := p.node.(*model.ChangeDate)
		ch.Date = tok.Value
		return &frame{kind: nChangeDateDate, node: ch}
	},
	"NOTE": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.ChangeDate).Note = tok.Value
		return nil
	},
}

var changeDateDateTags = map[string]handler{
	"TIME": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.ChangeDate).Time = tok.Value
		return nil
	},
}

var citationTags = map[string]handler{
	"PAGE": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.SourceCitation).Page = tok.Value
		return nil
	},
	"QUAY": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.SourceCitation).Quality = tok.Value
		return nil
	},
	"TEXT": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.SourceCitation).Text = tok.Value
		return nil
	},
	"DATA": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		return &frame{kind: nCitationData, node: p.node}
	},
}

var citationDataTags = map[string]handler{
	"DATE": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.SourceCitation).Date = tok.Value
		return nil
	},
	"TEXT": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.SourceCitation).Text = tok.Value
		return nil
	},
}

// openCitation starts a SOUR citation under an event or record. The value
// is a pointer to a source record for conformant files, but some producers
// inline the source text instead; both forms are kept.
func openCitation(tok gedgo.LineToken) (*model.SourceCitation, *frame) {
	c := &model.SourceCitation{}
	if tok.IsPointer() {
		c.Source = model.NewLink(tok.Value, tok.Line)
	} else {
		c.Text = tok.Value
	}
	return c, &frame{kind: nCitation, node: c}
}

var eventTags = map[string]handler{
	"TYPE": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Event).Type = tok.Value
		return nil
	},
	"DATE": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Event).SetDate(tok.Value)
		return nil
	},
	"PLAC": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		pl := &model.Place{Value: tok.Value}
		p.node.(*model.Event).Place = pl
		return &frame{kind: nPlace, node: pl}
	},
	"ADDR": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		addr := &model.Address{Value: tok.Value}
		p.node.(*model.Event).Address = addr
		return &frame{kind: nAddress, node: addr}
	},
	"AGNC": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Event).Agency = tok.Value
		return nil
	},
	"CAUS": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Event).Cause = tok.Value
		return nil
	},
	"SOUR": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		c, f := openCitation(tok)
		p.node.(*model.Event).AddCitation(c)
		return f
	},
	"NOTE": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Event).Note = tok.Value
		return nil
	},
}

// openChange starts a CHAN structure and stores it through set.
func openChange(set func(*model.ChangeDate)) *frame {
	ch := &model.ChangeDate{}
	set(ch)
	return &frame{kind: nChangeDate, node: ch}
}
