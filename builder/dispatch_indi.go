package builder

import (
	"strings"

	"github.com/genealogit/gedgo"
	"github.com/genealogit/gedgo/model"
)

// individualEventTags is the life-event tag set of the INDI record. Each of
// them opens an Event substructure; EVEN is the untyped catch-all.
var individualEventTags = []string{
	"ADOP", "BIRT", "BAPM", "BARM", "BASM", "BLES", "BURI", "CENS",
	"CHR", "CHRA", "CONF", "CREM", "DEAT", "EMIG", "FCOM", "GRAD",
	"IMMI", "NATU", "ORDN", "RETI", "RESI", "PROB", "WILL", "EVEN",
}

func openIndividualEvent(b *Builder, p *frame, tok gedgo.LineToken) *frame {
	ev := model.NewEvent(tok.Tag)
	if tok.Tag == "EVEN" {
		ev.Type = tok.Value
	}
	p.node.(*model.Individual).AddEvent(ev)
	return &frame{kind: nEvent, node: ev}
}

var individualTags = map[string]handler{
	"NAME": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		n := &model.Name{Value: tok.Value}
		p.node.(*model.Individual).Name = n
		return &frame{kind: nName, node: n}
	},
	"SEX": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		ind := p.node.(*model.Individual)
		g, ok := model.ParseGender(tok.Value)
		if !ok {
			b.diag(gedgo.UnsupportedTag, tok.Line, "unknown gender value %q", tok.Value)
			return nil
		}
		ind.Sex = g
		return nil
	},
	"FAMS": openFamilyLink,
	"FAMC": openFamilyLink,
	"NOTE": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		ind := p.node.(*model.Individual)
		if tok.IsPointer() {
			ind.NoteRef = model.NewLink(tok.Value, tok.Line)
		} else {
			ind.Note = tok.Value
		}
		return nil
	},
	"CHAN": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		ind := p.node.(*model.Individual)
		return openChange(func(ch *model.ChangeDate) { ind.Change = ch })
	},
}

func openFamilyLink(b *Builder, p *frame, tok gedgo.LineToken) *frame {
	rel := model.Spouse
	if tok.Tag == "FAMC" {
		rel = model.Child
	}
	fl := &model.FamilyLink{
		Family:   model.NewLink(tok.Value, tok.Line),
		Relation: rel,
	}
	p.node.(*model.Individual).AddFamilyLink(fl)
	return &frame{kind: nFamilyLink, node: fl}
}

// Pedigree values of the PEDI line.
var pedigrees = map[string]bool{
	"adopted": true, "birth": true, "foster": true, "sealing": true,
}

var familyLinkTags = map[string]handler{
	"PEDI": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		pedi := strings.ToLower(tok.Value)
		if !pedigrees[pedi] {
			b.diag(gedgo.UnsupportedTag, tok.Line, "unrecognized pedigree %q", tok.Value)
		}
		p.node.(*model.FamilyLink).Pedigree = pedi
		return nil
	},
}

var nameTags = map[string]handler{
	"GIVN": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Name).Given = tok.Value
		return nil
	},
	"SURN": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Name).Surname = tok.Value
		return nil
	},
	"NPFX": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Name).Prefix = tok.Value
		return nil
	},
	"SPFX": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Name).SurnamePrefix = tok.Value
		return nil
	},
	"NSFX": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Name).Suffix = tok.Value
		return nil
	},
}
