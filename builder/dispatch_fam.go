package builder

import (
	"strconv"

	"github.com/genealogit/gedgo"
	"github.com/genealogit/gedgo/model"
)

// familyEventTags is the event tag set of the FAM record.
var familyEventTags = []string{
	"ANUL", "CENS", "DIV", "DIVF", "ENGA",
	"MARB", "MARC", "MARR", "MARL", "MARS", "EVEN",
}

func openFamilyEvent(b *Builder, p *frame, tok gedgo.LineToken) *frame {
	ev := model.NewEvent(tok.Tag)
	if tok.Tag == "EVEN" {
		ev.Type = tok.Value
	}
	p.node.(*model.Family).AddEvent(ev)
	return &frame{kind: nEvent, node: ev}
}

var familyTags = map[string]handler{
	"HUSB": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		fam := p.node.(*model.Family)
		if fam.Individual1 != nil {
			tracer().Infof("line %d: HUSB already set on %s, keeping the first", tok.Line, fam.Xref)
			return nil
		}
		fam.Individual1 = model.NewLink(tok.Value, tok.Line)
		return nil
	},
	"WIFE": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		fam := p.node.(*model.Family)
		if fam.Individual2 != nil {
			tracer().Infof("line %d: WIFE already set on %s, keeping the first", tok.Line, fam.Xref)
			return nil
		}
		fam.Individual2 = model.NewLink(tok.Value, tok.Line)
		return nil
	},
	"CHIL": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Family).AddChild(model.NewLink(tok.Value, tok.Line))
		return nil
	},
	"NCHI": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		n, err := strconv.Atoi(tok.Value)
		if err != nil || n < 0 {
			b.diag(gedgo.UnsupportedTag, tok.Line, "unparsable child count %q", tok.Value)
			return nil
		}
		p.node.(*model.Family).NumChildren = n
		return nil
	},
	"NOTE": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		fam := p.node.(*model.Family)
		if tok.IsPointer() {
			fam.NoteRef = model.NewLink(tok.Value, tok.Line)
		} else {
			fam.Note = tok.Value
		}
		return nil
	},
	"CHAN": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		fam := p.node.(*model.Family)
		return openChange(func(ch *model.ChangeDate) { fam.Change = ch })
	},
}
