package builder

import (
	"github.com/genealogit/gedgo"
	"github.com/genealogit/gedgo/model"
)

var headerTags = map[string]handler{
	"CHAR": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		h := p.node.(*model.Header)
		h.Encoding = tok.Value
		return &frame{kind: nCharset, node: h}
	},
	"SOUR": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		hs := &model.HeaderSource{Value: tok.Value}
		p.node.(*model.Header).Source = hs
		return &frame{kind: nHeaderSource, node: hs}
	},
	"DEST": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Header).AddDestination(tok.Value)
		return nil
	},
	"DATE": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		h := p.node.(*model.Header)
		h.Date = tok.Value
		return &frame{kind: nHeaderDate, node: h}
	},
	"SUBM": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Header).Submitter = model.NewLink(tok.Value, tok.Line)
		return nil
	},
	"SUBN": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Header).Submission = model.NewLink(tok.Value, tok.Line)
		return nil
	},
	"FILE": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Header).Filename = tok.Value
		return nil
	},
	"COPR": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Header).Copyright = tok.Value
		return nil
	},
	"GEDC": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		v := &model.GedcomVersion{}
		p.node.(*model.Header).Version = v
		return &frame{kind: nGedc, node: v}
	},
	"LANG": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Header).Language = tok.Value
		return nil
	},
	"NOTE": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		h := p.node.(*model.Header)
		if tok.IsPointer() {
			h.NoteRef = model.NewLink(tok.Value, tok.Line)
		} else {
			h.Note = tok.Value
		}
		return nil
	},
}

var charsetTags = map[string]handler{
	"VERS": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Header).EncodingVersion = tok.Value
		return nil
	},
}

// TIME folds into the header's DATE value, the way producers expect it to
// be read back.
var headerDateTags = map[string]handler{
	"TIME": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		h := p.node.(*model.Header)
		if h.Date == "" {
			h.Date = tok.Value
			return nil
		}
		h.Date = h.Date + " " + tok.Value
		return nil
	},
}

var gedcTags = map[string]handler{
	"VERS": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.GedcomVersion).Version = tok.Value
		return nil
	},
	"FORM": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.GedcomVersion).Form = tok.Value
		return nil
	},
}

var headerSourceTags = map[string]handler{
	"VERS": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.HeaderSource).Version = tok.Value
		return nil
	},
	"NAME": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.HeaderSource).Name = tok.Value
		return nil
	},
	"CORP": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		c := &model.Corporation{Value: tok.Value}
		p.node.(*model.HeaderSource).Corporation = c
		return &frame{kind: nCorporation, node: c}
	},
}

var corporationTags = map[string]handler{
	"ADDR": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		addr := &model.Address{Value: tok.Value}
		p.node.(*model.Corporation).Address = addr
		return &frame{kind: nAddress, node: addr}
	},
	"PHON": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Corporation).Phone = tok.Value
		return nil
	},
	"EMAIL": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Corporation).Email = tok.Value
		return nil
	},
	"FAX": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Corporation).Fax = tok.Value
		return nil
	},
	"WWW": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Corporation).Website = tok.Value
		return nil
	},
}
