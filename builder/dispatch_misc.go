package builder

import (
	"github.com/genealogit/gedgo"
	"github.com/genealogit/gedgo/model"
)

// --- Source records -----------------------------------------------------

var sourceTags = map[string]handler{
	"DATA": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		return &frame{kind: nSourceData, node: &p.node.(*model.Source).Data}
	},
	"ABBR": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Source).Abbreviation = tok.Value
		return nil
	},
	"TITL": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Source).Title = tok.Value
		return nil
	},
	"AUTH": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Source).Author = tok.Value
		return nil
	},
	"PUBL": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Source).Publication = tok.Value
		return nil
	},
	"TEXT": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Source).Text = tok.Value
		return nil
	},
	"REPO": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		rc := &model.RepoCitation{Repository: model.NewLink(tok.Value, tok.Line)}
		p.node.(*model.Source).AddRepoCitation(rc)
		return &frame{kind: nRepoCitation, node: rc}
	},
	"NOTE": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		src := p.node.(*model.Source)
		if tok.IsPointer() {
			src.NoteRef = model.NewLink(tok.Value, tok.Line)
		} else {
			src.Note = tok.Value
		}
		return nil
	},
	"CHAN": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		src := p.node.(*model.Source)
		return openChange(func(ch *model.ChangeDate) { src.Change = ch })
	},
}

var sourceDataTags = map[string]handler{
	"EVEN": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		ev := model.NewEvent(tok.Tag)
		ev.Type = tok.Value // EVEN lists the event kinds the source covers
		p.node.(*model.SourceData).AddEvent(ev)
		return &frame{kind: nEvent, node: ev}
	},
	"AGNC": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.SourceData).Agency = tok.Value
		return nil
	},
}

var repoCitationTags = map[string]handler{
	"CALN": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		rc := p.node.(*model.RepoCitation)
		rc.CallNumber = tok.Value
		return &frame{kind: nCallNumber, node: rc}
	},
}

var callNumberTags = map[string]handler{
	"MEDI": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.RepoCitation).Media = tok.Value
		return nil
	},
}

// --- Repository records ---------------------------------------------------

var repositoryTags = map[string]handler{
	"NAME": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Repository).Name = tok.Value
		return nil
	},
	"ADDR": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		addr := &model.Address{Value: tok.Value}
		p.node.(*model.Repository).Address = addr
		return &frame{kind: nAddress, node: addr}
	},
	"PHON": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Repository).Phone = tok.Value
		return nil
	},
	"EMAIL": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Repository).Email = tok.Value
		return nil
	},
	"WWW": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Repository).Website = tok.Value
		return nil
	},
	"NOTE": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		repo := p.node.(*model.Repository)
		if tok.IsPointer() {
			repo.NoteRef = model.NewLink(tok.Value, tok.Line)
		} else {
			repo.Note = tok.Value
		}
		return nil
	},
	"CHAN": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		repo := p.node.(*model.Repository)
		return openChange(func(ch *model.ChangeDate) { repo.Change = ch })
	},
}

// --- Submitter records ------------------------------------------------------

var submitterTags = map[string]handler{
	"NAME": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Submitter).Name = tok.Value
		return nil
	},
	"ADDR": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		addr := &model.Address{Value: tok.Value}
		p.node.(*model.Submitter).Address = addr
		return &frame{kind: nAddress, node: addr}
	},
	"PHON": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Submitter).Phone = tok.Value
		return nil
	},
	"LANG": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Submitter).Language = tok.Value
		return nil
	},
	"RIN": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Submitter).RecordID = tok.Value
		return nil
	},
	"NOTE": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		sub := p.node.(*model.Submitter)
		if tok.IsPointer() {
			sub.NoteRef = model.NewLink(tok.Value, tok.Line)
		} else {
			sub.Note = tok.Value
		}
		return nil
	},
	"CHAN": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		sub := p.node.(*model.Submitter)
		return openChange(func(ch *model.ChangeDate) { sub.Change = ch })
	},
}

// --- Submission records -------------------------------------------------

var submissionTags = map[string]handler{
	"SUBM": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Submission).Submitter = model.NewLink(tok.Value, tok.Line)
		return nil
	},
	"FAMF": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Submission).FamilyFile = tok.Value
		return nil
	},
	"TEMP": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Submission).TempleCode = tok.Value
		return nil
	},
	"ANCE": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Submission).AncestorGenerations = tok.Value
		return nil
	},
	"DESC": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Submission).DescendantGenerations = tok.Value
		return nil
	},
	"ORDI": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Submission).OrdinanceFlag = tok.Value
		return nil
	},
	"RIN": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Submission).RecordID = tok.Value
		return nil
	},
	"NOTE": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		s := p.node.(*model.Submission)
		if tok.IsPointer() {
			s.NoteRef = model.NewLink(tok.Value, tok.Line)
		} else {
			s.Note = tok.Value
		}
		return nil
	},
	"CHAN": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		s := p.node.(*model.Submission)
		return openChange(func(ch *model.ChangeDate) { s.Change = ch })
	},
}

// --- Multimedia records ---------------------------------------------------

var multimediaTags = map[string]handler{
	"FILE": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		mf := &model.MediaFile{Value: tok.Value}
		p.node.(*model.Multimedia).File = mf
		return &frame{kind: nMediaFile, node: mf}
	},
	"FORM": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		mf := &model.MediaFormat{Value: tok.Value}
		p.node.(*model.Multimedia).Form = mf
		return &frame{kind: nMediaFormat, node: mf}
	},
	"TITL": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Multimedia).Title = tok.Value
		return nil
	},
	"REFN": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		ref := &model.UserReference{Value: tok.Value}
		p.node.(*model.Multimedia).Reference = ref
		return &frame{kind: nUserRef, node: ref}
	},
	"RIN": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Multimedia).RecordID = tok.Value
		return nil
	},
	"NOTE": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		m := p.node.(*model.Multimedia)
		if tok.IsPointer() {
			m.NoteRef = model.NewLink(tok.Value, tok.Line)
		} else {
			m.Note = tok.Value
		}
		return nil
	},
	"SOUR": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		c, f := openCitation(tok)
		p.node.(*model.Multimedia).Citation = c
		return f
	},
	"CHAN": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		m := p.node.(*model.Multimedia)
		return openChange(func(ch *model.ChangeDate) { m.Change = ch })
	},
}

var mediaFileTags = map[string]handler{
	"FORM": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		mf := &model.MediaFormat{Value: tok.Value}
		p.node.(*model.MediaFile).Form = mf
		return &frame{kind: nMediaFormat, node: mf}
	},
	"TITL": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.MediaFile).Title = tok.Value
		return nil
	},
}

var mediaFormatTags = map[string]handler{
	"TYPE": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.MediaFormat).MediaType = tok.Value
		return nil
	},
}

var userRefTags = map[string]handler{
	"TYPE": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.UserReference).Type = tok.Value
		return nil
	},
}

// --- Note records -------------------------------------------------------

var noteTags = map[string]handler{
	"MIME": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Note).Mime = tok.Value
		return nil
	},
	"LANG": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Note).Language = tok.Value
		return nil
	},
	"TRAN": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		tr := &model.Translation{Value: tok.Value}
		p.node.(*model.Note).Translation = tr
		return &frame{kind: nTranslation, node: tr}
	},
	"SOUR": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		c, f := openCitation(tok)
		p.node.(*model.Note).Citation = c
		return f
	},
	"CHAN": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		n := p.node.(*model.Note)
		return openChange(func(ch *model.ChangeDate) { n.Change = ch })
	},
}

var translationTags = map[string]handler{
	"MIME": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Translation).Mime = tok.Value
		return nil
	},
	"LANG": func(b *Builder, p *frame, tok gedgo.LineToken) *frame {
		p.node.(*model.Translation).Language = tok.Value
		return nil
	},
}
