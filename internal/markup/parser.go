package markup

import "strings"

// Parser turns markup text into a Document. The zero-configuration parser
// uses LenientRecovery and discards log output. A Parser holds no per-call
// state, so one instance may be shared across goroutines; each Parse call
// keeps its own cursor, counters and warnings.
type Parser struct {
	handler RecoveryHandler
	logger  ErrorLogger
}

// Option configures a Parser.
type Option func(*Parser)

// WithHandler selects the recovery strategy consulted on every fault.
func WithHandler(h RecoveryHandler) Option {
	return func(p *Parser) { p.handler = h }
}

// WithLogger routes warnings and errors to l as they are recorded.
func WithLogger(l ErrorLogger) Option {
	return func(p *Parser) { p.logger = l }
}

// NewParser returns a Parser with the given options applied.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		handler: LenientRecovery{},
		logger:  nopLogger{},
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// ParseResult is a successfully built Document plus every warning the
// recovery layer absorbed on the way.
type ParseResult struct {
	Document *Document
	Warnings []Warning
}

// Parse tokenizes and parses src. Faults are routed through the configured
// RecoveryHandler; unless it aborts, Parse succeeds and reports the
// degradations as warnings. A failed tokenization degrades the whole
// document to plain text, one TextBlock per non-empty line.
func (p *Parser) Parse(src string) (*ParseResult, error) {
	toks, err := Tokenize(src)
	if err != nil {
		terr := err.(*TokenizeError)
		if p.handler.Handle(terr, RecoveryContext{Content: src, Pos: terr.Pos}) == Abort {
			p.logger.LogError(err, map[string]string{"stage": "tokenize"})
			return nil, err
		}
		return p.plainTextFallback(src, terr), nil
	}

	r := &run{p: p, toks: toks}
	doc, err := r.parseDocument()
	if err != nil {
		return nil, err
	}
	return &ParseResult{Document: doc, Warnings: r.warnings}, nil
}

// run is the mutable state of one Parse call.
type run struct {
	p        *Parser
	toks     []Token
	pos      int
	openTags []string
	warnings []Warning
}

func (r *run) parseDocument() (*Document, error) {
	doc := &Document{}
	r.skipNewlines()
	if t, ok := r.cur(); ok && t.Kind == TokenStartTag && classifyTag(t.Name) == tagTitle && !t.SelfClosing {
		title, err := r.parseTitle(t)
		if err != nil {
			return nil, err
		}
		doc.Title = title
	}
	for {
		r.skipNewlines()
		t, ok := r.cur()
		if !ok {
			return doc, nil
		}
		bs, err := r.parseBlock(t)
		if err != nil {
			return nil, err
		}
		doc.Blocks = append(doc.Blocks, bs...)
	}
}

func (r *run) parseTitle(start Token) (string, error) {
	r.next()
	var sb strings.Builder
	for {
		t, ok := r.cur()
		if !ok {
			perr := &ParseError{Kind: ErrUnexpectedEOF, Element: "title", Pos: start.Pos}
			strat, err := r.resolve(perr, RecoveryContext{Element: "title", Content: sb.String(), Pos: start.Pos})
			if strat == Abort {
				return "", err
			}
			if strat != UseDefaultValue {
				r.warn(WarnOther, start.Pos, "title not closed before end of input")
			}
			return sb.String(), nil
		}
		switch t.Kind {
		case TokenText:
			sb.WriteString(t.Text)
			r.next()
		case TokenNewline:
			r.next()
		case TokenEndTag:
			if classifyTag(t.Name) == tagTitle {
				r.next()
				return sb.String(), nil
			}
			perr := &ParseError{Kind: ErrUnmatchedTag, Expected: "title", Found: t.Name, Pos: t.Pos}
			strat, err := r.resolve(perr, RecoveryContext{Element: "title", Content: sb.String(), Pos: t.Pos})
			if strat == Abort {
				return "", err
			}
			r.next()
			if strat != UseDefaultValue {
				r.warn(WarnOther, t.Pos, "stray </%s> inside title", t.Name)
			}
		case TokenStartTag:
			perr := &ParseError{Kind: ErrUnmatchedTag, Expected: "title", Found: t.Name, Pos: t.Pos}
			strat, err := r.resolve(perr, RecoveryContext{Element: "title", Content: sb.String(), Pos: t.Pos})
			if strat == Abort {
				return "", err
			}
			r.next()
			if strat != UseDefaultValue {
				r.warn(WarnOther, t.Pos, "tag <%s> inside title ignored", t.Name)
			}
		}
	}
}

// parseBlock dispatches on the current token and returns zero or more
// blocks. Zero blocks means the token(s) were consumed without producing a
// node: markers, skipped elements, stray closers.
func (r *run) parseBlock(t Token) ([]Block, error) {
	switch t.Kind {
	case TokenText:
		// A bare line outside any tag. Notes written before the tagged
		// format are plain text, so this stays a first-class case.
		return r.parseImplicitText()
	case TokenEndTag:
		perr := &ParseError{Kind: ErrUnmatchedTag, Found: t.Name, Pos: t.Pos}
		strat, err := r.resolve(perr, RecoveryContext{Element: t.Name, Pos: t.Pos})
		if strat == Abort {
			return nil, err
		}
		r.next()
		if strat != UseDefaultValue {
			r.warn(WarnOther, t.Pos, "stray closing tag </%s>", t.Name)
		}
		return nil, nil
	}

	switch k := classifyTag(t.Name); k {
	case tagNewFormat:
		// Format marker, metadata only. No node, no warning.
		r.next()
		r.consumeEndTag(t.Name)
		return nil, nil
	case tagText:
		return r.parseTextBlock(t)
	case tagBullet, tagOrder, tagInput:
		return r.parseListItem(t, k)
	case tagHR:
		r.next()
		r.consumeEndTag("hr")
		return []Block{&HorizontalRule{}}, nil
	case tagImg:
		return r.parseImage(t)
	case tagSound:
		return r.parseAudio(t)
	case tagQuote:
		return r.parseQuote(t)
	default:
		if _, isFormat := k.formatKind(); isFormat {
			// A formatting tag with no wrapping <text>; keep the line.
			return r.parseImplicitText()
		}
		return r.unknownBlock(t)
	}
}

func (r *run) parseImplicitText() ([]Block, error) {
	content, keep, err := r.parseInlineSeq("", false)
	if err != nil {
		return nil, err
	}
	if !keep || len(content) == 0 {
		return nil, nil
	}
	return []Block{&TextBlock{Indent: 1, Content: content}}, nil
}

func (r *run) parseTextBlock(t Token) ([]Block, error) {
	r.next()
	indent := r.intAttr(t.Attrs, "indent", 1, t.Pos)
	if t.SelfClosing {
		return []Block{&TextBlock{Indent: indent}}, nil
	}
	r.openTags = append(r.openTags, "text")
	content, keep, err := r.parseInlineSeq("text", false)
	r.openTags = r.openTags[:len(r.openTags)-1]
	if err != nil {
		return nil, err
	}
	if !keep {
		return nil, nil
	}
	return []Block{&TextBlock{Indent: indent, Content: content}}, nil
}

func (r *run) parseListItem(t Token, k tagKind) ([]Block, error) {
	r.next()
	r.consumeEndTag(t.Name)

	if k == tagInput && t.Attrs["type"] != "checkbox" {
		perr := &ParseError{Kind: ErrUnsupportedElement, Element: t.Name, Pos: t.Pos}
		strat, err := r.resolve(perr, RecoveryContext{Element: t.Name, Pos: t.Pos})
		if strat == Abort {
			return nil, err
		}
		if strat != UseDefaultValue {
			r.warn(WarnUnsupportedElement, t.Pos, "unsupported input type %q skipped", t.Attrs["type"])
		}
		return nil, nil
	}

	// List-item content follows the tag on the wire, terminated by the next
	// line break or block-level tag.
	content, _, err := r.parseInlineSeq("", false)
	if err != nil {
		return nil, err
	}

	indent := r.intAttr(t.Attrs, "indent", 1, t.Pos)
	switch k {
	case tagBullet:
		return []Block{&BulletListItem{Indent: indent, Content: content}}, nil
	case tagOrder:
		return []Block{&OrderedListItem{
			Indent:      indent,
			InputNumber: r.intAttr(t.Attrs, "inputNumber", 0, t.Pos),
			Content:     content,
		}}, nil
	default:
		return []Block{&CheckboxItem{
			Indent:  indent,
			Level:   r.intAttr(t.Attrs, "level", 1, t.Pos),
			Checked: t.Attrs["checked"] == "true",
			Content: content,
		}}, nil
	}
}

func (r *run) parseImage(t Token) ([]Block, error) {
	r.next()
	r.consumeEndTag("img")
	return []Block{&Image{
		FileID:      t.Attrs["fileid"],
		Src:         t.Attrs["src"],
		Width:       r.intAttr(t.Attrs, "width", 0, t.Pos),
		Height:      r.intAttr(t.Attrs, "height", 0, t.Pos),
		Description: unquoteDescription(t.Attrs["imgdes"]),
		DisplayHint: t.Attrs["imgshow"],
	}}, nil
}

func (r *run) parseAudio(t Token) ([]Block, error) {
	r.next()
	r.consumeEndTag("sound")
	id := t.Attrs["fileid"]
	if id == "" {
		perr := &ParseError{Kind: ErrMissingAttribute, Element: "sound", Attribute: "fileid", Pos: t.Pos}
		strat, err := r.resolve(perr, RecoveryContext{Element: "sound", Pos: t.Pos})
		if strat == Abort {
			return nil, err
		}
		if strat != UseDefaultValue {
			r.warn(WarnOther, t.Pos, "audio block missing fileid; dropped")
		}
		return nil, nil
	}
	return []Block{&Audio{FileID: id, Temporary: t.Attrs["temporary"] == "true"}}, nil
}

func (r *run) parseQuote(t Token) ([]Block, error) {
	r.next()
	if t.SelfClosing {
		return []Block{&Quote{}}, nil
	}
	q := &Quote{}
	for {
		tk, ok := r.cur()
		if !ok {
			perr := &ParseError{Kind: ErrUnexpectedEOF, Element: "quote", Pos: t.Pos}
			strat, err := r.resolve(perr, RecoveryContext{Element: "quote", Pos: t.Pos})
			if strat == Abort {
				return nil, err
			}
			if strat != UseDefaultValue {
				r.warn(WarnOther, t.Pos, "quote not closed before end of input")
			}
			return []Block{q}, nil
		}
		switch tk.Kind {
		case TokenNewline:
			r.next()
		case TokenText:
			r.next()
			r.warn(WarnOther, tk.Pos, "stray text inside quote ignored")
		case TokenEndTag:
			if classifyTag(tk.Name) == tagQuote {
				r.next()
				return []Block{q}, nil
			}
			r.next()
			r.warn(WarnOther, tk.Pos, "stray closing tag </%s> inside quote", tk.Name)
		case TokenStartTag:
			switch classifyTag(tk.Name) {
			case tagText:
				bs, err := r.parseTextBlock(tk)
				if err != nil {
					return nil, err
				}
				for _, b := range bs {
					if tb, isText := b.(*TextBlock); isText {
						q.Texts = append(q.Texts, tb)
					}
				}
			case tagNewFormat:
				r.next()
				r.consumeEndTag(tk.Name)
			default:
				r.next()
				r.skipUnknown(tk.Name, tk.SelfClosing)
				r.warn(WarnOther, tk.Pos, "<%s> inside quote ignored", tk.Name)
			}
		}
	}
}

// unknownBlock handles a block-level tag outside the grammar: extract its
// text, ask the recovery handler, then skip, flatten or abort.
func (r *run) unknownBlock(t Token) ([]Block, error) {
	r.next()
	content := r.skipUnknown(t.Name, t.SelfClosing)
	perr := &ParseError{Kind: ErrUnsupportedElement, Element: t.Name, Pos: t.Pos}
	strat, err := r.resolve(perr, RecoveryContext{Element: t.Name, Content: content, Pos: t.Pos})
	switch strat {
	case Abort:
		return nil, err
	case FallbackToPlainText:
		r.warn(WarnUnsupportedElement, t.Pos, "unsupported element <%s>; kept its text", t.Name)
		if content == "" {
			return nil, nil
		}
		return []Block{&TextBlock{Indent: 1, Content: []Inline{&Text{Value: content}}}}, nil
	case UseDefaultValue:
		return nil, nil
	default:
		r.warn(WarnUnsupportedElement, t.Pos, "unsupported element <%s> skipped", t.Name)
		return nil, nil
	}
}

// unknownInline is unknownBlock for inline position; a flattened fallback
// splices plain text into the surrounding content.
func (r *run) unknownInline(t Token) ([]Inline, error) {
	r.next()
	content := r.skipUnknown(t.Name, t.SelfClosing)
	perr := &ParseError{Kind: ErrUnsupportedElement, Element: t.Name, Pos: t.Pos}
	strat, err := r.resolve(perr, RecoveryContext{Element: t.Name, Content: content, Pos: t.Pos})
	switch strat {
	case Abort:
		return nil, err
	case FallbackToPlainText:
		r.warn(WarnUnsupportedElement, t.Pos, "unsupported element <%s>; kept its text", t.Name)
		if content == "" {
			return nil, nil
		}
		return []Inline{&Text{Value: content}}, nil
	case UseDefaultValue:
		return nil, nil
	default:
		r.warn(WarnUnsupportedElement, t.Pos, "unsupported element <%s> skipped", t.Name)
		return nil, nil
	}
}

// parseInlineSeq parses an inline sequence. With close != "" it consumes
// content up to and including the matching end tag. With close == "" it
// parses the trailing content of a list item, stopping before the next
// Newline or block-level tag. nested reports whether the sequence sits
// inside a Formatted node, which alignment tags may not.
//
// keep is false when a recovery decision dropped the enclosing element.
func (r *run) parseInlineSeq(close string, nested bool) (content []Inline, keep bool, err error) {
	for {
		t, ok := r.cur()
		if !ok {
			if close == "" {
				return content, true, nil
			}
			perr := &ParseError{Kind: ErrUnexpectedEOF, Element: close, Pos: r.lastPos()}
			strat, rerr := r.resolve(perr, RecoveryContext{Element: close, Content: flattenText(content), Pos: r.lastPos()})
			switch strat {
			case Abort:
				return nil, false, rerr
			case SkipElement:
				r.warn(WarnOther, r.lastPos(), "<%s> not closed before end of input", close)
				if flattenText(content) == "" {
					return nil, false, nil
				}
				return content, true, nil
			case FallbackToPlainText:
				r.warn(WarnOther, r.lastPos(), "<%s> not closed before end of input; kept its text", close)
				return content, true, nil
			default:
				return content, true, nil
			}
		}

		switch t.Kind {
		case TokenText:
			content = append(content, &Text{Value: t.Text})
			r.next()

		case TokenNewline:
			if close == "" {
				// Terminates list-item content; the block loop eats it.
				return content, true, nil
			}
			// The wire format is line-oriented; a line break inside a
			// paired element carries no structure.
			r.next()

		case TokenEndTag:
			if close != "" && t.Name == close {
				r.next()
				return content, true, nil
			}
			if close != "" && r.closesOuter(t.Name) {
				// This closer belongs to an enclosing element, so the
				// current one was never closed. Stop without consuming.
				perr := &ParseError{Kind: ErrUnmatchedTag, Expected: close, Found: t.Name, Pos: t.Pos}
				strat, rerr := r.resolve(perr, RecoveryContext{Element: close, Content: flattenText(content), Pos: t.Pos})
				if strat == Abort {
					return nil, false, rerr
				}
				if strat != UseDefaultValue {
					r.warn(WarnOther, t.Pos, "<%s> closed by </%s>", close, t.Name)
				}
				return content, true, nil
			}
			// Stray closer: drop it and keep going.
			perr := &ParseError{Kind: ErrUnmatchedTag, Expected: close, Found: t.Name, Pos: t.Pos}
			strat, rerr := r.resolve(perr, RecoveryContext{Element: t.Name, Pos: t.Pos})
			if strat == Abort {
				return nil, false, rerr
			}
			r.next()
			if strat != UseDefaultValue {
				r.warn(WarnOther, t.Pos, "stray closing tag </%s>", t.Name)
			}

		case TokenStartTag:
			k := classifyTag(t.Name)
			if k == tagNewFormat {
				r.next()
				r.consumeEndTag(t.Name)
				continue
			}
			if fk, isFormat := k.formatKind(); isFormat {
				nodes, formatKeep, ferr := r.parseFormatted(t, fk, nested)
				if ferr != nil {
					return nil, false, ferr
				}
				if formatKeep {
					content = append(content, nodes...)
				}
				continue
			}
			if k.isBlockLevel() {
				if close == "" {
					// Next block begins; list-item content ends here.
					return content, true, nil
				}
				perr := &ParseError{Kind: ErrUnmatchedTag, Expected: close, Found: t.Name, Pos: t.Pos}
				strat, rerr := r.resolve(perr, RecoveryContext{Element: close, Content: flattenText(content), Pos: t.Pos})
				if strat == Abort {
					return nil, false, rerr
				}
				if strat != UseDefaultValue {
					r.warn(WarnOther, t.Pos, "<%s> interrupted by <%s>", close, t.Name)
				}
				return content, true, nil
			}
			nodes, uerr := r.unknownInline(t)
			if uerr != nil {
				return nil, false, uerr
			}
			content = append(content, nodes...)
		}
	}
}

// parseFormatted parses one inline formatting element. Alignment tags are
// line-level wrappers; one opening inside another format is flattened with a
// warning rather than guessed at.
func (r *run) parseFormatted(t Token, fk FormatKind, nested bool) ([]Inline, bool, error) {
	r.next()
	color := ""
	if fk == Highlight {
		color = t.Attrs["color"]
	}
	if t.SelfClosing {
		return []Inline{&Formatted{Kind: fk, Color: color}}, true, nil
	}

	r.openTags = append(r.openTags, t.Name)
	inner, keep, err := r.parseInlineSeq(t.Name, true)
	r.openTags = r.openTags[:len(r.openTags)-1]
	if err != nil {
		return nil, false, err
	}
	if !keep {
		return nil, false, nil
	}
	if fk.isAlignment() && nested {
		r.warn(WarnOther, t.Pos, "<%s> nested inside formatting; alignment dropped", t.Name)
		return inner, true, nil
	}
	return []Inline{&Formatted{Kind: fk, Content: inner, Color: color}}, true, nil
}

// plainTextFallback is the whole-document degradation after a failed
// tokenization: each non-empty source line becomes one TextBlock.
func (p *Parser) plainTextFallback(src string, cause *TokenizeError) *ParseResult {
	doc := &Document{}
	for _, line := range splitLines(src) {
		if line == "" {
			continue
		}
		doc.Blocks = append(doc.Blocks, &TextBlock{
			Indent:  1,
			Content: []Inline{&Text{Value: line}},
		})
	}
	w := Warning{
		Kind:    WarnOther,
		Message: "tokenization failed; note kept as plain text: " + cause.Msg,
		Pos:     cause.Pos,
	}
	p.logger.LogWarning(w)
	return &ParseResult{Document: doc, Warnings: []Warning{w}}
}
