package markup

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

func (r *run) cur() (Token, bool) {
	if r.pos >= len(r.toks) {
		return Token{}, false
	}
	return r.toks[r.pos], true
}

func (r *run) next() {
	r.pos++
}

func (r *run) skipNewlines() {
	for {
		t, ok := r.cur()
		if !ok || t.Kind != TokenNewline {
			return
		}
		r.next()
	}
}

// lastPos is the offset of the token at or just before the cursor, used to
// position end-of-input faults.
func (r *run) lastPos() int {
	if len(r.toks) == 0 {
		return 0
	}
	if r.pos >= len(r.toks) {
		return r.toks[len(r.toks)-1].Pos
	}
	return r.toks[r.pos].Pos
}

// consumeEndTag eats an immediately following </name>, tolerating the
// paired spelling of elements the canonical form writes self-closing.
func (r *run) consumeEndTag(name string) {
	if t, ok := r.cur(); ok && t.Kind == TokenEndTag && t.Name == name {
		r.next()
	}
}

// closesOuter reports whether name closes an element enclosing the one
// currently being parsed.
func (r *run) closesOuter(name string) bool {
	if len(r.openTags) == 0 {
		return false
	}
	return slices.Contains(r.openTags[:len(r.openTags)-1], name)
}

func (r *run) warn(kind WarningKind, pos int, format string, args ...any) {
	w := Warning{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos}
	r.warnings = append(r.warnings, w)
	r.p.logger.LogWarning(w)
}

// resolve consults the recovery handler. Abort logs the error and hands it
// back for propagation; every other strategy is interpreted at the call
// site.
func (r *run) resolve(err error, ctx RecoveryContext) (RecoveryStrategy, error) {
	strat := r.p.handler.Handle(err, ctx)
	if strat == Abort {
		r.p.logger.LogError(err, map[string]string{
			"element": ctx.Element,
			"offset":  strconv.Itoa(ctx.Pos),
		})
		return Abort, err
	}
	return strat, nil
}

// intAttr reads an integer attribute, warning and falling back to def when
// the value is present but not a number.
func (r *run) intAttr(attrs map[string]string, key string, def, pos int) int {
	v, ok := attrs[key]
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.warn(WarnOther, pos, "attribute %s=%q is not a number", key, v)
		return def
	}
	return n
}

// skipUnknown consumes everything up to and including the end tag matching
// an unrecognized element, tracking nesting depth so an inner tag of the
// same name does not close the skip early. It returns the text content seen
// on the way, for a possible plain-text fallback.
func (r *run) skipUnknown(name string, selfClosing bool) string {
	if selfClosing {
		return ""
	}
	depth := 1
	var sb strings.Builder
	for {
		t, ok := r.cur()
		if !ok {
			return sb.String()
		}
		r.next()
		switch t.Kind {
		case TokenStartTag:
			if t.Name == name && !t.SelfClosing {
				depth++
			}
		case TokenEndTag:
			if t.Name == name {
				depth--
				if depth == 0 {
					return sb.String()
				}
			}
		case TokenText:
			sb.WriteString(t.Text)
		case TokenNewline:
			sb.WriteByte('\n')
		}
	}
}

// flattenText concatenates the literal text under an inline sequence.
func flattenText(content []Inline) string {
	var sb strings.Builder
	for _, in := range content {
		switch n := in.(type) {
		case *Text:
			sb.WriteString(n.Value)
		case *Formatted:
			sb.WriteString(flattenText(n.Content))
		}
	}
	return sb.String()
}

// unquoteDescription strips one pair of surrounding quote characters from an
// image description attribute; legacy writers wrapped the value in literal
// quotes inside the attribute itself.
func unquoteDescription(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	if strings.HasPrefix(s, "“") && strings.HasSuffix(s, "”") {
		return strings.TrimSuffix(strings.TrimPrefix(s, "“"), "”")
	}
	return s
}

// splitLines splits on both \n and \r\n without the trailing terminators.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
