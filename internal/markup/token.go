package markup

import "fmt"

// TokenKind identifies the kind of a lexed token.
type TokenKind uint8

const (
	// TokenStartTag is an opening or self-closing tag like <text indent="1">.
	TokenStartTag TokenKind = iota + 1
	// TokenEndTag is a closing tag like </text>.
	TokenEndTag
	// TokenText is a run of characters outside any tag.
	TokenText
	// TokenNewline is a line break in the source. Line breaks terminate
	// list-item content, so they are never merged into surrounding text.
	TokenNewline
)

func (k TokenKind) String() string {
	switch k {
	case TokenStartTag:
		return "StartTag"
	case TokenEndTag:
		return "EndTag"
	case TokenText:
		return "Text"
	case TokenNewline:
		return "Newline"
	default:
		return fmt.Sprintf("TokenKind(%d)", uint8(k))
	}
}

// Token is one element of the flat stream produced by Tokenize.
type Token struct {
	Kind TokenKind

	// Name is the tag name for start and end tags.
	Name string
	// Attrs holds the key="value" pairs of a start tag. Nil when the tag
	// carries no attributes.
	Attrs map[string]string
	// SelfClosing reports whether a start tag ends in "/>".
	SelfClosing bool

	// Text is the literal content of a text token.
	Text string

	// Pos is the byte offset of the token in the source string.
	Pos int
}

func (t Token) String() string {
	switch t.Kind {
	case TokenStartTag:
		return fmt.Sprintf("Token(StartTag <%s> self=%v attrs=%v)", t.Name, t.SelfClosing, t.Attrs)
	case TokenEndTag:
		return fmt.Sprintf("Token(EndTag </%s>)", t.Name)
	case TokenText:
		return fmt.Sprintf("Token(Text %q)", t.Text)
	case TokenNewline:
		return "Token(Newline)"
	default:
		return fmt.Sprintf("Token(%d)", t.Kind)
	}
}
