package markup

import "fmt"

// ErrorKind classifies grammar-level parse faults.
type ErrorKind uint8

const (
	// ErrUnsupportedElement marks a tag the grammar does not define.
	ErrUnsupportedElement ErrorKind = iota + 1
	// ErrMissingAttribute marks a tag lacking an attribute it cannot live
	// without, such as <sound> without fileid.
	ErrMissingAttribute
	// ErrUnmatchedTag marks a closing tag that does not pair with the
	// element being parsed.
	ErrUnmatchedTag
	// ErrUnexpectedEOF marks a token stream that ends inside an element.
	ErrUnexpectedEOF
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnsupportedElement:
		return "unsupportedElement"
	case ErrMissingAttribute:
		return "missingAttribute"
	case ErrUnmatchedTag:
		return "unmatchedTag"
	case ErrUnexpectedEOF:
		return "unexpectedEndOfInput"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// ParseError is a grammar-level fault raised while building the document
// tree. With recovery enabled it is absorbed into a Warning; with strict
// recovery it propagates from Parse unmodified.
type ParseError struct {
	Kind ErrorKind

	// Element is the offending tag name, when known.
	Element string
	// Attribute names the missing attribute for ErrMissingAttribute.
	Attribute string
	// Expected and Found describe the mismatch for ErrUnmatchedTag.
	Expected string
	Found    string

	// Pos is the byte offset of the fault in the source.
	Pos int
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrUnsupportedElement:
		return fmt.Sprintf("markup: unsupported element <%s> at offset %d", e.Element, e.Pos)
	case ErrMissingAttribute:
		return fmt.Sprintf("markup: <%s> missing required attribute %q at offset %d", e.Element, e.Attribute, e.Pos)
	case ErrUnmatchedTag:
		return fmt.Sprintf("markup: expected </%s>, found %q at offset %d", e.Expected, e.Found, e.Pos)
	case ErrUnexpectedEOF:
		return fmt.Sprintf("markup: unexpected end of input in <%s>", e.Element)
	default:
		return fmt.Sprintf("markup: parse error %d at offset %d", e.Kind, e.Pos)
	}
}
