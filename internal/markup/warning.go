package markup

import "fmt"

// WarningKind classifies parse warnings for callers that want to react to
// unknown future tags differently from other degradations.
type WarningKind uint8

const (
	// WarnOther covers every degradation that is not an unknown element.
	WarnOther WarningKind = iota
	// WarnUnsupportedElement marks a tag outside the grammar that was
	// skipped or flattened.
	WarnUnsupportedElement
)

func (k WarningKind) String() string {
	switch k {
	case WarnUnsupportedElement:
		return "unsupportedElement"
	default:
		return "other"
	}
}

// Warning records a fault that parsing absorbed without failing. Pos is the
// byte offset of the fault in the source, or -1 when no position applies.
type Warning struct {
	Kind    WarningKind
	Message string
	Pos     int
}

func (w Warning) String() string {
	if w.Pos < 0 {
		return w.Message
	}
	return fmt.Sprintf("offset %d: %s", w.Pos, w.Message)
}
