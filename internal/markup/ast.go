package markup

// Document is the parsed form of one note's markup: an optional title
// followed by an ordered sequence of blocks. Documents are immutable once
// produced by Parse; no node is mutated after construction.
type Document struct {
	Title  string
	Blocks []Block
}

// Block is a top-level structural unit of a Document: a paragraph, a list
// item, an attachment, a rule or a quote.
type Block interface{ isBlock() }

// Inline is a formatting-bearing fragment nested inside a block's content.
type Inline interface{ isInline() }

// TextBlock is a paragraph of inline content at a given indent level.
// Indent 1 is the unindented baseline.
type TextBlock struct {
	Indent  int
	Content []Inline
}

// BulletListItem is one bulleted list entry. Its content follows the tag on
// the wire rather than sitting between a start/end pair.
type BulletListItem struct {
	Indent  int
	Content []Inline
}

// OrderedListItem is one numbered list entry.
//
// InputNumber is stored verbatim from the wire so serialization is exact.
// Zero means "continue the running counter"; any other value restarts the
// list so that this item displays InputNumber+1. Displayed numbers are a
// presentation concern, derived by OrderedNumbers.
type OrderedListItem struct {
	Indent      int
	InputNumber int
	Content     []Inline
}

// CheckboxItem is one checklist entry.
type CheckboxItem struct {
	Indent  int
	Level   int
	Checked bool
	Content []Inline
}

// HorizontalRule is a thematic break. It carries no payload.
type HorizontalRule struct{}

// Image is an image attachment reference. Zero-valued fields are absent and
// are not emitted by the serializer. Resolving FileID to bytes is the job of
// the hosting application, not this package.
type Image struct {
	FileID      string
	Src         string
	Width       int
	Height      int
	Description string
	DisplayHint string
}

// Audio is an audio attachment reference. FileID is mandatory; an audio
// block without one is meaningless and is rejected at parse time.
type Audio struct {
	FileID    string
	Temporary bool
}

// Quote is a block quotation wrapping one or more text blocks.
type Quote struct {
	Texts []*TextBlock
}

func (*TextBlock) isBlock()       {}
func (*BulletListItem) isBlock()  {}
func (*OrderedListItem) isBlock() {}
func (*CheckboxItem) isBlock()    {}
func (*HorizontalRule) isBlock()  {}
func (*Image) isBlock()           {}
func (*Audio) isBlock()           {}
func (*Quote) isBlock()           {}

// Text is a literal run of characters.
type Text struct {
	Value string
}

// Formatted applies one formatting kind to a nested inline sequence.
// Color is meaningful only for Highlight.
type Formatted struct {
	Kind    FormatKind
	Content []Inline
	Color   string
}

func (*Text) isInline()      {}
func (*Formatted) isInline() {}

// FormatKind enumerates the inline formatting variants.
type FormatKind uint8

const (
	Bold FormatKind = iota + 1
	Italic
	Underline
	Strikethrough
	Highlight
	Heading1
	Heading2
	Heading3
	CenterAlign
	RightAlign
)

func (k FormatKind) String() string {
	switch k {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Underline:
		return "underline"
	case Strikethrough:
		return "strikethrough"
	case Highlight:
		return "highlight"
	case Heading1:
		return "heading1"
	case Heading2:
		return "heading2"
	case Heading3:
		return "heading3"
	case CenterAlign:
		return "centerAlign"
	case RightAlign:
		return "rightAlign"
	default:
		return "unknown"
	}
}

// isAlignment reports whether k is a line-level alignment wrapper rather
// than a nestable inline format.
func (k FormatKind) isAlignment() bool {
	return k == CenterAlign || k == RightAlign
}

// OrderedNumbers derives the displayed number for each OrderedListItem in
// document order. The counter starts at 1; an item with InputNumber zero
// takes the counter value, any other item displays InputNumber+1 and resets
// the counter behind it. Display numbers are never stored on the nodes.
func OrderedNumbers(doc *Document) []int {
	var nums []int
	counter := 1
	for _, b := range doc.Blocks {
		item, ok := b.(*OrderedListItem)
		if !ok {
			continue
		}
		n := counter
		if item.InputNumber != 0 {
			n = item.InputNumber + 1
		}
		nums = append(nums, n)
		counter = n + 1
	}
	return nums
}
