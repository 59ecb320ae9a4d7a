package markup

// tagKind is the closed set of tag names the grammar defines. Classifying
// the raw tag string once at the tokenizer/parser boundary lets block and
// inline dispatch switch exhaustively, with unknown names falling into one
// explicit arm.
type tagKind uint8

const (
	tagUnknown tagKind = iota
	tagTitle
	tagText
	tagBullet
	tagOrder
	tagInput
	tagHR
	tagImg
	tagSound
	tagQuote
	tagNewFormat
	tagBold
	tagItalic
	tagUnderline
	tagDelete
	tagBackground
	tagSize
	tagMidSize
	tagH3Size
	tagCenter
	tagRight
)

func classifyTag(name string) tagKind {
	switch name {
	case "title":
		return tagTitle
	case "text":
		return tagText
	case "bullet":
		return tagBullet
	case "order":
		return tagOrder
	case "input":
		return tagInput
	case "hr":
		return tagHR
	case "img":
		return tagImg
	case "sound":
		return tagSound
	case "quote":
		return tagQuote
	case "new-format":
		return tagNewFormat
	case "b":
		return tagBold
	case "i":
		return tagItalic
	case "u":
		return tagUnderline
	case "delete":
		return tagDelete
	case "background":
		return tagBackground
	case "size":
		return tagSize
	case "mid-size":
		return tagMidSize
	case "h3-size":
		return tagH3Size
	case "center":
		return tagCenter
	case "right":
		return tagRight
	default:
		return tagUnknown
	}
}

// isBlockLevel reports whether the tag opens a block. Block-level tags
// terminate the trailing content of a preceding list item.
func (k tagKind) isBlockLevel() bool {
	switch k {
	case tagText, tagBullet, tagOrder, tagInput, tagHR, tagImg, tagSound, tagQuote, tagTitle:
		return true
	default:
		return false
	}
}

// formatKind maps an inline tag to its FormatKind. The second result is
// false for tags that are not inline formatting.
func (k tagKind) formatKind() (FormatKind, bool) {
	switch k {
	case tagBold:
		return Bold, true
	case tagItalic:
		return Italic, true
	case tagUnderline:
		return Underline, true
	case tagDelete:
		return Strikethrough, true
	case tagBackground:
		return Highlight, true
	case tagSize:
		return Heading1, true
	case tagMidSize:
		return Heading2, true
	case tagH3Size:
		return Heading3, true
	case tagCenter:
		return CenterAlign, true
	case tagRight:
		return RightAlign, true
	default:
		return 0, false
	}
}

// formatTag is the wire tag name for a FormatKind, the inverse of
// tagKind.formatKind.
func formatTag(k FormatKind) string {
	switch k {
	case Bold:
		return "b"
	case Italic:
		return "i"
	case Underline:
		return "u"
	case Strikethrough:
		return "delete"
	case Highlight:
		return "background"
	case Heading1:
		return "size"
	case Heading2:
		return "mid-size"
	case Heading3:
		return "h3-size"
	case CenterAlign:
		return "center"
	case RightAlign:
		return "right"
	default:
		return ""
	}
}
