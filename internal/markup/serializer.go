package markup

import (
	"fmt"
	"strings"
)

// Serialize renders doc as canonical markup text, the exact inverse of
// Parse on well-formed input: one block per line, joined by "\n", with only
// non-zero attributes emitted.
func Serialize(doc *Document) string {
	var lines []string
	if doc.Title != "" {
		lines = append(lines, "<title>"+doc.Title+"</title>")
	}
	for _, b := range doc.Blocks {
		lines = append(lines, serializeBlock(b))
	}
	return strings.Join(lines, "\n")
}

func serializeBlock(b Block) string {
	switch b := b.(type) {
	case *TextBlock:
		return fmt.Sprintf(`<text indent="%d">%s</text>`, b.Indent, serializeInlines(b.Content))
	case *BulletListItem:
		return fmt.Sprintf(`<bullet indent="%d" />%s`, b.Indent, serializeInlines(b.Content))
	case *OrderedListItem:
		return fmt.Sprintf(`<order indent="%d" inputNumber="%d" />%s`,
			b.Indent, b.InputNumber, serializeInlines(b.Content))
	case *CheckboxItem:
		var sb strings.Builder
		fmt.Fprintf(&sb, `<input type="checkbox" indent="%d" level="%d"`, b.Indent, b.Level)
		if b.Checked {
			sb.WriteString(` checked="true"`)
		}
		sb.WriteString(" />")
		sb.WriteString(serializeInlines(b.Content))
		return sb.String()
	case *HorizontalRule:
		return "<hr/>"
	case *Image:
		var sb strings.Builder
		sb.WriteString("<img")
		if b.FileID != "" {
			fmt.Fprintf(&sb, ` fileid="%s"`, b.FileID)
		}
		if b.Src != "" {
			fmt.Fprintf(&sb, ` src="%s"`, b.Src)
		}
		if b.Width != 0 {
			fmt.Fprintf(&sb, ` width="%d"`, b.Width)
		}
		if b.Height != 0 {
			fmt.Fprintf(&sb, ` height="%d"`, b.Height)
		}
		if b.Description != "" {
			fmt.Fprintf(&sb, ` imgdes="%s"`, b.Description)
		}
		if b.DisplayHint != "" {
			fmt.Fprintf(&sb, ` imgshow="%s"`, b.DisplayHint)
		}
		sb.WriteString(" />")
		return sb.String()
	case *Audio:
		if b.Temporary {
			return fmt.Sprintf(`<sound fileid="%s" temporary="true" />`, b.FileID)
		}
		return fmt.Sprintf(`<sound fileid="%s" />`, b.FileID)
	case *Quote:
		var lines []string
		lines = append(lines, "<quote>")
		for _, tb := range b.Texts {
			lines = append(lines, serializeBlock(tb))
		}
		lines = append(lines, "</quote>")
		return strings.Join(lines, "\n")
	default:
		return ""
	}
}

// serializeInlines renders an inline sequence, wrapping each Formatted node
// in its tag recursively. The parser only ever places alignment nodes at
// the top of a line's content, so emitting them in place wraps the whole
// line payload.
func serializeInlines(content []Inline) string {
	var sb strings.Builder
	for _, in := range content {
		switch n := in.(type) {
		case *Text:
			sb.WriteString(n.Value)
		case *Formatted:
			name := formatTag(n.Kind)
			if n.Kind == Highlight && n.Color != "" {
				fmt.Fprintf(&sb, `<%s color="%s">%s</%s>`, name, n.Color, serializeInlines(n.Content), name)
			} else {
				fmt.Fprintf(&sb, "<%s>%s</%s>", name, serializeInlines(n.Content), name)
			}
		}
	}
	return sb.String()
}
