package markup

import (
	"strings"
	"testing"
)

func TestSerializeBlocks(t *testing.T) {
	tests := []struct {
		name string
		doc  *Document
		want string
	}{
		{
			name: "title and text",
			doc: &Document{
				Title: "Notes",
				Blocks: []Block{
					&TextBlock{Indent: 1, Content: []Inline{&Text{Value: "hello"}}},
				},
			},
			want: "<title>Notes</title>\n<text indent=\"1\">hello</text>",
		},
		{
			name: "bullet item",
			doc: &Document{Blocks: []Block{
				&BulletListItem{Indent: 2, Content: []Inline{&Text{Value: "milk"}}},
			}},
			want: `<bullet indent="2" />milk`,
		},
		{
			name: "ordered item keeps input number verbatim",
			doc: &Document{Blocks: []Block{
				&OrderedListItem{Indent: 1, InputNumber: 5, Content: []Inline{&Text{Value: "C"}}},
			}},
			want: `<order indent="1" inputNumber="5" />C`,
		},
		{
			name: "checkbox checked",
			doc: &Document{Blocks: []Block{
				&CheckboxItem{Indent: 1, Level: 1, Checked: true, Content: []Inline{&Text{Value: "done"}}},
			}},
			want: `<input type="checkbox" indent="1" level="1" checked="true" />done`,
		},
		{
			name: "checkbox unchecked omits checked",
			doc: &Document{Blocks: []Block{
				&CheckboxItem{Indent: 1, Level: 2, Content: []Inline{&Text{Value: "todo"}}},
			}},
			want: `<input type="checkbox" indent="1" level="2" />todo`,
		},
		{
			name: "horizontal rule",
			doc:  &Document{Blocks: []Block{&HorizontalRule{}}},
			want: "<hr/>",
		},
		{
			name: "image emits only set attributes",
			doc: &Document{Blocks: []Block{
				&Image{FileID: "f1", Width: 640},
			}},
			want: `<img fileid="f1" width="640" />`,
		},
		{
			name: "audio",
			doc: &Document{Blocks: []Block{
				&Audio{FileID: "rec-9", Temporary: true},
			}},
			want: `<sound fileid="rec-9" temporary="true" />`,
		},
		{
			name: "quote",
			doc: &Document{Blocks: []Block{
				&Quote{Texts: []*TextBlock{
					{Indent: 1, Content: []Inline{&Text{Value: "wise"}}},
				}},
			}},
			want: "<quote>\n<text indent=\"1\">wise</text>\n</quote>",
		},
		{
			name: "highlight with color",
			doc: &Document{Blocks: []Block{
				&TextBlock{Indent: 1, Content: []Inline{
					&Formatted{Kind: Highlight, Color: "#AA0000", Content: []Inline{&Text{Value: "hot"}}},
				}},
			}},
			want: `<text indent="1"><background color="#AA0000">hot</background></text>`,
		},
		{
			name: "alignment wraps line payload",
			doc: &Document{Blocks: []Block{
				&TextBlock{Indent: 1, Content: []Inline{
					&Formatted{Kind: RightAlign, Content: []Inline{
						&Formatted{Kind: Bold, Content: []Inline{&Text{Value: "x"}}},
					}},
				}},
			}},
			want: `<text indent="1"><right><b>x</b></right></text>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Serialize(tt.doc); got != tt.want {
				t.Errorf("Serialize = %q, want %q", got, tt.want)
			}
		})
	}
}

// Serialization must be a fixed point: serializing, reparsing and
// serializing again yields the identical string, including for documents
// built by hand rather than by the parser.
func TestSerializeIdempotent(t *testing.T) {
	doc := &Document{
		Title: "Trip",
		Blocks: []Block{
			&TextBlock{Indent: 1, Content: []Inline{
				&Text{Value: "pack "},
				&Formatted{Kind: Bold, Content: []Inline{&Text{Value: "everything"}}},
			}},
			&BulletListItem{Indent: 1, Content: []Inline{&Text{Value: "passport"}}},
			&OrderedListItem{Indent: 1, InputNumber: 0, Content: []Inline{&Text{Value: "tickets"}}},
			&CheckboxItem{Indent: 1, Level: 1, Checked: true, Content: []Inline{&Text{Value: "visa"}}},
			&HorizontalRule{},
			&Image{FileID: "img-1", Width: 320, Height: 240, Description: "map"},
			&Audio{FileID: "rec-1"},
			&Quote{Texts: []*TextBlock{
				{Indent: 1, Content: []Inline{&Text{Value: "bon voyage"}}},
			}},
		},
	}

	s1 := Serialize(doc)
	res, err := NewParser().Parse(s1)
	if err != nil {
		t.Fatalf("Parse of serialized document failed: %v", err)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings reparsing canonical output: %v", res.Warnings)
	}
	s2 := Serialize(res.Document)
	if s1 != s2 {
		t.Errorf("serialization not idempotent:\nfirst:  %q\nsecond: %q", s1, s2)
	}
	if strings.Contains(s1, "new-format") {
		t.Errorf("format marker leaked into output: %q", s1)
	}
}
