package markup

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "text block",
			input: `<text indent="1">hi</text>`,
			want: []Token{
				{Kind: TokenStartTag, Name: "text", Attrs: map[string]string{"indent": "1"}, Pos: 0},
				{Kind: TokenText, Text: "hi", Pos: 17},
				{Kind: TokenEndTag, Name: "text", Pos: 19},
			},
		},
		{
			name:  "self closing no attrs",
			input: "<hr/>",
			want: []Token{
				{Kind: TokenStartTag, Name: "hr", SelfClosing: true, Pos: 0},
			},
		},
		{
			name:  "self closing with space and attrs",
			input: `<bullet indent="2" />list item`,
			want: []Token{
				{Kind: TokenStartTag, Name: "bullet", Attrs: map[string]string{"indent": "2"}, SelfClosing: true, Pos: 0},
				{Kind: TokenText, Text: "list item", Pos: 21},
			},
		},
		{
			name:  "newline is its own token",
			input: "a\nb",
			want: []Token{
				{Kind: TokenText, Text: "a", Pos: 0},
				{Kind: TokenNewline, Pos: 1},
				{Kind: TokenText, Text: "b", Pos: 2},
			},
		},
		{
			name:  "crlf collapses to one newline",
			input: "a\r\nb",
			want: []Token{
				{Kind: TokenText, Text: "a", Pos: 0},
				{Kind: TokenNewline, Pos: 1},
				{Kind: TokenText, Text: "b", Pos: 3},
			},
		},
		{
			name:  "multiple attributes",
			input: `<img fileid="f1" width="120" height="80" />`,
			want: []Token{
				{
					Kind:        TokenStartTag,
					Name:        "img",
					Attrs:       map[string]string{"fileid": "f1", "width": "120", "height": "80"},
					SelfClosing: true,
					Pos:         0,
				},
			},
		},
		{
			name:  "single quoted and bare attributes",
			input: `<sound fileid='abc' temporary />`,
			want: []Token{
				{
					Kind:        TokenStartTag,
					Name:        "sound",
					Attrs:       map[string]string{"fileid": "abc", "temporary": ""},
					SelfClosing: true,
					Pos:         0,
				},
			},
		},
		{
			name:  "gt inside quoted value",
			input: `<background color="a>b">x</background>`,
			want: []Token{
				{Kind: TokenStartTag, Name: "background", Attrs: map[string]string{"color": "a>b"}, Pos: 0},
				{Kind: TokenText, Text: "x", Pos: 24},
				{Kind: TokenEndTag, Name: "background", Pos: 25},
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) returned error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated start tag", `<text indent="1"`},
		{"unterminated end tag", "</text"},
		{"lone open bracket", "<"},
		{"unbalanced quote", `<img src="x>`},
		{"missing tag name", "<>"},
		{"missing end tag name", "</>"},
		{"newline inside tag", "<text\nindent=\"1\">"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			if err == nil {
				t.Fatalf("Tokenize(%q) succeeded, want error", tt.input)
			}
			var terr *TokenizeError
			if !errors.As(err, &terr) {
				t.Fatalf("Tokenize(%q) error = %T, want *TokenizeError", tt.input, err)
			}
		})
	}
}
