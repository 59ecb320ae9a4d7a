package markup

import (
	"fmt"
	"strings"
)

// TokenizeError is a lexical fault: an unterminated tag or an unbalanced
// attribute quote. The tokenizer performs no grammar validation, so this is
// the only error it can produce.
type TokenizeError struct {
	Pos int
	Msg string
}

func (e *TokenizeError) Error() string {
	return fmt.Sprintf("markup: %s at offset %d", e.Msg, e.Pos)
}

// Tokenize lexes markup text into a flat token stream. '<' always begins a
// tag; everything else up to the next '<' or line break is emitted as text.
// Both "\n" and "\r\n" produce a single Newline token.
func Tokenize(src string) ([]Token, error) {
	var toks []Token
	i := 0
	for i < len(src) {
		switch src[i] {
		case '<':
			tok, next, err := scanTag(src, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = next
		case '\n':
			toks = append(toks, Token{Kind: TokenNewline, Pos: i})
			i++
		case '\r':
			toks = append(toks, Token{Kind: TokenNewline, Pos: i})
			i++
			if i < len(src) && src[i] == '\n' {
				i++
			}
		default:
			start := i
			for i < len(src) && src[i] != '<' && src[i] != '\n' && src[i] != '\r' {
				i++
			}
			toks = append(toks, Token{Kind: TokenText, Text: src[start:i], Pos: start})
		}
	}
	return toks, nil
}

// scanTag lexes one tag beginning at src[start] == '<'. It returns the token
// and the offset just past the closing '>'.
func scanTag(src string, start int) (Token, int, error) {
	i := start + 1
	if i >= len(src) {
		return Token{}, 0, &TokenizeError{Pos: start, Msg: "unterminated tag"}
	}

	if src[i] == '/' {
		i++
		j := i
		for j < len(src) && src[j] != '>' {
			if src[j] == '\n' || src[j] == '\r' {
				return Token{}, 0, &TokenizeError{Pos: start, Msg: "unterminated end tag"}
			}
			j++
		}
		if j >= len(src) {
			return Token{}, 0, &TokenizeError{Pos: start, Msg: "unterminated end tag"}
		}
		name := strings.TrimSpace(src[i:j])
		if name == "" {
			return Token{}, 0, &TokenizeError{Pos: start, Msg: "end tag missing name"}
		}
		return Token{Kind: TokenEndTag, Name: name, Pos: start}, j + 1, nil
	}

	j := i
	for j < len(src) && !isNameBreak(src[j]) {
		j++
	}
	name := src[i:j]
	if name == "" {
		return Token{}, 0, &TokenizeError{Pos: start, Msg: "tag missing name"}
	}

	tok := Token{Kind: TokenStartTag, Name: name, Pos: start}
	i = j
	for {
		for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
			i++
		}
		if i >= len(src) {
			return Token{}, 0, &TokenizeError{Pos: start, Msg: "unterminated tag"}
		}
		switch src[i] {
		case '>':
			return tok, i + 1, nil
		case '/':
			tok.SelfClosing = true
			i++
		case '\n', '\r':
			return Token{}, 0, &TokenizeError{Pos: start, Msg: "unterminated tag"}
		default:
			key, val, next, err := scanAttr(src, i)
			if err != nil {
				return Token{}, 0, err
			}
			if tok.Attrs == nil {
				tok.Attrs = make(map[string]string)
			}
			tok.Attrs[key] = val
			i = next
		}
	}
}

// scanAttr lexes one key="value" pair starting at src[i]. A key without '='
// yields an empty value. Values may be quoted with '"' or '\''; a quote left
// open is a lexical error.
func scanAttr(src string, i int) (key, val string, next int, err error) {
	j := i
	for j < len(src) && !isNameBreak(src[j]) && src[j] != '=' {
		j++
	}
	key = src[i:j]
	if j >= len(src) || src[j] != '=' {
		return key, "", j, nil
	}
	j++ // consume '='
	if j >= len(src) {
		return "", "", 0, &TokenizeError{Pos: i, Msg: "attribute missing value"}
	}
	if q := src[j]; q == '"' || q == '\'' {
		j++
		k := j
		for k < len(src) && src[k] != q {
			k++
		}
		if k >= len(src) {
			return "", "", 0, &TokenizeError{Pos: i, Msg: "unbalanced quote in attribute"}
		}
		return key, src[j:k], k + 1, nil
	}
	k := j
	for k < len(src) && !isNameBreak(src[k]) {
		k++
	}
	return key, src[j:k], k, nil
}

func isNameBreak(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '/', '>':
		return true
	default:
		return false
	}
}
