// Package jsonlang is the structured-data frontend. It performs a
// single-pass parse of JSON snippets into a positioned value tree and runs
// registered per-rule checks over that tree.
package jsonlang

import (
	"fmt"
	"strings"

	"github.com/yaklabco/ruledoc/pkg/diag"
)

// ValueKind classifies a JSON value.
type ValueKind uint8

const (
	KindObject ValueKind = iota
	KindArray
	KindString
	KindNumber
	KindBool
	KindNull
)

// Value is one node in the parsed JSON tree.
type Value struct {
	Kind ValueKind

	// Members holds the entries of an object, in source order.
	Members []Member

	// Elements holds the values of an array, in source order.
	Elements []*Value

	// Raw is the verbatim source text of a scalar value.
	Raw string

	// StartOffset and EndOffset delimit the value in the snippet bytes.
	StartOffset int
	EndOffset   int

	// Span is the 1-based source position of the value.
	Span diag.Span
}

// Member is a single key/value entry of an object.
type Member struct {
	// Key is the decoded member name.
	Key string

	// KeyStartOffset and KeyEndOffset delimit the quoted key.
	KeyStartOffset int
	KeyEndOffset   int

	// KeySpan is the 1-based source position of the key.
	KeySpan diag.Span

	// Value is the member's value.
	Value *Value
}

// Document is the result of parsing one snippet.
type Document struct {
	// Root is the top-level value.
	Root *Value

	// Source is the snippet text the offsets refer to.
	Source string
}

// parser is a single-pass recursive descent JSON parser that tracks byte
// offsets and line/column positions for diagnostics and fixes.
type parser struct {
	src  string
	pos  int
	line int
	col  int
}

// ParseDocument parses a JSON snippet. On syntax errors it returns a
// positioned parse diagnostic instead of a document.
func ParseDocument(src string) (*Document, *diag.Diagnostic) {
	p := &parser{src: src, line: 1, col: 1}

	p.skipWhitespace()
	root, derr := p.parseValue()
	if derr != nil {
		return nil, derr
	}
	p.skipWhitespace()
	if p.pos < len(p.src) {
		return nil, p.errorf("unexpected trailing content")
	}

	return &Document{Root: root, Source: src}, nil
}

func (p *parser) errorf(format string, args ...any) *diag.Diagnostic {
	return &diag.Diagnostic{
		Category: "parse",
		Severity: diag.SeverityError,
		Message:  fmt.Sprintf(format, args...),
		Span: diag.Span{
			StartLine:   p.line,
			StartColumn: p.col,
			EndLine:     p.line,
			EndColumn:   p.col + 1,
		},
	}
}

func (p *parser) advance() byte {
	ch := p.src[p.pos]
	p.pos++
	if ch == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	return ch
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.advance()
		default:
			return
		}
	}
}

func (p *parser) position() diag.Span {
	return diag.Span{StartLine: p.line, StartColumn: p.col, EndLine: p.line, EndColumn: p.col}
}

func (p *parser) parseValue() (*Value, *diag.Diagnostic) {
	if p.pos >= len(p.src) {
		return nil, p.errorf("unexpected end of input")
	}

	switch ch := p.src[p.pos]; {
	case ch == '{':
		return p.parseObject()
	case ch == '[':
		return p.parseArray()
	case ch == '"':
		return p.parseString()
	case ch == '-' || isDigit(ch):
		return p.parseNumber()
	case ch == 't' || ch == 'f':
		return p.parseKeyword()
	case ch == 'n':
		return p.parseKeyword()
	default:
		return nil, p.errorf("unexpected character %q", ch)
	}
}

func (p *parser) parseObject() (*Value, *diag.Diagnostic) {
	start := p.pos
	startSpan := p.position()
	p.advance() // '{'

	v := &Value{Kind: KindObject, StartOffset: start}

	p.skipWhitespace()
	if p.pos < len(p.src) && p.src[p.pos] == '}' {
		p.advance()
		p.finish(v, startSpan)
		return v, nil
	}

	for {
		p.skipWhitespace()
		if p.pos >= len(p.src) || p.src[p.pos] != '"' {
			return nil, p.errorf("expected object key")
		}

		keyStart := p.pos
		keySpan := p.position()
		key, derr := p.parseString()
		if derr != nil {
			return nil, derr
		}
		keySpan.EndLine = p.line
		keySpan.EndColumn = p.col

		p.skipWhitespace()
		if p.pos >= len(p.src) || p.src[p.pos] != ':' {
			return nil, p.errorf("expected ':' after object key")
		}
		p.advance()

		p.skipWhitespace()
		val, derr := p.parseValue()
		if derr != nil {
			return nil, derr
		}

		v.Members = append(v.Members, Member{
			Key:            decodeString(key.Raw),
			KeyStartOffset: keyStart,
			KeyEndOffset:   key.EndOffset,
			KeySpan:        keySpan,
			Value:          val,
		})

		p.skipWhitespace()
		if p.pos >= len(p.src) {
			return nil, p.errorf("unterminated object")
		}
		switch p.src[p.pos] {
		case ',':
			p.advance()
		case '}':
			p.advance()
			p.finish(v, startSpan)
			return v, nil
		default:
			return nil, p.errorf("expected ',' or '}' in object")
		}
	}
}

func (p *parser) parseArray() (*Value, *diag.Diagnostic) {
	start := p.pos
	startSpan := p.position()
	p.advance() // '['

	v := &Value{Kind: KindArray, StartOffset: start}

	p.skipWhitespace()
	if p.pos < len(p.src) && p.src[p.pos] == ']' {
		p.advance()
		p.finish(v, startSpan)
		return v, nil
	}

	for {
		p.skipWhitespace()
		el, derr := p.parseValue()
		if derr != nil {
			return nil, derr
		}
		v.Elements = append(v.Elements, el)

		p.skipWhitespace()
		if p.pos >= len(p.src) {
			return nil, p.errorf("unterminated array")
		}
		switch p.src[p.pos] {
		case ',':
			p.advance()
		case ']':
			p.advance()
			p.finish(v, startSpan)
			return v, nil
		default:
			return nil, p.errorf("expected ',' or ']' in array")
		}
	}
}

func (p *parser) parseString() (*Value, *diag.Diagnostic) {
	start := p.pos
	startSpan := p.position()
	p.advance() // opening quote

	for p.pos < len(p.src) {
		ch := p.advance()
		switch ch {
		case '\\':
			if p.pos >= len(p.src) {
				return nil, p.errorf("unterminated escape sequence")
			}
			p.advance()
		case '"':
			v := &Value{Kind: KindString, Raw: p.src[start:p.pos], StartOffset: start}
			p.finish(v, startSpan)
			return v, nil
		case '\n':
			return nil, p.errorf("unterminated string")
		}
	}

	return nil, p.errorf("unterminated string")
}

func (p *parser) parseNumber() (*Value, *diag.Diagnostic) {
	start := p.pos
	startSpan := p.position()

	if p.src[p.pos] == '-' {
		p.advance()
	}
	digits := 0
	for p.pos < len(p.src) && (isDigit(p.src[p.pos]) || strings.ContainsRune(".eE+-", rune(p.src[p.pos]))) {
		if isDigit(p.src[p.pos]) {
			digits++
		}
		p.advance()
	}
	if digits == 0 {
		return nil, p.errorf("malformed number")
	}

	v := &Value{Kind: KindNumber, Raw: p.src[start:p.pos], StartOffset: start}
	p.finish(v, startSpan)
	return v, nil
}

func (p *parser) parseKeyword() (*Value, *diag.Diagnostic) {
	start := p.pos
	startSpan := p.position()

	for _, kw := range []struct {
		word string
		kind ValueKind
	}{
		{"true", KindBool},
		{"false", KindBool},
		{"null", KindNull},
	} {
		if strings.HasPrefix(p.src[p.pos:], kw.word) {
			for range len(kw.word) {
				p.advance()
			}
			v := &Value{Kind: kw.kind, Raw: p.src[start:p.pos], StartOffset: start}
			p.finish(v, startSpan)
			return v, nil
		}
	}

	return nil, p.errorf("unexpected keyword")
}

// finish stamps the end offset and full span of a parsed value.
func (p *parser) finish(v *Value, startSpan diag.Span) {
	v.EndOffset = p.pos
	v.Span = diag.Span{
		StartLine:   startSpan.StartLine,
		StartColumn: startSpan.StartColumn,
		EndLine:     p.line,
		EndColumn:   p.col,
	}
}

// decodeString strips the quotes and resolves simple escapes of a raw
// string literal. Unicode escapes are kept verbatim; rule checks compare
// keys, they do not interpret them.
func decodeString(raw string) string {
	s := strings.TrimSuffix(strings.TrimPrefix(raw, `"`), `"`)
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '"', '\\', '/':
			b.WriteByte(s[i])
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
