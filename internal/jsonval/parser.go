package jsonval

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// maxDepth bounds container nesting so a hostile document exhausts the
// parser's budget instead of the goroutine stack.
const maxDepth = 1000

// ParseError describes why a document could not be parsed. Offset is a
// byte offset into the input. The mapper layer reuses this type for
// structural errors, with Offset zero and the failing field path in the
// message.
type ParseError struct {
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Message)
}

// Parse reads exactly one JSON value from text. Anything other than
// whitespace after the value is an error.
func Parse(text string) (Value, error) {
	p := &parser{buf: text}
	v, err := p.parseValue(0)
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.buf) {
		return nil, p.errorf("unexpected trailing content %q", p.buf[p.pos])
	}
	return v, nil
}

type parser struct {
	buf string
	pos int
}

func (p *parser) errorf(format string, args ...interface{}) *ParseError {
	return &ParseError{Offset: p.pos, Message: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.buf) {
		switch p.buf[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) parseValue(depth int) (Value, error) {
	if depth >= maxDepth {
		return nil, p.errorf("maximum nesting depth %d exceeded", maxDepth)
	}
	p.skipSpace()
	if p.pos >= len(p.buf) {
		return nil, p.errorf("expected a value, found end of input")
	}
	switch c := p.buf[p.pos]; {
	case c == 'n':
		return p.parseKeyword("null", Null{})
	case c == 't':
		return p.parseKeyword("true", Bool(true))
	case c == 'f':
		return p.parseKeyword("false", Bool(false))
	case c == '"':
		s, err := p.parseString()
		if err != nil {
			return nil, err
		}
		return String(s), nil
	case c == '[':
		return p.parseArray(depth)
	case c == '{':
		return p.parseObject(depth)
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return nil, p.errorf("expected a value, found %q", c)
	}
}

func (p *parser) parseKeyword(word string, v Value) (Value, error) {
	if len(p.buf)-p.pos < len(word) || p.buf[p.pos:p.pos+len(word)] != word {
		return nil, p.errorf("expected %q", word)
	}
	p.pos += len(word)
	return v, nil
}

func (p *parser) parseNumber() (Value, error) {
	start := p.pos
	if p.pos < len(p.buf) && p.buf[p.pos] == '-' {
		p.pos++
	}
	if !p.digits() {
		return nil, p.errorf("malformed number")
	}
	if p.pos < len(p.buf) && p.buf[p.pos] == '.' {
		p.pos++
		if !p.digits() {
			return nil, p.errorf("malformed number: expected digits after '.'")
		}
	}
	if p.pos < len(p.buf) && (p.buf[p.pos] == 'e' || p.buf[p.pos] == 'E') {
		p.pos++
		if p.pos < len(p.buf) && (p.buf[p.pos] == '+' || p.buf[p.pos] == '-') {
			p.pos++
		}
		if !p.digits() {
			return nil, p.errorf("malformed number: expected exponent digits")
		}
	}
	f, err := strconv.ParseFloat(p.buf[start:p.pos], 64)
	if err != nil {
		return nil, &ParseError{Offset: start, Message: fmt.Sprintf("malformed number %q", p.buf[start:p.pos])}
	}
	return Number(f), nil
}

// digits consumes one or more ASCII digits and reports whether any were
// present.
func (p *parser) digits() bool {
	start := p.pos
	for p.pos < len(p.buf) && p.buf[p.pos] >= '0' && p.buf[p.pos] <= '9' {
		p.pos++
	}
	return p.pos > start
}

func (p *parser) parseString() (string, error) {
	p.pos++ // opening quote, checked by the caller
	var b []byte
	for {
		if p.pos >= len(p.buf) {
			return "", p.errorf("unterminated string")
		}
		c := p.buf[p.pos]
		switch {
		case c == '"':
			p.pos++
			return string(b), nil
		case c == '\\':
			p.pos++
			decoded, err := p.parseEscape()
			if err != nil {
				return "", err
			}
			b = utf8.AppendRune(b, decoded)
		default:
			b = append(b, c)
			p.pos++
		}
	}
}

func (p *parser) parseEscape() (rune, error) {
	if p.pos >= len(p.buf) {
		return 0, p.errorf("unterminated string")
	}
	c := p.buf[p.pos]
	p.pos++
	switch c {
	case '"':
		return '"', nil
	case '\\':
		return '\\', nil
	case '/':
		return '/', nil
	case 'n':
		return '\n', nil
	case 't':
		return '\t', nil
	case 'r':
		return '\r', nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'u':
		return p.parseUnicodeEscape()
	default:
		p.pos--
		return 0, p.errorf("invalid escape sequence '\\%c'", c)
	}
}

func (p *parser) parseUnicodeEscape() (rune, error) {
	r, err := p.readHex4()
	if err != nil {
		return 0, err
	}
	if !utf16.IsSurrogate(r) {
		return r, nil
	}
	// A high surrogate may be followed by a second \uXXXX forming a pair.
	// A half without a valid partner decodes to U+FFFD, matching what
	// encoding/json does.
	if p.pos+1 < len(p.buf) && p.buf[p.pos] == '\\' && p.buf[p.pos+1] == 'u' {
		mark := p.pos
		p.pos += 2
		r2, err := p.readHex4()
		if err != nil {
			return 0, err
		}
		if dec := utf16.DecodeRune(r, r2); dec != unicode.ReplacementChar {
			return dec, nil
		}
		p.pos = mark // let the second escape decode on its own
	}
	return unicode.ReplacementChar, nil
}

func (p *parser) readHex4() (rune, error) {
	if len(p.buf)-p.pos < 4 {
		return 0, p.errorf("invalid \\u escape: expected 4 hex digits")
	}
	n, err := strconv.ParseUint(p.buf[p.pos:p.pos+4], 16, 32)
	if err != nil {
		return 0, p.errorf("invalid \\u escape: expected 4 hex digits")
	}
	p.pos += 4
	return rune(n), nil
}

func (p *parser) parseArray(depth int) (Value, error) {
	p.pos++ // '['
	arr := Array{}
	p.skipSpace()
	if p.pos < len(p.buf) && p.buf[p.pos] == ']' {
		p.pos++
		return arr, nil
	}
	for {
		v, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
		p.skipSpace()
		if p.pos >= len(p.buf) {
			return nil, p.errorf("expected ',' or ']', found end of input")
		}
		switch p.buf[p.pos] {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return arr, nil
		default:
			return nil, p.errorf("expected ',' or ']', found %q", p.buf[p.pos])
		}
	}
}

func (p *parser) parseObject(depth int) (Value, error) {
	p.pos++ // '{'
	obj := NewObject()
	p.skipSpace()
	if p.pos < len(p.buf) && p.buf[p.pos] == '}' {
		p.pos++
		return obj, nil
	}
	for {
		p.skipSpace()
		if p.pos >= len(p.buf) {
			return nil, p.errorf("expected object key, found end of input")
		}
		if p.buf[p.pos] != '"' {
			return nil, p.errorf("expected object key, found %q", p.buf[p.pos])
		}
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.pos >= len(p.buf) || p.buf[p.pos] != ':' {
			return nil, p.errorf("expected ':' after object key %q", key)
		}
		p.pos++
		v, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		obj.Set(key, v)
		p.skipSpace()
		if p.pos >= len(p.buf) {
			return nil, p.errorf("expected ',' or '}', found end of input")
		}
		switch p.buf[p.pos] {
		case ',':
			p.pos++
		case '}':
			p.pos++
			return obj, nil
		default:
			return nil, p.errorf("expected ',' or '}', found %q", p.buf[p.pos])
		}
	}
}
