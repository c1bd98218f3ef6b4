package zmin

import "fmt"

// Kind classifies a token produced by the Tokenizer.
type Kind uint8

const (
	KindEOF Kind = iota

	// Structural
	KindLBrace   // {
	KindRBrace   // }
	KindLBracket // [
	KindRBracket // ]
	KindColon    // :
	KindComma    // ,

	// Values
	KindString // "quoted string", span includes both quotes
	KindNumber // 123, -4.5e6
	KindTrue   // true
	KindFalse  // false
	KindNull   // null
)

// String returns the token kind name.
func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "EOF"
	case KindLBrace:
		return "{"
	case KindRBrace:
		return "}"
	case KindLBracket:
		return "["
	case KindRBracket:
		return "]"
	case KindColon:
		return ":"
	case KindComma:
		return ","
	case KindString:
		return "STRING"
	case KindNumber:
		return "NUMBER"
	case KindTrue:
		return "TRUE"
	case KindFalse:
		return "FALSE"
	case KindNull:
		return "NULL"
	default:
		return "UNKNOWN"
	}
}

// Token is a classified span of the input. The bytes input[Start:End] are
// copied verbatim into minified output; tokens are transient and never
// persisted.
type Token struct {
	Kind  Kind
	Start int
	End   int
}

// Tokenizer scans JSON text into token spans, validating the lexical
// grammar (string escapes, number shape, literal keywords) as it goes.
// Insignificant whitespace between tokens is consumed silently.
type Tokenizer struct {
	data []byte
	pos  int
}

// NewTokenizer creates a tokenizer over data. The tokenizer does not take
// ownership of data and never mutates it.
func NewTokenizer(data []byte) *Tokenizer {
	return &Tokenizer{data: data}
}

// Pos returns the current byte offset.
func (t *Tokenizer) Pos() int {
	return t.pos
}

// Next returns the next token. After the last token it returns KindEOF.
// The first lexical violation is reported as a *SyntaxError.
func (t *Tokenizer) Next() (Token, error) {
	t.skipWhitespace()

	if t.pos >= len(t.data) {
		return Token{Kind: KindEOF, Start: t.pos, End: t.pos}, nil
	}

	start := t.pos
	ch := t.data[t.pos]

	switch ch {
	case '{':
		t.pos++
		return Token{Kind: KindLBrace, Start: start, End: t.pos}, nil
	case '}':
		t.pos++
		return Token{Kind: KindRBrace, Start: start, End: t.pos}, nil
	case '[':
		t.pos++
		return Token{Kind: KindLBracket, Start: start, End: t.pos}, nil
	case ']':
		t.pos++
		return Token{Kind: KindRBracket, Start: start, End: t.pos}, nil
	case ':':
		t.pos++
		return Token{Kind: KindColon, Start: start, End: t.pos}, nil
	case ',':
		t.pos++
		return Token{Kind: KindComma, Start: start, End: t.pos}, nil
	case '"':
		return t.scanString()
	case 't':
		return t.scanLiteral("true", KindTrue)
	case 'f':
		return t.scanLiteral("false", KindFalse)
	case 'n':
		return t.scanLiteral("null", KindNull)
	}

	if ch == '-' || isDigit(ch) {
		return t.scanNumber()
	}

	return Token{}, &SyntaxError{
		Msg:    fmt.Sprintf("unexpected character %q", ch),
		Offset: start,
	}
}

// scanString scans a quoted string, validating escape sequences and
// rejecting raw control characters.
func (t *Tokenizer) scanString() (Token, error) {
	start := t.pos
	t.pos++ // opening quote

	for t.pos < len(t.data) {
		ch := t.data[t.pos]

		switch {
		case ch == '"':
			t.pos++
			return Token{Kind: KindString, Start: start, End: t.pos}, nil

		case ch == '\\':
			if err := t.scanEscape(); err != nil {
				return Token{}, err
			}

		case ch < 0x20:
			return Token{}, &SyntaxError{
				Msg:    fmt.Sprintf("control character %#02x in string literal", ch),
				Offset: t.pos,
			}

		default:
			// Any other byte, including multi-byte UTF-8, is copied verbatim.
			t.pos++
		}
	}

	return Token{}, &SyntaxError{Msg: "unterminated string literal", Offset: start}
}

// scanEscape consumes one escape sequence starting at the backslash.
func (t *Tokenizer) scanEscape() error {
	escStart := t.pos
	t.pos++ // backslash
	if t.pos >= len(t.data) {
		return &SyntaxError{Msg: "unterminated escape sequence", Offset: escStart}
	}

	switch t.data[t.pos] {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		t.pos++
		return nil
	case 'u':
		t.pos++
		return t.scanUnicodeEscape(escStart)
	}

	return &SyntaxError{
		Msg:    fmt.Sprintf("invalid escape character %q", t.data[t.pos]),
		Offset: escStart,
	}
}

// scanUnicodeEscape consumes the 4 hex digits of a \u escape, plus the
// paired low surrogate when the first escape names a high surrogate.
func (t *Tokenizer) scanUnicodeEscape(escStart int) error {
	hi, err := t.scanHex4(escStart)
	if err != nil {
		return err
	}

	if hi >= 0xDC00 && hi <= 0xDFFF {
		return &SyntaxError{Msg: "unpaired low surrogate escape", Offset: escStart}
	}

	if hi >= 0xD800 && hi <= 0xDBFF {
		// High surrogate must be immediately followed by a low surrogate
		// escape to form a well-formed pair.
		pairStart := t.pos
		if t.pos+1 >= len(t.data) || t.data[t.pos] != '\\' || t.data[t.pos+1] != 'u' {
			return &SyntaxError{Msg: "unpaired high surrogate escape", Offset: escStart}
		}
		t.pos += 2
		lo, err := t.scanHex4(pairStart)
		if err != nil {
			return err
		}
		if lo < 0xDC00 || lo > 0xDFFF {
			return &SyntaxError{Msg: "unpaired high surrogate escape", Offset: escStart}
		}
	}

	return nil
}

// scanHex4 consumes exactly 4 hex digits and returns their value.
func (t *Tokenizer) scanHex4(escStart int) (rune, error) {
	if t.pos+4 > len(t.data) {
		return 0, &SyntaxError{Msg: "truncated unicode escape", Offset: escStart}
	}
	var v rune
	for i := 0; i < 4; i++ {
		d := hexValue(t.data[t.pos+i])
		if d < 0 {
			return 0, &SyntaxError{Msg: "invalid unicode escape", Offset: escStart}
		}
		v = v<<4 | rune(d)
	}
	t.pos += 4
	return v, nil
}

// scanNumber scans a number: optional sign, integer part with no leading
// zero (except a lone zero), optional fraction, optional exponent.
func (t *Tokenizer) scanNumber() (Token, error) {
	start := t.pos

	if t.data[t.pos] == '-' {
		t.pos++
	}

	// Integer part
	if t.pos >= len(t.data) || !isDigit(t.data[t.pos]) {
		return Token{}, &SyntaxError{Msg: "invalid number", Offset: start}
	}
	if t.data[t.pos] == '0' {
		t.pos++
	} else {
		for t.pos < len(t.data) && isDigit(t.data[t.pos]) {
			t.pos++
		}
	}
	if t.pos < len(t.data) && isDigit(t.data[t.pos]) {
		return Token{}, &SyntaxError{Msg: "number has leading zero", Offset: start}
	}

	// Fraction part
	if t.pos < len(t.data) && t.data[t.pos] == '.' {
		t.pos++
		if t.pos >= len(t.data) || !isDigit(t.data[t.pos]) {
			return Token{}, &SyntaxError{Msg: "number has empty fraction", Offset: start}
		}
		for t.pos < len(t.data) && isDigit(t.data[t.pos]) {
			t.pos++
		}
	}

	// Exponent part
	if t.pos < len(t.data) && (t.data[t.pos] == 'e' || t.data[t.pos] == 'E') {
		t.pos++
		if t.pos < len(t.data) && (t.data[t.pos] == '+' || t.data[t.pos] == '-') {
			t.pos++
		}
		if t.pos >= len(t.data) || !isDigit(t.data[t.pos]) {
			return Token{}, &SyntaxError{Msg: "number has empty exponent", Offset: start}
		}
		for t.pos < len(t.data) && isDigit(t.data[t.pos]) {
			t.pos++
		}
	}

	return Token{Kind: KindNumber, Start: start, End: t.pos}, nil
}

// scanLiteral scans an exact keyword (true, false, null).
func (t *Tokenizer) scanLiteral(word string, kind Kind) (Token, error) {
	start := t.pos
	if t.pos+len(word) > len(t.data) || string(t.data[t.pos:t.pos+len(word)]) != word {
		return Token{}, &SyntaxError{
			Msg:    fmt.Sprintf("invalid literal, expected %q", word),
			Offset: start,
		}
	}
	t.pos += len(word)
	return Token{Kind: kind, Start: t.pos - len(word), End: t.pos}, nil
}

// skipWhitespace consumes insignificant whitespace between tokens.
func (t *Tokenizer) skipWhitespace() {
	for t.pos < len(t.data) && isSpace(t.data[t.pos]) {
		t.pos++
	}
}

// Character classification

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func hexValue(ch byte) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10
	default:
		return -1
	}
}
