package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type Token int

const (
	ILLEGAL Token = iota
	EOF
	WS
	COMMENT
	LEFT_PAREN
	RIGHT_PAREN
	DOT
	QUOTE
	NUMBER
	SYMBOL
	STRING
	TRUE
	FALSE
)

const eof = rune(0)

var tokenNames = [...]string{
	ILLEGAL:     "ILLEGAL",
	EOF:         "EOF",
	WS:          "WS",
	COMMENT:     "COMMENT",
	LEFT_PAREN:  "LEFT_PAREN",
	RIGHT_PAREN: "RIGHT_PAREN",
	DOT:         "DOT",
	QUOTE:       "QUOTE",
	NUMBER:      "NUMBER",
	SYMBOL:      "SYMBOL",
	STRING:      "STRING",
	TRUE:        "TRUE",
	FALSE:       "FALSE",
}

func (t Token) String() string {
	if t >= 0 && int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return "Unknown token: " + fmt.Sprintf("%d", int(t))
}

// Item is a single token with the source text it was scanned from.
type Item struct {
	Token Token
	Lit   string
	Pos   int
}

func (i Item) String() string {
	return fmt.Sprintf("%s %q", i.Token, i.Lit)
}

func isWhitespace(ch rune) bool {
	return unicode.IsSpace(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// isDelimiter reports whether ch ends a number or symbol.
func isDelimiter(ch rune) bool {
	switch ch {
	case eof, '(', ')', '"', ';', '\'':
		return true
	}
	return isWhitespace(ch)
}

func isSymbolChar(ch rune) bool {
	return !isDelimiter(ch) && unicode.IsPrint(ch)
}

type stateFn func(l *Lexer) stateFn

// Lexer splits Scheme source into tokens. The state machine is driven
// lazily from NextItem, so an abandoned Lexer holds no resources.
type Lexer struct {
	name  string
	input string
	start int
	pos   int
	width int
	state stateFn
	items []Item
}

func New(name, input string) *Lexer {
	return &Lexer{
		name:  name,
		input: input,
		state: lexBase,
	}
}

func (l *Lexer) Name() string {
	return l.name
}

// NextItem returns the next token. Once the input is exhausted, or after
// an ILLEGAL token, it keeps returning EOF.
func (l *Lexer) NextItem() Item {
	for len(l.items) == 0 {
		if l.state == nil {
			return Item{Token: EOF, Pos: l.pos}
		}
		l.state = l.state(l)
	}
	it := l.items[0]
	l.items = l.items[1:]
	return it
}

func (l *Lexer) peek() rune {
	ch := l.next()
	l.rewind()
	return ch
}

func (l *Lexer) next() (ch rune) {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	ch, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width
	return ch
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

func (l *Lexer) emit(t Token) {
	l.emitLit(t, l.input[l.start:l.pos])
}

func (l *Lexer) emitLit(t Token, lit string) {
	l.items = append(l.items, Item{Token: t, Lit: lit, Pos: l.start})
	l.start = l.pos
}

func (l *Lexer) rewind() {
	l.pos -= l.width
	l.width = 0
}

func (l *Lexer) acceptRun(valid string) {
	for strings.IndexRune(valid, l.next()) >= 0 {
	}
	l.rewind()
}

func (l *Lexer) acceptRunFn(test func(rune) bool) {
	for test(l.next()) {
	}
	l.rewind()
}

func (l *Lexer) errorf(format string, args ...interface{}) stateFn {
	l.items = append(l.items, Item{
		Token: ILLEGAL,
		Lit:   fmt.Sprintf(format, args...),
		Pos:   l.start,
	})
	return nil
}

func lexBase(l *Lexer) stateFn {
	for {
		switch ch := l.next(); {
		case ch == eof:
			l.emit(EOF)
			return nil
		case isWhitespace(ch):
			l.ignore()
		case ch == ';':
			return lexComment
		case ch == '(':
			l.emit(LEFT_PAREN)
			return lexBase
		case ch == ')':
			l.emit(RIGHT_PAREN)
			return lexBase
		case ch == '\'':
			l.emit(QUOTE)
			return lexBase
		case ch == '"':
			l.ignore()
			return lexString
		case ch == '#':
			return lexHash
		case ch == '-' || ch == '+':
			return symbolOrNumber
		case ch == '.':
			return dotOrNumber
		case isDigit(ch):
			return lexNumber
		case isSymbolChar(ch):
			return lexSymbol
		default:
			return l.errorf("unexpected character %q", ch)
		}
	}
}

func lexComment(l *Lexer) stateFn {
	for {
		ch := l.next()
		if ch == eof || ch == '\n' {
			break
		}
	}
	l.emit(COMMENT)
	return lexBase
}

func lexHash(l *Lexer) stateFn {
	l.ignore()
	ch := l.next()
	if ch == eof {
		return l.errorf("unexpected end of input after #")
	}
	if !isDelimiter(l.peek()) {
		l.acceptRunFn(isSymbolChar)
		return l.errorf("unsupported hash code #%s", l.input[l.start:l.pos])
	}
	switch ch {
	case 't':
		l.emit(TRUE)
	case 'f':
		l.emit(FALSE)
	default:
		return l.errorf("unsupported hash code #%c", ch)
	}
	return lexBase
}

func symbolOrNumber(l *Lexer) stateFn {
	if isDigit(l.peek()) {
		return lexNumber
	}
	return lexSymbol
}

func dotOrNumber(l *Lexer) stateFn {
	ch := l.peek()
	switch {
	case isDigit(ch):
		return lexNumber
	case isDelimiter(ch):
		l.emit(DOT)
		return lexBase
	}
	return lexSymbol
}

func lexNumber(l *Lexer) stateFn {
	l.acceptRun("0123456789.")
	if !isDelimiter(l.peek()) {
		// 1+ or 2nd: a symbol that happens to start with digits
		return lexSymbol
	}
	l.emit(NUMBER)
	return lexBase
}

func lexSymbol(l *Lexer) stateFn {
	l.acceptRunFn(isSymbolChar)
	l.emit(SYMBOL)
	return lexBase
}

func lexString(l *Lexer) stateFn {
	for {
		switch ch := l.next(); {
		case ch == eof:
			return l.errorf("unterminated string: %q", l.input[l.start:l.pos])
		case ch == '\\':
			if l.next() == eof {
				return l.errorf("unterminated string: %q", l.input[l.start:l.pos])
			}
		case ch == '"':
			l.rewind()
			l.emit(STRING)
			l.next()
			l.ignore()
			return lexBase
		}
	}
}
