package scheme

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rread/scheval/lexer"
)

type Tokenizer interface {
	NextItem() lexer.Item
}

// Read returns the next datum from l, or ErrEOF when the input is exhausted.
func Read(l Tokenizer) (Data, error) {
	return readFrom(l, nextItem(l))
}

func nextItem(l Tokenizer) lexer.Item {
	for {
		t := l.NextItem()
		if t.Token != lexer.WS && t.Token != lexer.COMMENT {
			return t
		}
	}
}

func readFrom(l Tokenizer, t lexer.Item) (Data, error) {
	switch t.Token {
	case lexer.EOF:
		return nil, ErrEOF
	case lexer.LEFT_PAREN:
		return readList(l)
	case lexer.RIGHT_PAREN:
		return nil, fmt.Errorf("unexpected ) at offset %d", t.Pos)
	case lexer.DOT:
		return nil, fmt.Errorf("unexpected . at offset %d", t.Pos)
	case lexer.QUOTE:
		d, err := Read(l)
		if err != nil {
			return nil, fmt.Errorf("incomplete quote: %w", err)
		}
		return List(_quote, d), nil
	case lexer.SYMBOL:
		return Symbol(t.Lit), nil
	case lexer.NUMBER:
		v, err := strconv.ParseFloat(t.Lit, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", t.Lit)
		}
		return Number(v), nil
	case lexer.STRING:
		s, err := strconv.Unquote(`"` + strings.ReplaceAll(t.Lit, "\n", `\n`) + `"`)
		if err != nil {
			return nil, fmt.Errorf("bad string literal %q: %v", t.Lit, err)
		}
		return String(s), nil
	case lexer.TRUE:
		return T, nil
	case lexer.FALSE:
		return False, nil
	case lexer.ILLEGAL:
		return nil, errors.New(t.Lit)
	}
	return nil, fmt.Errorf("malformed input at offset %d: %v", t.Pos, t)
}

// readList reads the elements after an opening paren, handling (a b . c)
// but rejecting (a b . c d).
func readList(l Tokenizer) (Data, error) {
	var items []Data
	for {
		t := nextItem(l)
		switch t.Token {
		case lexer.RIGHT_PAREN:
			return SliceToList(items, Empty), nil
		case lexer.EOF:
			return nil, fmt.Errorf("failed to complete list: %w", ErrEOF)
		case lexer.DOT:
			if len(items) == 0 {
				return nil, fmt.Errorf("nothing precedes . at offset %d", t.Pos)
			}
			last, err := Read(l)
			if err != nil {
				return nil, fmt.Errorf("failed to complete list: %w", err)
			}
			if end := nextItem(l); end.Token != lexer.RIGHT_PAREN {
				if end.Token == lexer.EOF {
					return nil, fmt.Errorf("failed to complete list: %w", ErrEOF)
				}
				return nil, fmt.Errorf("more than one object follows . at offset %d", end.Pos)
			}
			return SliceToList(items, last), nil
		}
		d, err := readFrom(l, t)
		if err != nil {
			if errors.Is(err, ErrEOF) {
				return nil, fmt.Errorf("failed to complete list: %w", err)
			}
			return nil, err
		}
		items = append(items, d)
	}
}

// ReadAll parses every datum in src.
func ReadAll(src string) ([]Data, error) {
	l := lexer.New("scheme", src)
	var out []Data
	for {
		d, err := Read(l)
		if err == ErrEOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, d)
	}
}

// Parse reads the first datum in src.
func Parse(src string) (Data, error) {
	return Read(lexer.New("scheme", src))
}
