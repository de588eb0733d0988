package compiler

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

var (
	identifierRe = regexp.MustCompile(`^[a-zA-Z_]\w*$`)
	constantRe   = regexp.MustCompile(`^[0-9]+$`)
)

// Mode controls how a Scanner reacts to an unrecognized lexeme.
type Mode int

const (
	// FailFast stops at the first bad lexeme; every later Scan returns
	// the same error.
	FailFast Mode = iota
	// AllErrors records the error, returns an ILLEGAL token and keeps
	// scanning.
	AllErrors
)

// cursor is a position in the source. It is a plain value: advance
// returns the next cursor and never mutates the receiver.
type cursor struct {
	off    int // byte offset of the next rune
	line   int
	column int
}

func startCursor() cursor {
	return cursor{off: 0, line: 1, column: 1}
}

func (c cursor) advance(r rune, size int) cursor {
	c.off += size
	if r == '\n' {
		c.line++
		c.column = 1
	} else {
		c.column++
	}
	return c
}

func (c cursor) pos() Pos {
	return Pos{Offset: c.off, Line: c.line, Column: c.column}
}

// nextLexeme skips whitespace starting at c and returns the cursors
// bounding the next lexeme. A lexeme is either a single boundary
// character or a maximal run of characters that are neither whitespace
// nor boundaries. At end of input start == end.
func nextLexeme(src string, c cursor) (start, end cursor) {
	for c.off < len(src) {
		r, size := utf8.DecodeRuneInString(src[c.off:])
		if !unicode.IsSpace(r) {
			break
		}
		c = c.advance(r, size)
	}
	start = c
	if c.off >= len(src) {
		return start, c
	}

	r, size := utf8.DecodeRuneInString(src[c.off:])
	c = c.advance(r, size)
	if isBoundary(r) {
		return start, c
	}
	for c.off < len(src) {
		r, size = utf8.DecodeRuneInString(src[c.off:])
		if unicode.IsSpace(r) || isBoundary(r) {
			break
		}
		c = c.advance(r, size)
	}
	return start, c
}

// Classify turns a closed lexeme into a token anchored at pos. Exact
// punctuation and keyword matches win over the identifier pattern, which
// wins over the constant pattern. Anything else is an *Error.
func Classify(lexeme string, pos Pos) (Token, error) {
	tok, err := classify(lexeme, pos)
	if err != nil {
		return tok, err
	}
	return tok, nil
}

func classify(lexeme string, pos Pos) (Token, *Error) {
	if r, size := utf8.DecodeRuneInString(lexeme); size == len(lexeme) {
		if tt, ok := punctuation[r]; ok {
			return Token{Type: tt, Lexeme: lexeme, Pos: pos}, nil
		}
	}
	if kw, ok := keywords[lexeme]; ok {
		return Token{Type: KEYWORD, Keyword: kw, Lexeme: lexeme, Pos: pos}, nil
	}
	if identifierRe.MatchString(lexeme) {
		return Token{Type: IDENTIFIER, Lexeme: lexeme, Pos: pos}, nil
	}
	if constantRe.MatchString(lexeme) {
		return Token{Type: CONSTANT, Lexeme: lexeme, Pos: pos}, nil
	}
	return Token{Type: ILLEGAL, Lexeme: lexeme, Pos: pos}, &Error{Pos: pos, Lexeme: lexeme}
}

// Scanner yields the tokens of a source string one at a time.
type Scanner struct {
	src  string
	cur  cursor
	mode Mode
	errs ErrorList
	err  error // sticky error in FailFast mode
}

func NewScanner(src string, mode Mode) *Scanner {
	return &Scanner{src: src, cur: startCursor(), mode: mode}
}

// Scan returns the next token. At end of input it returns an EOF token
// positioned just past the last character.
func (s *Scanner) Scan() (Token, error) {
	if s.err != nil {
		return Token{Type: EOF, Pos: s.cur.pos()}, s.err
	}

	start, end := nextLexeme(s.src, s.cur)
	s.cur = end
	if start.off == end.off {
		return Token{Type: EOF, Pos: end.pos()}, nil
	}

	tok, lexErr := classify(s.src[start.off:end.off], start.pos())
	if lexErr != nil {
		s.errs = append(s.errs, lexErr)
		if s.mode == FailFast {
			s.err = lexErr
			return tok, lexErr
		}
	}
	return tok, nil
}

// Errors returns every lexical error seen so far.
func (s *Scanner) Errors() ErrorList {
	return s.errs
}

// Tokenize converts a string of C code into tokens. It stops at the
// first unrecognized lexeme and returns no tokens in that case.
func Tokenize(src string) ([]Token, error) {
	s := NewScanner(src, FailFast)
	var tokens []Token
	for {
		tok, err := s.Scan()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// TokenizeAll scans the whole input, replacing each unrecognized lexeme
// with an ILLEGAL token and collecting one error per bad lexeme.
func TokenizeAll(src string) ([]Token, ErrorList) {
	s := NewScanner(src, AllErrors)
	var tokens []Token
	for {
		tok, _ := s.Scan()
		if tok.Type == EOF {
			return tokens, s.Errors()
		}
		tokens = append(tokens, tok)
	}
}
