package compiler

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF     TokenType = iota // sentinel: end of input, only returned by Scanner.Scan
	ILLEGAL                  // unrecognized lexeme, only produced in AllErrors mode

	// Literals
	IDENTIFIER // variable / function name
	CONSTANT   // decimal integer literal, kept as text
	KEYWORD    // one of the Keyword kinds below

	// Paired delimiters
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }

	// Punctuation
	SEMICOLON // ;
)

var tokenNames = [...]string{
	EOF:        "EOF",
	ILLEGAL:    "ILLEGAL",
	IDENTIFIER: "IDENTIFIER",
	CONSTANT:   "CONSTANT",
	KEYWORD:    "KEYWORD",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	SEMICOLON:  "SEMICOLON",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Keyword is the closed set of reserved words the front end knows about.
type Keyword int

const (
	NO_KEYWORD Keyword = iota
	KW_RETURN          // "return"
	KW_INT             // "int"
	KW_VOID            // "void"
)

var keywordNames = [...]string{
	NO_KEYWORD: "",
	KW_RETURN:  "Return",
	KW_INT:     "Int",
	KW_VOID:    "Void",
}

func (k Keyword) String() string {
	if int(k) >= 0 && int(k) < len(keywordNames) {
		return keywordNames[k]
	}
	return fmt.Sprintf("Keyword(%d)", int(k))
}

// keywords maps source text to its Keyword kind.
var keywords = map[string]Keyword{
	"return": KW_RETURN,
	"int":    KW_INT,
	"void":   KW_VOID,
}

// punctuation maps each boundary character to its token type. Boundary
// characters are one-character tokens and also end any pending lexeme.
var punctuation = map[rune]TokenType{
	';': SEMICOLON,
	'(': LPAREN,
	')': RPAREN,
	'{': LBRACE,
	'}': RBRACE,
}

func isBoundary(r rune) bool {
	_, ok := punctuation[r]
	return ok
}

// Pos is a location in the source text. Line and Column are 1-based and
// Column counts runes; Offset is the 0-based byte offset.
type Pos struct {
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether p was set by the scanner.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

// Token is a single lexical unit produced by the Scanner.
type Token struct {
	Type    TokenType
	Keyword Keyword // set only when Type == KEYWORD
	Lexeme  string  // the exact source text that was matched
	Pos     Pos     // position of the lexeme's first character
}

// End returns the byte offset just past the lexeme.
func (t Token) End() int {
	return t.Pos.Offset + len(t.Lexeme)
}

func (t Token) String() string {
	kind := t.Type.String()
	if t.Type == KEYWORD {
		kind = fmt.Sprintf("%s(%s)", t.Type, t.Keyword)
	}
	return fmt.Sprintf("%-15s %-14q  line %d, column %d", kind, t.Lexeme, t.Pos.Line, t.Pos.Column)
}
