package table

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	IDENT // name, keyword or type name
	INT   // integer literal

	PIPE       // |
	COMMA      // ,
	COLON      // :
	DOT        // .
	UNDERSCORE // _ (reserved / variable)
	BANG       // ! (unimplemented)
	LBRACKET   // [
	RBRACKET   // ]
)

var tokenNames = map[TokenType]string{
	EOF:        "end of input",
	IDENT:      "identifier",
	INT:        "integer",
	PIPE:       "'|'",
	COMMA:      "','",
	COLON:      "':'",
	DOT:        "'.'",
	UNDERSCORE: "'_'",
	BANG:       "'!'",
	LBRACKET:   "'['",
	RBRACKET:   "']'",
}

func (t TokenType) String() string {
	if s, ok := tokenNames[t]; ok {
		return s
	}
	return fmt.Sprintf("token(%d)", int(t))
}

// Position is a location in table source text.
type Position struct {
	Line   int // 1-based
	Column int // 1-based, counted in runes
	Offset int // 0-based byte offset
}

// IsValid reports whether the position was set by the lexer.
func (p Position) IsValid() bool { return p.Line > 0 }

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexeme with its source position.
type Token struct {
	Type   TokenType
	Lexeme string
	Pos    Position
}

func (t Token) String() string {
	switch t.Type {
	case IDENT, INT:
		return fmt.Sprintf("%s %q", t.Type, t.Lexeme)
	default:
		return t.Type.String()
	}
}
