package table

import (
	"unicode"
	"unicode/utf8"
)

// lexer holds all mutable state for a single scanning pass over src.
type lexer struct {
	src  string
	off  int // byte offset of the next rune to consume
	line int // current 1-based line
	col  int // current 1-based column
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1, col: 1}
}

// peek returns the rune at the current position without advancing.
func (l *lexer) peek() rune {
	if l.off >= len(l.src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.off:])
	return r
}

// peek2 returns the rune one position ahead of the current position.
func (l *lexer) peek2() rune {
	if l.off >= len(l.src) {
		return 0
	}
	_, size := utf8.DecodeRuneInString(l.src[l.off:])
	if l.off+size >= len(l.src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.off+size:])
	return r
}

// advance consumes one rune and returns it.
func (l *lexer) advance() rune {
	if l.off >= len(l.src) {
		return 0
	}
	r, size := utf8.DecodeRuneInString(l.src[l.off:])
	l.off += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *lexer) pos() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.off}
}

// skipTrivia discards whitespace and comments.
func (l *lexer) skipTrivia() error {
	for l.off < len(l.src) {
		r := l.peek()
		switch {
		case unicode.IsSpace(r):
			l.advance()
		case r == '/' && l.peek2() == '/':
			for l.off < len(l.src) && l.peek() != '\n' {
				l.advance()
			}
		case r == '/' && l.peek2() == '*':
			start := l.pos()
			l.advance()
			l.advance()
			closed := false
			for l.off < len(l.src) {
				if l.peek() == '*' && l.peek2() == '/' {
					l.advance()
					l.advance()
					closed = true
					break
				}
				l.advance()
			}
			if !closed {
				return &SyntaxError{Pos: start, Msg: "unterminated block comment"}
			}
		default:
			return nil
		}
	}
	return nil
}

func isIdentStart(r rune) bool { return unicode.IsLetter(r) || r == '_' }
func isIdentPart(r rune) bool  { return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' }

// scanIdent collects an identifier. A lone "_" is returned as UNDERSCORE.
func (l *lexer) scanIdent() Token {
	pos := l.pos()
	start := l.off
	for l.off < len(l.src) && isIdentPart(l.peek()) {
		l.advance()
	}
	lexeme := l.src[start:l.off]
	if lexeme == "_" {
		return Token{Type: UNDERSCORE, Lexeme: lexeme, Pos: pos}
	}
	return Token{Type: IDENT, Lexeme: lexeme, Pos: pos}
}

// scanInt collects an integer literal including any radix prefix and digit
// separators. Validation of the digits happens in the parser.
func (l *lexer) scanInt() Token {
	pos := l.pos()
	start := l.off
	for l.off < len(l.src) {
		r := l.peek()
		if !unicode.IsDigit(r) && !unicode.IsLetter(r) && r != '_' {
			break
		}
		l.advance()
	}
	return Token{Type: INT, Lexeme: l.src[start:l.off], Pos: pos}
}

var punctuation = map[rune]TokenType{
	'|': PIPE,
	',': COMMA,
	':': COLON,
	'.': DOT,
	'!': BANG,
	'[': LBRACKET,
	']': RBRACKET,
}

// next returns the next token in the input.
func (l *lexer) next() (Token, error) {
	if err := l.skipTrivia(); err != nil {
		return Token{}, err
	}
	if l.off >= len(l.src) {
		return Token{Type: EOF, Pos: l.pos()}, nil
	}

	r := l.peek()
	switch {
	case isIdentStart(r):
		return l.scanIdent(), nil
	case unicode.IsDigit(r):
		return l.scanInt(), nil
	}

	if tt, ok := punctuation[r]; ok {
		pos := l.pos()
		l.advance()
		return Token{Type: tt, Lexeme: string(r), Pos: pos}, nil
	}

	return Token{}, &SyntaxError{Pos: l.pos(), Msg: "unexpected character " + quoteRune(r)}
}

// tokenize lexes the whole input, ending with an EOF token.
func tokenize(src string) ([]Token, error) {
	l := newLexer(src)
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks, nil
		}
	}
}
