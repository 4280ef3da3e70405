package table

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Column keywords.
const (
	kwWrite = "write"
	kwSend  = "send"
	kwRead  = "read"
	kwCall  = "call"
)

// parser is a recursive-descent parser over a fully lexed token stream.
type parser struct {
	toks []Token
	pos  int
}

func (p *parser) peek() Token { return p.toks[p.pos] }

func (p *parser) advance() Token {
	tok := p.toks[p.pos]
	if tok.Type != EOF {
		p.pos++
	}
	return tok
}

func (p *parser) at(tt TokenType) bool { return p.peek().Type == tt }

func (p *parser) atKeyword(kw string) bool {
	tok := p.peek()
	return tok.Type == IDENT && tok.Lexeme == kw
}

func (p *parser) errorf(tok Token, format string, args ...any) error {
	return &SyntaxError{Pos: tok.Pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) expect(tt TokenType, context string) (Token, error) {
	tok := p.peek()
	if tok.Type != tt {
		return tok, p.errorf(tok, "expected %s %s, found %s", tt, context, tok)
	}
	return p.advance(), nil
}

// parseTable parses comma separated rows until EOF.
func (p *parser) parseTable() ([]Entry, error) {
	var entries []Entry
	for !p.at(EOF) {
		e, err := p.parseEntry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)

		if p.at(COMMA) {
			p.advance()
			continue
		}
		if !p.at(EOF) {
			return nil, p.errorf(p.peek(), "expected ',' between rows, found %s", p.peek())
		}
	}
	return entries, nil
}

// parseEntry parses one | byte | ident | write | read | count | row.
func (p *parser) parseEntry() (Entry, error) {
	open, err := p.expect(PIPE, "at start of row")
	if err != nil {
		return Entry{}, err
	}
	e := Entry{Pos: open.Pos}

	if e.Byte, err = p.parseByte("command byte"); err != nil {
		return Entry{}, err
	}
	if _, err = p.expect(PIPE, "after command byte"); err != nil {
		return Entry{}, err
	}
	if e.Ident, err = p.parseIdent(); err != nil {
		return Entry{}, err
	}
	if _, err = p.expect(PIPE, "after identifier"); err != nil {
		return Entry{}, err
	}
	if e.Write, err = p.parseWriteKind(); err != nil {
		return Entry{}, err
	}
	if _, err = p.expect(PIPE, "after write kind"); err != nil {
		return Entry{}, err
	}
	if e.Read, err = p.parseReadKind(); err != nil {
		return Entry{}, err
	}
	if _, err = p.expect(PIPE, "after read kind"); err != nil {
		return Entry{}, err
	}
	if e.Count, err = p.parseByteCount(); err != nil {
		return Entry{}, err
	}
	if _, err = p.expect(PIPE, "at end of row"); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// parseByte parses an integer literal that must fit in a u8.
func (p *parser) parseByte(what string) (uint8, error) {
	tok, err := p.expect(INT, "for "+what)
	if err != nil {
		return 0, err
	}
	v, err := parseIntLiteral(tok.Lexeme)
	if err != nil {
		return 0, p.errorf(tok, "invalid integer literal %q", tok.Lexeme)
	}
	if v > 0xFF {
		return 0, p.errorf(tok, "%s %s out of range 0..255", what, tok.Lexeme)
	}
	return uint8(v), nil
}

// parseIntLiteral accepts decimal literals and 0x, 0o, 0b prefixed
// literals, with optional '_' digit separators. A leading zero without a
// prefix is decimal.
func parseIntLiteral(s string) (uint64, error) {
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "0x") || strings.HasPrefix(lower, "0o") || strings.HasPrefix(lower, "0b") {
		return strconv.ParseUint(lower, 0, 64)
	}
	if strings.HasPrefix(s, "_") || strings.HasSuffix(s, "_") || strings.Contains(s, "__") {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseUint(strings.ReplaceAll(s, "_", ""), 10, 64)
}

func (p *parser) parseIdent() (Ident, error) {
	tok := p.peek()
	switch tok.Type {
	case UNDERSCORE:
		p.advance()
		return ReservedIdent, nil
	case IDENT:
		p.advance()
		return Named(tok.Lexeme), nil
	default:
		return Ident{}, p.errorf(tok, "expected '_' or identifier, found %s", tok)
	}
}

func (p *parser) parseWriteKind() (WriteKind, error) {
	tok := p.peek()
	switch {
	case tok.Type == UNDERSCORE:
		p.advance()
		return WriteKind{Shape: WriteReserved}, nil
	case tok.Type == BANG:
		p.advance()
		return WriteKind{Shape: WriteUnimplemented}, nil
	case p.atKeyword(kwWrite):
		p.advance()
		typ, err := p.parseTypedSuffix(kwWrite)
		if err != nil {
			return WriteKind{}, err
		}
		return Write(typ), nil
	case p.atKeyword(kwSend):
		p.advance()
		return Send(), nil
	default:
		return WriteKind{}, p.errorf(tok, "expected '_', '!', 'write: <type>' or 'send', found %s", tok)
	}
}

func (p *parser) parseReadKind() (ReadKind, error) {
	tok := p.peek()
	switch {
	case tok.Type == UNDERSCORE:
		p.advance()
		return ReadKind{Shape: ReadReserved}, nil
	case tok.Type == BANG:
		p.advance()
		return ReadKind{Shape: ReadUnimplemented}, nil
	case p.atKeyword(kwRead):
		p.advance()
		typ, err := p.parseTypedSuffix(kwRead)
		if err != nil {
			return ReadKind{}, err
		}
		return Read(typ), nil
	case p.atKeyword(kwCall):
		p.advance()
		typ, err := p.parseTypedSuffix(kwCall)
		if err != nil {
			return ReadKind{}, err
		}
		return Call(typ), nil
	default:
		return ReadKind{}, p.errorf(tok, "expected '_', '!', 'read: <type>' or 'call: <type>', found %s", tok)
	}
}

func (p *parser) parseByteCount() (ByteCount, error) {
	tok := p.peek()
	switch tok.Type {
	case UNDERSCORE:
		p.advance()
		return Variable, nil
	case BANG:
		p.advance()
		return ByteCount{Shape: CountUnimplemented}, nil
	case INT:
		n, err := p.parseByte("byte count")
		if err != nil {
			return ByteCount{}, err
		}
		return Count(n), nil
	default:
		return ByteCount{}, p.errorf(tok, "expected '_', '!' or byte count, found %s", tok)
	}
}

// parseTypedSuffix parses ": <Type>" following a column keyword.
func (p *parser) parseTypedSuffix(kw string) (string, error) {
	if _, err := p.expect(COLON, "after '"+kw+"'"); err != nil {
		return "", err
	}
	return p.parseType()
}

// parseType parses ["[]"] ident ["." ident].
func (p *parser) parseType() (string, error) {
	var sb strings.Builder
	if p.at(LBRACKET) {
		p.advance()
		if _, err := p.expect(RBRACKET, "in slice type"); err != nil {
			return "", err
		}
		sb.WriteString("[]")
	}
	tok, err := p.expect(IDENT, "for payload type")
	if err != nil {
		return "", err
	}
	sb.WriteString(tok.Lexeme)
	if p.at(DOT) {
		p.advance()
		sel, err := p.expect(IDENT, "after '.' in qualified type")
		if err != nil {
			return "", err
		}
		sb.WriteString(".")
		sb.WriteString(sel.Lexeme)
	}
	return sb.String(), nil
}

// Parse parses table source. Parsing stops at the first syntax error.
func Parse(src []byte) (*Table, error) {
	return ParseString(string(src))
}

// ParseString parses table source from a string.
func ParseString(src string) (*Table, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	entries, err := p.parseTable()
	if err != nil {
		return nil, err
	}
	return &Table{Entries: entries}, nil
}

// ParseReader parses table source from r.
func ParseReader(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}
	return Parse(data)
}

// ParseRow parses exactly one row. A single trailing comma is allowed.
func ParseRow(s string) (Entry, error) {
	toks, err := tokenize(s)
	if err != nil {
		return Entry{}, err
	}
	p := &parser{toks: toks}
	e, err := p.parseEntry()
	if err != nil {
		return Entry{}, err
	}
	if p.at(COMMA) {
		p.advance()
	}
	if !p.at(EOF) {
		return Entry{}, p.errorf(p.peek(), "unexpected %s after row", p.peek())
	}
	return e, nil
}

// LoadFile reads and parses a table file. Syntax errors carry the path.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		if se, ok := err.(*SyntaxError); ok {
			se.File = path
			return nil, se
		}
		return nil, err
	}
	t.Source = path
	return t, nil
}
