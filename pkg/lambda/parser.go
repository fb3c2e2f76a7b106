package lambda

import (
	"fmt"

	"github.com/samber/lo"
)

// Parser is a recursive-descent parser over a token slice.
//
//	Expr ::= '(' Expr Expr ')' | '(' Expr ')' | Letter | 'λ' Letter '.' Expr
type Parser struct {
	tokens []Token
	pos    int
	end    int // offset reported when input runs out
}

func NewParser(tokens []Token) *Parser {
	p := &Parser{tokens: tokens}
	if n := len(tokens); n > 0 {
		p.end = tokens[n-1].Offset + 1
	}
	return p
}

// Parse parses exactly one term; leftover tokens are an error.
func (p *Parser) Parse() (Term, error) {
	term, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		return nil, p.errorf(tok.Offset, "unexpected %s after end of term", tok)
	}
	return term, nil
}

func (p *Parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) next() (Token, error) {
	tok, ok := p.peek()
	if !ok {
		return Token{}, p.errorf(p.end, "unexpected end of input")
	}
	p.pos++
	return tok, nil
}

func (p *Parser) expect(kind TokenKind) (Token, error) {
	tok, err := p.next()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		return Token{}, p.errorf(tok.Offset, "expected %q, got %s", kind.String(), tok)
	}
	return tok, nil
}

func (p *Parser) parseExpr() (Term, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case TokenLetter:
		return Var{Name: tok.Letter}, nil
	case TokenLambda:
		return p.parseAbs()
	case TokenLParen:
		return p.parseParen()
	default:
		return nil, p.errorf(tok.Offset, "unexpected %s", tok)
	}
}

// parseAbs parses the rest of an abstraction after the lambda glyph.
func (p *Parser) parseAbs() (Term, error) {
	param, err := p.expect(TokenLetter)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenDot); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return Abs{Param: Var{Name: param.Letter}, Body: body}, nil
}

// parseParen parses an application, or a single parenthesized term, after
// the opening parenthesis.
func (p *Parser) parseParen() (Term, error) {
	fun, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok && tok.Kind == TokenRParen {
		p.pos++
		return fun, nil
	}
	arg, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRParen); err != nil {
		return nil, err
	}
	return App{Fun: fun, Arg: arg}, nil
}

func (p *Parser) errorf(offset int, format string, args ...any) error {
	return &SyntaxError{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// ParseTokens parses a token stream into a term.
func ParseTokens(tokens []Token) (Term, error) {
	return NewParser(tokens).Parse()
}

// Parse parses a lambda term from a string.
func Parse(input string) (Term, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}

// Unparse renders a term as tokens. Applications are always parenthesized
// and nothing else is, so ParseTokens(Unparse(t)) rebuilds t exactly.
func Unparse(t Term) []Token {
	switch v := t.(type) {
	case Var:
		return []Token{{Kind: TokenLetter, Letter: v.Name}}
	case Abs:
		return lo.Flatten([][]Token{
			{{Kind: TokenLambda}, {Kind: TokenLetter, Letter: v.Param.Name}, {Kind: TokenDot}},
			Unparse(v.Body),
		})
	case App:
		return lo.Flatten([][]Token{
			{{Kind: TokenLParen}},
			Unparse(v.Fun),
			Unparse(v.Arg),
			{{Kind: TokenRParen}},
		})
	default:
		return nil
	}
}
