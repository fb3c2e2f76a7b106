package lambda

import "fmt"

// TokenKind identifies the type of a token.
type TokenKind int

const (
	TokenLParen TokenKind = iota
	TokenRParen
	TokenLambda
	TokenDot
	TokenLetter
)

// Glyph is the reserved character introducing an abstraction.
const Glyph = 'λ'

func (k TokenKind) String() string {
	switch k {
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenLambda:
		return string(Glyph)
	case TokenDot:
		return "."
	case TokenLetter:
		return "letter"
	default:
		return "unknown"
	}
}

// Token is a single unit of concrete syntax. Letter is set only for
// TokenLetter. Offset is the byte offset in the source text, zero for
// tokens built by Unparse.
type Token struct {
	Kind   TokenKind
	Letter rune
	Offset int
}

func (t Token) String() string {
	if t.Kind == TokenLetter {
		return fmt.Sprintf("letter %q", t.Letter)
	}
	return fmt.Sprintf("%q", t.Kind.String())
}

// Rune returns the source character the token stands for.
func (t Token) Rune() rune {
	switch t.Kind {
	case TokenLParen:
		return '('
	case TokenRParen:
		return ')'
	case TokenLambda:
		return Glyph
	case TokenDot:
		return '.'
	default:
		return t.Letter
	}
}
