package lambda

import (
	"github.com/samber/lo"
)

// Tokenize converts text into tokens in one pass. Whitespace is skipped;
// any other character outside ( ) . λ a-z fails with ErrInvalidCharacter.
func Tokenize(text string) ([]Token, error) {
	tokens := make([]Token, 0, len(text))
	for offset, ch := range text {
		switch {
		case ch == '(':
			tokens = append(tokens, Token{Kind: TokenLParen, Offset: offset})
		case ch == ')':
			tokens = append(tokens, Token{Kind: TokenRParen, Offset: offset})
		case ch == Glyph:
			tokens = append(tokens, Token{Kind: TokenLambda, Offset: offset})
		case ch == '.':
			tokens = append(tokens, Token{Kind: TokenDot, Offset: offset})
		case IsValidName(ch):
			tokens = append(tokens, Token{Kind: TokenLetter, Letter: ch, Offset: offset})
		case isSpace(ch):
		default:
			return nil, &InvalidCharacterError{Char: ch, Offset: offset}
		}
	}
	return tokens, nil
}

// Untokenize renders tokens back to text. It is the inverse of Tokenize for
// whitespace-free input.
func Untokenize(tokens []Token) string {
	return string(lo.Map(tokens, func(t Token, _ int) rune {
		return t.Rune()
	}))
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
