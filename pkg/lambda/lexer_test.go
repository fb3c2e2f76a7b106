package lambda

import (
	"errors"
	"testing"
)

func TestTokenizeAllKinds(t *testing.T) {
	tokens, err := Tokenize("(λx.x y)")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}

	want := []Token{
		{Kind: TokenLParen, Offset: 0},
		{Kind: TokenLambda, Offset: 1},
		{Kind: TokenLetter, Letter: 'x', Offset: 3}, // λ is two bytes
		{Kind: TokenDot, Offset: 4},
		{Kind: TokenLetter, Letter: 'x', Offset: 5},
		{Kind: TokenLetter, Letter: 'y', Offset: 7},
		{Kind: TokenRParen, Offset: 8},
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(tokens), tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d: expected %v, got %v", i, want[i], tokens[i])
		}
	}
}

func TestTokenizeEveryLetter(t *testing.T) {
	for r := 'a'; r <= 'z'; r++ {
		tokens, err := Tokenize(string(r))
		if err != nil {
			t.Fatalf("Tokenize(%q) error: %v", r, err)
		}
		if len(tokens) != 1 || tokens[0].Kind != TokenLetter || tokens[0].Letter != r {
			t.Errorf("Tokenize(%q) = %v", r, tokens)
		}
	}
}

func TestTokenizeInvalidCharacter(t *testing.T) {
	cases := []struct {
		input  string
		char   rune
		offset int
	}{
		{"x#y", '#', 1},
		{"X", 'X', 0},
		{"(λx.x 1)", '1', 7},
		{"\\x.x", '\\', 0},
		{"(ab)é", 'é', 4},
	}

	for _, tc := range cases {
		_, err := Tokenize(tc.input)
		if !errors.Is(err, ErrInvalidCharacter) {
			t.Errorf("Tokenize(%q): expected ErrInvalidCharacter, got %v", tc.input, err)
			continue
		}
		var ice *InvalidCharacterError
		if !errors.As(err, &ice) {
			t.Fatalf("Tokenize(%q): expected *InvalidCharacterError, got %T", tc.input, err)
		}
		if ice.Char != tc.char || ice.Offset != tc.offset {
			t.Errorf("Tokenize(%q): expected %q at %d, got %q at %d", tc.input, tc.char, tc.offset, ice.Char, ice.Offset)
		}
		if errors.Is(err, ErrMalformedInput) {
			t.Errorf("Tokenize(%q): lexer error must not match ErrMalformedInput", tc.input)
		}
	}
}

func TestTokenizeSkipsWhitespace(t *testing.T) {
	spaced, err := Tokenize(" ( λx . x\ty )\n")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	if got := Untokenize(spaced); got != "(λx.xy)" {
		t.Errorf("expected (λx.xy), got %q", got)
	}
}

func TestUntokenizeInvertsTokenize(t *testing.T) {
	for _, src := range []string{"", "x", "λx.x", "((λx.λy.(xy)a)b)", "(((()))).λλ"} {
		tokens, err := Tokenize(src)
		if err != nil {
			t.Fatalf("Tokenize(%q) error: %v", src, err)
		}
		if got := Untokenize(tokens); got != src {
			t.Errorf("Untokenize(Tokenize(%q)) = %q", src, got)
		}
	}
}
