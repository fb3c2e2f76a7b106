package lambda

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCharacter is matched by errors returned from Tokenize when the
	// input holds a character outside the term alphabet.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrMalformedInput is matched by errors returned from the parser when the
	// tokens do not form exactly one term.
	ErrMalformedInput = errors.New("malformed input")
)

// InvalidCharacterError reports the offending character and its byte offset.
type InvalidCharacterError struct {
	Char   rune
	Offset int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at offset %d", e.Char, e.Offset)
}

func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// SyntaxError reports where the token stream stopped matching the grammar.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed input at offset %d: %s", e.Offset, e.Msg)
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrMalformedInput
}
