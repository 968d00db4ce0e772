package lexer

import (
	"fmt"
)

// Lexeme is a raw piece of input text.
type Lexeme struct {
	Text string
	Pos  int // byte offset in the input
}

func (lx Lexeme) String() string {
	return lx.Text
}

// Scanner splits an input string into lexemes.
//
// Scanners never fail on malformed input. If a scanner is strict, it will
// return the first problem found as an error, together with all the lexemes.
type Scanner interface {
	Scan(input string) ([]Lexeme, error)
}

// Backends for New.
const (
	StateBackend = "state"
	DFABackend   = "dfa"
)

// New creates a scanner for a backend. An empty backend selects the state
// machine.
func New(backend string, strict bool) (Scanner, error) {
	switch backend {
	case "", StateBackend:
		return StateLexer{Strict: strict}, nil
	case DFABackend:
		return NewDFALexer(strict)
	}
	return nil, fmt.Errorf("unknown lexer backend: %q", backend)
}

// Tokenize splits input into lexeme strings, using the default backend in
// lenient mode.
func Tokenize(input string) []string {
	lexemes, _ := StateLexer{}.Scan(input)
	return Texts(lexemes)
}

// Texts extracts the text of each lexeme.
func Texts(lexemes []Lexeme) []string {
	texts := make([]string, len(lexemes))
	for i, lx := range lexemes {
		texts[i] = lx.Text
	}
	return texts
}
