package token

import "fmt"

// ConstError is the type of sentinel errors of the conversion pipeline.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}

// ErrUnbalancedParenthesis occurs when a ')' has no matching '('.
const ErrUnbalancedParenthesis = ConstError("unbalanced parenthesis")

// ErrUnterminatedGroup occurs when input ends with a '(' still open.
const ErrUnterminatedGroup = ConstError("unterminated group")

// ErrMalformedNumber occurs for numbers with more than one decimal point.
const ErrMalformedNumber = ConstError("malformed number")

// ErrorKind tags a SyntaxError.
type ErrorKind int8

// Kinds of syntax errors.
const (
	UnbalancedParenthesis ErrorKind = iota + 1
	UnterminatedGroup
	MalformedNumber
)

func (k ErrorKind) sentinel() error {
	switch k {
	case UnbalancedParenthesis:
		return ErrUnbalancedParenthesis
	case UnterminatedGroup:
		return ErrUnterminatedGroup
	case MalformedNumber:
		return ErrMalformedNumber
	}
	return nil
}

func (k ErrorKind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", int8(k))
}

// SyntaxError is a diagnosed problem with the input. The conversion is never
// aborted for it; depending on configuration it is reported or just traced.
type SyntaxError struct {
	Kind   ErrorKind
	Lexeme string // offending lexeme
	Pos    int    // byte offset in the input, -1 if unknown
}

// NewSyntaxError creates a syntax error of a given kind.
func NewSyntaxError(kind ErrorKind, lexeme string, pos int) *SyntaxError {
	return &SyntaxError{Kind: kind, Lexeme: lexeme, Pos: pos}
}

func (e *SyntaxError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("%s: %q", e.Kind, e.Lexeme)
	}
	return fmt.Sprintf("%s: %q at position %d", e.Kind, e.Lexeme, e.Pos)
}

// Unwrap returns the sentinel error for the kind of e, making errors.Is work.
func (e *SyntaxError) Unwrap() error {
	return e.Kind.sentinel()
}
