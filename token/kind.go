package token

import (
	"github.com/shopspring/decimal"
)

// Kind is the category of a token. Every operator has a tag of its own.
type Kind int8

//go:generate stringer -type Kind
const (
	Number Kind = iota
	Identifier
	Reserved
	Function // an identifier directly followed by '('
	Add
	Sub
	Mul
	Div
	Mod
	LParen
	RParen
	Comma
)

// Barrier is the precedence of grouping operators and function markers.
const Barrier = -1

// Operator is an immutable operator value.
type Operator struct {
	Kind       Kind
	Precedence int
	Text       string
}

var operators = [...]Operator{
	Add:    {Kind: Add, Precedence: 0, Text: "+"},
	Sub:    {Kind: Sub, Precedence: 0, Text: "-"},
	Mul:    {Kind: Mul, Precedence: 1, Text: "*"},
	Div:    {Kind: Div, Precedence: 1, Text: "/"},
	Mod:    {Kind: Mod, Precedence: 1, Text: "%"},
	LParen: {Kind: LParen, Precedence: Barrier, Text: "("},
	RParen: {Kind: RParen, Precedence: Barrier, Text: ")"},
	Comma:  {Kind: Comma, Precedence: Barrier, Text: ","},
}

// Op returns the operator for an operator kind. For kinds which are not
// operators, Op returns false.
func Op(k Kind) (Operator, bool) {
	if k < Add || k > Comma {
		return Operator{}, false
	}
	return operators[k], true
}

// OperatorFor returns the operator denoted by a punctuation rune.
func OperatorFor(r rune) (Operator, bool) {
	switch r {
	case '+':
		return operators[Add], true
	case '-':
		return operators[Sub], true
	case '*':
		return operators[Mul], true
	case '/':
		return operators[Div], true
	case '%':
		return operators[Mod], true
	case '(':
		return operators[LParen], true
	case ')':
		return operators[RParen], true
	case ',':
		return operators[Comma], true
	}
	return Operator{}, false
}

// IsPunctuation is a predicate: does r always form a lexeme of its own?
func IsPunctuation(r rune) bool {
	_, ok := OperatorFor(r)
	return ok
}

// FunctionCall creates a function marker for an identifier preceding an
// argument list. It is emitted after the arguments.
func FunctionCall(name string) Operator {
	return Operator{Kind: Function, Precedence: Barrier, Text: name}
}

// Is compares operators by kind.
func (op Operator) Is(k Kind) bool {
	return op.Kind == k
}

// IsBinary is true for add, sub, mul, div and mod.
func (op Operator) IsBinary() bool {
	return op.Kind >= Add && op.Kind <= Mod
}

// IsBarrier is true for operators which stop a comma from popping the stack.
func (op Operator) IsBarrier() bool {
	return op.Kind == LParen || op.Kind == Comma
}

// Binds is a predicate: does op bind at least as strong as other?
// An operator on top of the stack is emitted if it binds at least as strong
// as an incoming one.
func (op Operator) Binds(other Operator) bool {
	return op.Precedence >= other.Precedence
}

func (op Operator) String() string {
	return op.Text
}

// --- Tokens ----------------------------------------------------------------

// Token is a classified lexeme.
type Token struct {
	Kind  Kind
	Text  string          // literal form, emitted to the output
	Pos   int             // byte offset in the input, -1 if unknown
	Value decimal.Decimal // numeric value for Number tokens
}

// Operator returns the operator value of an operator token.
func (t Token) Operator() (Operator, bool) {
	if t.Kind == Function {
		return FunctionCall(t.Text), true
	}
	return Op(t.Kind)
}

// IsOperand is true for numbers and identifiers.
func (t Token) IsOperand() bool {
	return t.Kind == Number || t.Kind == Identifier
}

func (t Token) String() string {
	return t.Text
}
