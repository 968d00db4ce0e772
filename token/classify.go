package token

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Classifier maps lexemes to tokens.
//
// Rules are applied in order: numbers first, then punctuation, then reserved
// words; everything else is an identifier. Reserved words never collide
// with numeric or punctuation forms.
type Classifier struct {
	Reserved *ReservedSet
	Strict   bool // report malformed numbers
}

// NewClassifier creates a classifier for a set of reserved words.
func NewClassifier(reserved *ReservedSet, strict bool) *Classifier {
	return &Classifier{Reserved: reserved, Strict: strict}
}

// Classify maps a lexeme to a token with unknown position.
func Classify(lexeme string, reserved *ReservedSet) Token {
	t, _ := (&Classifier{Reserved: reserved}).ClassifyAt(lexeme, -1)
	return t
}

// Classify maps a lexeme to a token, ignoring errors.
func (c *Classifier) Classify(lexeme string) Token {
	t, _ := c.ClassifyAt(lexeme, -1)
	return t
}

// ClassifyAt maps a lexeme found at byte offset pos to a token.
// The token is always valid. In strict mode, a number with a decimal point
// which is not a well-formed decimal is reported as MalformedNumber.
func (c *Classifier) ClassifyAt(lexeme string, pos int) (Token, error) {
	t := Token{Text: lexeme, Pos: pos}
	switch {
	case isNumeric(lexeme):
		t.Kind = Number
		v, err := decimal.NewFromString(lexeme)
		if err != nil {
			tracer().Debugf("number %q has no decimal value: %v", lexeme, err)
			if c.Strict && strings.ContainsRune(lexeme, '.') {
				return t, NewSyntaxError(MalformedNumber, lexeme, pos)
			}
			return t, nil
		}
		t.Value = v
	case isPunctuation(lexeme):
		op, _ := OperatorFor([]rune(lexeme)[0])
		t.Kind = op.Kind
	case c.Reserved.Contains(lexeme):
		t.Kind = Reserved
	default:
		t.Kind = Identifier
	}
	return t, nil
}

// isNumeric: all digits, or containing a decimal point.
func isNumeric(lexeme string) bool {
	if lexeme == "" {
		return false
	}
	if strings.ContainsRune(lexeme, '.') {
		return true
	}
	for _, r := range lexeme {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isPunctuation(lexeme string) bool {
	r, sz := utf8.DecodeRuneInString(lexeme)
	return sz == len(lexeme) && IsPunctuation(r)
}
