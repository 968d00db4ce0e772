package lexer

import (
	"fmt"
	"sync"

	"github.com/npillmayer/rpn/token"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token values of the DFA
const (
	dfaNumber int = iota + 1
	dfaPunct
	dfaWord
)

// The punctuation lexemes. Each becomes an escaped one-character pattern.
var punctuation = []string{"+", "-", "*", "/", "%", "(", ")", ","}

// Patterns are byte oriented. Multi-byte UTF-8 sequences never contain
// ASCII bytes, so they pass through the negated word classes.
const (
	dfaSpace  = "( |\t|\n|\r)+"
	dfaNumRE  = `[0-9]+(\.[0-9]*)?`
	dfaWordRE = "[^ \t\n\r0-9\\+\\-\\*/%\\(\\),][^ \t\n\r\\+\\-\\*/%\\(\\),]*"
)

var dfa *lexmachine.Lexer
var dfaErr error
var dfaOnce sync.Once // monitors one-time compilation of the DFA

func compileDFA() (*lexmachine.Lexer, error) {
	dfaOnce.Do(func() {
		lexer := lexmachine.NewLexer()
		lexer.Add([]byte(dfaSpace), skip)
		lexer.Add([]byte(dfaNumRE), makeToken(dfaNumber))
		for _, p := range punctuation {
			lexer.Add([]byte(`\`+p), makeToken(dfaPunct))
		}
		lexer.Add([]byte(dfaWordRE), makeToken(dfaWord))
		if err := lexer.Compile(); err != nil {
			dfaErr = fmt.Errorf("cannot compile infix DFA: %w", err)
			return
		}
		dfa = lexer
	})
	return dfa, dfaErr
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// DFALexer implements the lexical grammar with a lexmachine DFA.
type DFALexer struct {
	Strict bool
	lexer  *lexmachine.Lexer
}

var _ Scanner = &DFALexer{}

// NewDFALexer creates a DFA scanner. The DFA is compiled once per process.
func NewDFALexer(strict bool) (*DFALexer, error) {
	lexer, err := compileDFA()
	if err != nil {
		return nil, err
	}
	return &DFALexer{Strict: strict, lexer: lexer}, nil
}

// Scan splits input into lexemes.
func (dl *DFALexer) Scan(input string) ([]Lexeme, error) {
	text := []byte(input)
	scanner, err := dl.lexer.Scanner(text)
	if err != nil {
		return nil, err
	}
	var lexemes []Lexeme
	var first error
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if ui, is := err.(*machines.UnconsumedInput); is {
			tracer().Errorf("infix DFA cannot match input at %d", ui.FailTC)
			scanner.TC = ui.FailTC
			continue
		} else if err != nil {
			return lexemes, err
		}
		t := tok.(*lexmachine.Token)
		lx := Lexeme{Text: string(t.Lexeme), Pos: t.TC}
		tracer().Debugf("infix DFA accepting %q", lx.Text)
		if end := t.TC + len(t.Lexeme); t.Type == dfaNumber && end < len(text) && text[end] == '.' {
			tracer().Infof("number %q truncated at second decimal point", lx.Text)
			if dl.Strict && first == nil {
				first = token.NewSyntaxError(token.MalformedNumber, lx.Text, lx.Pos)
			}
		}
		lexemes = append(lexemes, lx)
	}
	return lexemes, first
}
