package lexer

import (
	"io"
	"strings"
	"unicode"

	"github.com/npillmayer/rpn/token"
)

// StateLexer is a hand-written state machine for the lexical grammar.
type StateLexer struct {
	Strict bool // report malformed numbers
}

var _ Scanner = StateLexer{}

// Scan splits input into lexemes.
func (sl StateLexer) Scan(input string) ([]Lexeme, error) {
	l := newLexer(strings.NewReader(input), sl.Strict)
	var lexemes []Lexeme
	for {
		lx, ok := l.NextLexeme()
		if !ok {
			break
		}
		lexemes = append(lexemes, lx)
	}
	return lexemes, l.err
}

type lexer struct {
	stream *runeStream
	state  scstate
	strict bool
	err    error // first problem found in strict mode
}

func newLexer(reader io.RuneReader, strict bool) *lexer {
	return &lexer{stream: newRuneStream(reader), strict: strict}
}

// NextLexeme returns the next lexeme, or false at the end of input.
func (l *lexer) NextLexeme() (Lexeme, bool) {
	l.state = state_start
	for {
		r, err := l.stream.lookahead()
		var newstate scstate
		if err == io.EOF {
			newstate = stateAtEOF(l.state)
		} else if err != nil {
			tracer().Errorf("cannot read infix input: %v", err)
			return Lexeme{}, false
		} else {
			newstate = nextState(l.state, r)
		}
		if newstate == state_eof {
			return Lexeme{}, false
		}
		if !mustBacktrack(newstate) {
			if newstate == state_start {
				l.stream.skip()
			} else {
				l.stream.match(r)
			}
		}
		l.state = newstate
		if isAccept(newstate) {
			start, _ := l.stream.Span()
			lx := Lexeme{Text: l.stream.OutputString(), Pos: start}
			tracer().Debugf("infix lexer accepting %q", lx.Text)
			if newstate == accept_malformed_bt {
				l.malformed(lx)
			}
			l.stream.ResetOutput()
			return lx, true
		}
	}
}

func (l *lexer) malformed(lx Lexeme) {
	tracer().Infof("number %q truncated at second decimal point", lx.Text)
	if l.strict && l.err == nil {
		l.err = token.NewSyntaxError(token.MalformedNumber, lx.Text, lx.Pos)
	}
}

type scstate int

const (
	state_start scstate = iota
	state_num
	state_frac
	state_word

	accepting_states // do not change sequence, used as a marker
	accept_punct

	accept_number_bt // do not change sequence
	accept_malformed_bt
	accept_word_bt
	max_accepting_states // do not change sequence, used as a marker

	state_eof // must be last
)

func mustBacktrack(s scstate) bool {
	return s >= accept_number_bt && s < max_accepting_states
}

func isAccept(s scstate) bool {
	return s > accepting_states && s < max_accepting_states
}

func nextState(s scstate, r rune) scstate {
	switch s {
	case state_start:
		if unicode.IsSpace(r) {
			return state_start
		}
		if unicode.IsDigit(r) {
			return state_num
		}
		if token.IsPunctuation(r) {
			return accept_punct
		}
		return state_word
	case state_num:
		if unicode.IsDigit(r) {
			return state_num
		}
		if r == '.' {
			return state_frac
		}
		return accept_number_bt
	case state_frac:
		if unicode.IsDigit(r) {
			return state_frac
		}
		if r == '.' {
			return accept_malformed_bt
		}
		return accept_number_bt
	case state_word:
		if unicode.IsSpace(r) || token.IsPunctuation(r) {
			return accept_word_bt
		}
		return state_word
	}
	panic("infix lexer in illegal state")
}

func stateAtEOF(s scstate) scstate {
	switch s {
	case state_num, state_frac:
		return accept_number_bt
	case state_word:
		return accept_word_bt
	}
	return state_eof
}
