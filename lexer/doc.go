/*
Package lexer splits infix expressions into lexemes.

Lexical grammar

White space separates lexemes and is dropped. Each of

    + - * / % ( ) ,

is a lexeme of its own, regardless of context. A number starts with a digit
and continues with digits and at most one decimal point. Any other run of
characters, bounded by white space or punctuation, is a word (identifier or
reserved marker); words may contain non-ASCII letters.

A second decimal point terminates a number just before the point. Scanning
resumes at the point, which starts a word: "1.2.3" is split into "1.2" and
".3". In strict mode the truncated number is reported as a malformed number.

There are two implementations of the grammar: a hand-written state machine
(backend "state", the default) and a DFA generated by lexmachine (backend
"dfa"). The DFA classifies ASCII digits and ASCII white space only; other
Unicode digits and spaces become part of words.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rpn.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("rpn.lexer")
}
