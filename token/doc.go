/*
Package token defines the tokens of infix expressions: numbers, identifiers,
reserved markers and a closed set of operators.

Operators carry a precedence and their literal text. Additive operators bind
weaker than multiplicative ones; grouping operators (parentheses and commas)
as well as function call markers have a precedence below every arithmetic
operator, so an operator comparison will never remove them from an operator
stack.

The classifier maps raw lexemes to typed tokens. The set of reserved words is
not part of the language: clients inject it as a ReservedSet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package token

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'rpn.token'.
func tracer() tracing.Trace {
	return tracing.Select("rpn.token")
}
