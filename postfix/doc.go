/*
Package postfix re-orders a sequence of infix tokens into postfix order
(Reverse Polish Notation).

The engine is a variant of Dijkstra's shunting-yard algorithm. Operands go
straight to the output, operators wait on an explicit operator stack until
an operator of lower precedence, a closing parenthesis, a comma, a reserved
marker or the end of input forces them out. Operators of equal precedence
leave the stack first, which makes all binary operators left-associative.

Identifiers directly followed by an argument list are function calls: the
function name is emitted after its arguments, i.e.

    f(a + b, c * d)   ⟹   a b + c d * f

The engine never aborts. Unbalanced parentheses are repaired as good as
possible and reported as diagnostics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package postfix

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rpn.postfix'.
func tracer() tracing.Trace {
	return tracing.Select("rpn.postfix")
}
