/*
Package rpn converts infix expressions to postfix notation (Reverse Polish
Notation).

A conversion runs three stages: the lexer splits the input into lexemes, the
token classifier types them as numbers, identifiers, reserved markers or
operators, and the postfix engine re-orders them with an operator stack.
Conversions are pure functions of their input and hold no state across calls.

    rpn.Convert("(a + b) * c")   // "a b + c *"

Clients wanting control over reserved words, strictness or the lexer
backend create a Converter from Options.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rpn
