package postfix

import (
	"strings"

	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/npillmayer/rpn/token"
)

// OpStack implements a stack of operators. It is the working area of a
// single re-ordering run.
type OpStack struct {
	stack *linkedliststack.Stack // a stack of token.Operator
}

// NewOpStack creates
// a new operator stack. It is fully initialized and empty.
func NewOpStack() *OpStack {
	return &OpStack{
		stack: linkedliststack.New(),
	}
}

// Push puts an operator on top of the stack.
func (s *OpStack) Push(op token.Operator) {
	s.stack.Push(op)
}

// Top is part of
// stack functionality. Will return false if the stack is empty.
func (s *OpStack) Top() (token.Operator, bool) {
	tos, ok := s.stack.Peek()
	if !ok {
		return token.Operator{}, false
	}
	return tos.(token.Operator), true
}

// Pop removes the top of the stack and returns it.
func (s *OpStack) Pop() (token.Operator, bool) {
	tos, ok := s.stack.Pop()
	if !ok {
		return token.Operator{}, false
	}
	return tos.(token.Operator), true
}

// IsEmpty is a predicate: is the stack empty?
func (s *OpStack) IsEmpty() bool {
	return s.stack.Empty()
}

// Size returns the number of operators on the stack.
func (s *OpStack) Size() int {
	return s.stack.Size()
}

// Dump returns the stack contents, top first.
func (s *OpStack) Dump() string {
	var b strings.Builder
	b.WriteString("[")
	for i, v := range s.stack.Values() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(v.(token.Operator).Text)
	}
	b.WriteString("]")
	return b.String()
}
