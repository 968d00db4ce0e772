package postfix

import (
	"strings"

	"github.com/npillmayer/rpn/token"
)

// Engine re-orders infix tokens into postfix order.
type Engine struct {
	// CallsAsOperators makes an identifier followed by '(' a function call,
	// emitted after its arguments. Otherwise it is emitted in place.
	CallsAsOperators bool
}

// NewEngine creates an engine with function call support switched on.
func NewEngine() *Engine {
	return &Engine{CallsAsOperators: true}
}

// Reorder re-orders tokens with a default engine and returns the postfix
// forms.
func Reorder(tokens []token.Token) []string {
	out, _ := NewEngine().Reorder(tokens)
	return out
}

// Join renders postfix forms as a single line.
func Join(forms []string) string {
	return strings.Join(forms, " ")
}

// Reorder processes tokens left to right and returns the textual forms in
// postfix order, together with problems found on the way. Every token is
// pushed and popped at most once; the operator stack is empty on return.
func (e *Engine) Reorder(tokens []token.Token) ([]string, []error) {
	r := &reordering{
		stack: NewOpStack(),
		out:   make([]string, 0, len(tokens)),
	}
	for i, t := range tokens {
		switch t.Kind {
		case token.Number:
			r.emit(t.Text)
		case token.Identifier:
			if e.CallsAsOperators && i+1 < len(tokens) && tokens[i+1].Kind == token.LParen {
				r.stack.Push(token.FunctionCall(t.Text))
				continue
			}
			r.emit(t.Text)
		case token.Function:
			r.stack.Push(token.FunctionCall(t.Text))
		case token.Reserved:
			r.drain()
			r.emit(t.Text)
		case token.Add, token.Sub, token.Mul, token.Div, token.Mod:
			op, _ := t.Operator()
			r.binary(op)
		case token.LParen:
			op, _ := t.Operator()
			r.stack.Push(op)
		case token.RParen:
			r.closeGroup(t)
		case token.Comma:
			r.separate()
		default:
			tracer().Errorf("postfix engine ignores token %q of kind %s", t.Text, t.Kind)
		}
		tracer().Debugf("%-8q stack = %s", t.Text, r.stack.Dump())
	}
	r.drain()
	return r.out, r.diags
}

// reordering is the state of a single Reorder run.
type reordering struct {
	stack *OpStack
	out   []string
	diags []error
}

func (r *reordering) emit(form string) {
	r.out = append(r.out, form)
}

// emitOp outputs an operator. Grouping operators have no postfix form.
func (r *reordering) emitOp(op token.Operator) {
	switch op.Kind {
	case token.LParen, token.RParen, token.Comma:
		return
	}
	r.emit(op.Text)
}

func (r *reordering) diagnose(kind token.ErrorKind, lexeme string, pos int) {
	err := token.NewSyntaxError(kind, lexeme, pos)
	tracer().Infof("postfix: %v", err)
	r.diags = append(r.diags, err)
}

// binary pops every operator binding at least as strong as op, then pushes op.
func (r *reordering) binary(op token.Operator) {
	for {
		top, ok := r.stack.Top()
		if !ok || !top.Binds(op) {
			break
		}
		r.stack.Pop()
		r.emitOp(top)
	}
	r.stack.Push(op)
}

// closeGroup pops down to the matching '(' and discards it. If the group
// belongs to a function call, the function name follows.
func (r *reordering) closeGroup(t token.Token) {
	for {
		top, ok := r.stack.Pop()
		if !ok {
			r.diagnose(token.UnbalancedParenthesis, t.Text, t.Pos)
			return
		}
		if top.Is(token.LParen) {
			break
		}
		r.emitOp(top)
	}
	if top, ok := r.stack.Top(); ok && top.Is(token.Function) {
		r.stack.Pop()
		r.emitOp(top)
	}
}

// separate pops down to the nearest barrier, which stays on the stack.
func (r *reordering) separate() {
	for {
		top, ok := r.stack.Top()
		if !ok || top.IsBarrier() {
			return
		}
		r.stack.Pop()
		r.emitOp(top)
	}
}

// drain empties the stack in LIFO order. Open groups are dropped.
func (r *reordering) drain() {
	for {
		top, ok := r.stack.Pop()
		if !ok {
			return
		}
		if top.Is(token.LParen) {
			r.diagnose(token.UnterminatedGroup, top.Text, -1)
			continue
		}
		r.emitOp(top)
	}
}
