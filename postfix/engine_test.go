package postfix

import (
	"errors"
	"testing"

	"github.com/npillmayer/rpn/lexer"
	"github.com/npillmayer/rpn/token"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func classify(input string) []token.Token {
	c := token.NewClassifier(token.NewReservedSet(token.DefaultReserved...), false)
	lexemes, _ := lexer.StateLexer{}.Scan(input)
	tokens := make([]token.Token, len(lexemes))
	for i, lx := range lexemes {
		tokens[i], _ = c.ClassifyAt(lx.Text, lx.Pos)
	}
	return tokens
}

func TestReorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpn.postfix")
	defer teardown()
	//
	for i, x := range []struct {
		infix, postfix string
	}{
		{infix: "", postfix: ""},
		{infix: "a", postfix: "a"},
		{infix: "42.5", postfix: "42.5"},
		{infix: "a + b * c", postfix: "a b c * +"},
		{infix: "a * b + c", postfix: "a b * c +"},
		{infix: "a - b - c", postfix: "a b - c -"},
		{infix: "a / b % c", postfix: "a b / c %"},
		{infix: "a % b * c", postfix: "a b % c *"},
		{infix: "(a + b) * c", postfix: "a b + c *"},
		{infix: "a * (b + c) * d", postfix: "a b c + * d *"},
		{infix: "((a))", postfix: "a"},
		{infix: "3.14 + 2", postfix: "3.14 2 +"},
		{infix: "f(a + b, c * d)", postfix: "a b + c d * f"},
		{infix: "f(g(x), y)", postfix: "x g y f"},
		{infix: "f()", postfix: "f"},
		{infix: "2 * max(a, b - 1) + 1", postfix: "2 a b 1 - max * 1 +"},
		{infix: "a + b * c end", postfix: "a b c * + end"},
		{infix: "a * b if c + d", postfix: "a b * if c d +"},
		{infix: "x größe +", postfix: "x größe +"},
	} {
		out := Join(Reorder(classify(x.infix)))
		if out != x.postfix {
			t.Errorf("test %d: expected %q → %q, have %q", i, x.infix, x.postfix, out)
		}
	}
}

func TestCallsInPlace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpn.postfix")
	defer teardown()
	//
	e := &Engine{CallsAsOperators: false}
	out, diags := e.Reorder(classify("f(a + b, c * d)"))
	if Join(out) != "f a b + c d *" {
		t.Errorf("expected function name in place, have %q", Join(out))
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
}

func TestWhitespaceIsInsignificant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpn.postfix")
	defer teardown()
	//
	a := Join(Reorder(classify("f(a+b,c*d)%2")))
	b := Join(Reorder(classify("  f ( a +  b ,\tc * d )   % 2 ")))
	if a != b {
		t.Errorf("white space changed the output: %q vs %q", a, b)
	}
}

func TestReservedFlushesOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpn.postfix")
	defer teardown()
	//
	out := Reorder(classify("a + b * (c - d) while e"))
	for i, form := range out {
		if form == "while" {
			if i != 7 {
				t.Errorf("expected all 7 pending forms before the marker, have %v", out)
			}
			return
		}
	}
	t.Errorf("marker missing from output %v", out)
}

func TestDiagnostics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpn.postfix")
	defer teardown()
	//
	for i, x := range []struct {
		infix, postfix string
		diag           error
	}{
		{infix: "(a + b", postfix: "a b +", diag: token.ErrUnterminatedGroup},
		{infix: "a + (b", postfix: "a b +", diag: token.ErrUnterminatedGroup},
		{infix: "a + b) * c", postfix: "a b + c *", diag: token.ErrUnbalancedParenthesis},
		{infix: ")", postfix: "", diag: token.ErrUnbalancedParenthesis},
		{infix: "f(a", postfix: "a f", diag: token.ErrUnterminatedGroup},
		{infix: "a +", postfix: "a +", diag: nil},
	} {
		out, diags := NewEngine().Reorder(classify(x.infix))
		if Join(out) != x.postfix {
			t.Errorf("test %d: expected %q → %q, have %q", i, x.infix, x.postfix, Join(out))
		}
		if x.diag == nil {
			if len(diags) != 0 {
				t.Errorf("test %d: unexpected diagnostics %v", i, diags)
			}
			continue
		}
		if len(diags) != 1 || !errors.Is(diags[0], x.diag) {
			t.Errorf("test %d: expected diagnostic %v, have %v", i, x.diag, diags)
		}
	}
}

func TestUnbalancedParenthesisPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpn.postfix")
	defer teardown()
	//
	_, diags := NewEngine().Reorder(classify("a + b )"))
	var serr *token.SyntaxError
	if len(diags) != 1 || !errors.As(diags[0], &serr) {
		t.Fatalf("expected a syntax error, have %v", diags)
	}
	if serr.Pos != 6 || serr.Lexeme != ")" {
		t.Errorf("expected ')' at 6, have %q at %d", serr.Lexeme, serr.Pos)
	}
}

func TestParenthesesNeverLeak(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpn.postfix")
	defer teardown()
	//
	for _, infix := range []string{
		"((a + b) * (c - d))", "f(g(h(x)), (y))", "(a, b, c)", "(a if b)", ") (",
	} {
		for _, form := range Reorder(classify(infix)) {
			if form == "(" || form == ")" || form == "," || form == "" {
				t.Errorf("grouping form %q leaked into output of %q", form, infix)
			}
		}
	}
}

func TestOpStack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpn.postfix")
	defer teardown()
	//
	s := NewOpStack()
	if !s.IsEmpty() {
		t.Fatalf("new stack is not empty")
	}
	if _, ok := s.Pop(); ok {
		t.Errorf("pop from empty stack succeeded")
	}
	add, _ := token.Op(token.Add)
	mul, _ := token.Op(token.Mul)
	s.Push(add)
	s.Push(mul)
	if s.Size() != 2 || s.Dump() != "[* +]" {
		t.Errorf("unexpected stack %s", s.Dump())
	}
	if top, _ := s.Top(); !top.Is(token.Mul) {
		t.Errorf("expected '*' on top, have %v", top)
	}
	if op, _ := s.Pop(); !op.Is(token.Mul) {
		t.Errorf("expected to pop '*', have %v", op)
	}
	if op, _ := s.Pop(); !op.Is(token.Add) || !s.IsEmpty() {
		t.Errorf("expected to pop '+' and leave stack empty")
	}
}
