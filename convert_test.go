package rpn

import (
	"errors"
	"testing"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/npillmayer/rpn/token"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestConvert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpn")
	defer teardown()
	//
	for i, x := range []struct {
		infix, postfix string
	}{
		{infix: "", postfix: ""},
		{infix: "foo", postfix: "foo"},
		{infix: "a + b * c", postfix: "a b c * +"},
		{infix: "a * b + c", postfix: "a b * c +"},
		{infix: "a - b - c", postfix: "a b - c -"},
		{infix: "(a + b) * c", postfix: "a b + c *"},
		{infix: "f(a + b, c * d)", postfix: "a b + c d * f"},
		{infix: "3.14 + 2", postfix: "3.14 2 +"},
		{infix: "1.2.3 + 4", postfix: "1.2 .3 4 +"},
		{infix: "define x 2 * y end", postfix: "define x 2 y * end"},
	} {
		if out := Convert(x.infix); out != x.postfix {
			t.Errorf("test %d: expected %q → %q, have %q", i, x.infix, x.postfix, out)
		}
	}
}

func TestBackendsProduceSameOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpn")
	defer teardown()
	//
	opts := DefaultOptions()
	opts.Lexer = "dfa"
	dfa, err := NewConverter(opts)
	if err != nil {
		t.Fatal(err)
	}
	for _, infix := range []string{
		"a + b * c", "f(x, g(y % 2))", "1.2.3", "if a > b => c end", "größe / 7",
	} {
		out, _ := dfa.Convert(infix)
		if out != Convert(infix) {
			t.Errorf("backends disagree on %q: %q vs %q", infix, out, Convert(infix))
		}
	}
}

func TestNormalization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpn")
	defer teardown()
	//
	decomposed := "gro\u0308\u00dfe + 1" // o + combining diaeresis
	composed := "gr\u00f6\u00dfe 1 +"
	if out := Convert(decomposed); out != composed {
		t.Errorf("expected NFC output %q, have %q", composed, out)
	}
	opts := DefaultOptions()
	opts.Normalize = false
	c, _ := NewConverter(opts)
	if out, _ := c.Convert(decomposed); out != "gro\u0308\u00dfe 1 +" {
		t.Errorf("expected input to be kept as is, have %q", out)
	}
}

func TestStrictMode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpn")
	defer teardown()
	//
	opts := DefaultOptions()
	opts.Strict = true
	c, err := NewConverter(opts)
	if err != nil {
		t.Fatal(err)
	}
	for i, x := range []struct {
		infix, postfix string
		err            error
	}{
		{infix: "(a + b) * c", postfix: "a b + c *", err: nil},
		{infix: "(a + b", postfix: "a b +", err: token.ErrUnterminatedGroup},
		{infix: "a + b)", postfix: "a b +", err: token.ErrUnbalancedParenthesis},
		{infix: "1.2.3", postfix: "1.2 .3", err: token.ErrMalformedNumber},
		{infix: "a.b", postfix: "a.b", err: token.ErrMalformedNumber},
	} {
		out, err := c.Convert(x.infix)
		if out != x.postfix {
			t.Errorf("test %d: expected best-effort output %q, have %q", i, x.postfix, out)
		}
		if x.err == nil && err != nil {
			t.Errorf("test %d: unexpected error %v", i, err)
		} else if x.err != nil && !errors.Is(err, x.err) {
			t.Errorf("test %d: expected error %v, have %v", i, x.err, err)
		}
	}
	// lenient mode never reports
	lenient, _ := NewConverter(DefaultOptions())
	if _, err := lenient.Convert("(a + b"); err != nil {
		t.Errorf("lenient converter returned error %v", err)
	}
}

func TestTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpn")
	defer teardown()
	//
	c, _ := NewConverter(DefaultOptions())
	tokens, err := c.Tokens("while x % 2")
	if err != nil {
		t.Fatal(err)
	}
	kinds := []token.Kind{token.Reserved, token.Identifier, token.Mod, token.Number}
	if len(tokens) != len(kinds) {
		t.Fatalf("expected %d tokens, have %d", len(kinds), len(tokens))
	}
	for i, k := range kinds {
		if tokens[i].Kind != k {
			t.Errorf("expected token #%d to be %s, is %s", i, k, tokens[i].Kind)
		}
	}
}

func TestOptionsFrom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rpn")
	defer teardown()
	//
	if opts := OptionsFrom(nil); opts.Strict || !opts.Normalize || opts.Lexer != "state" {
		t.Errorf("unexpected default options %+v", opts)
	}
	k := koanf.New(".")
	err := k.Load(confmap.Provider(map[string]interface{}{
		"reserved": []string{"begin, end", "let"},
		"strict":   true,
		"lexer":    "dfa",
		"calls":    false,
	}, "."), nil)
	if err != nil {
		t.Fatal(err)
	}
	opts := OptionsFrom(k)
	if !opts.Strict || opts.Lexer != "dfa" || opts.CallsAsOperators || !opts.Normalize {
		t.Errorf("options not read from configuration: %+v", opts)
	}
	if len(opts.Reserved) != 3 || opts.Reserved[0] != "begin" || opts.Reserved[2] != "let" {
		t.Errorf("unexpected reserved words %v", opts.Reserved)
	}
	c, err := NewConverter(opts)
	if err != nil {
		t.Fatal(err)
	}
	if out, _ := c.Convert("let f(x) end"); out != "let f x end" {
		t.Errorf("expected configured converter output %q, have %q", "let f x end", out)
	}
}

func TestUnknownLexer(t *testing.T) {
	opts := DefaultOptions()
	opts.Lexer = "nope"
	if _, err := NewConverter(opts); err == nil {
		t.Errorf("expected error for unknown lexer backend")
	}
}
