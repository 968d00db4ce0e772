package rpn

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/npillmayer/rpn/lexer"
	"github.com/npillmayer/rpn/postfix"
	"github.com/npillmayer/rpn/token"
	"golang.org/x/text/unicode/norm"
)

// Options configure a Converter.
type Options struct {
	Reserved         []string // reserved marker words
	Strict           bool     // report syntax errors
	Lexer            string   // lexer backend, "state" or "dfa"
	Normalize        bool     // NFC-normalize input before scanning
	CallsAsOperators bool     // emit function names after their arguments
}

// DefaultOptions returns lenient options with the default reserved words.
func DefaultOptions() Options {
	return Options{
		Reserved:         append([]string(nil), token.DefaultReserved...),
		Lexer:            lexer.StateBackend,
		Normalize:        true,
		CallsAsOperators: true,
	}
}

// OptionsFrom reads options from a koanf configuration. Keys not present
// keep their default value. Recognized keys are
//
//     reserved   list of reserved words (or a comma separated string)
//     strict     bool
//     lexer      "state" | "dfa"
//     normalize  bool
//     calls      bool, emit function names after their arguments
//
func OptionsFrom(k *koanf.Koanf) Options {
	opts := DefaultOptions()
	if k == nil {
		return opts
	}
	if k.Exists("reserved") {
		words := k.Strings("reserved")
		if len(words) == 0 {
			if s := k.String("reserved"); s != "" {
				words = []string{s}
			}
		}
		opts.Reserved = splitWords(words)
	}
	if k.Exists("strict") {
		opts.Strict = k.Bool("strict")
	}
	if l := k.String("lexer"); l != "" {
		opts.Lexer = l
	}
	if k.Exists("normalize") {
		opts.Normalize = k.Bool("normalize")
	}
	if k.Exists("calls") {
		opts.CallsAsOperators = k.Bool("calls")
	}
	return opts
}

// splitWords flattens comma separated entries, as produced by flags.
func splitWords(entries []string) []string {
	var words []string
	for _, e := range entries {
		for _, w := range strings.Split(e, ",") {
			if w = strings.TrimSpace(w); w != "" {
				words = append(words, w)
			}
		}
	}
	return words
}

// Converter runs the conversion pipeline. A Converter is immutable after
// creation and may be shared between goroutines.
type Converter struct {
	opts       Options
	scanner    lexer.Scanner
	classifier *token.Classifier
	engine     *postfix.Engine
}

// NewConverter creates a converter. It fails for an unknown lexer backend.
func NewConverter(opts Options) (*Converter, error) {
	scanner, err := lexer.New(opts.Lexer, opts.Strict)
	if err != nil {
		return nil, err
	}
	reserved := token.NewReservedSet(opts.Reserved...)
	tracer().Debugf("converter reserved words = %s", reserved)
	return &Converter{
		opts:       opts,
		scanner:    scanner,
		classifier: token.NewClassifier(reserved, opts.Strict),
		engine:     &postfix.Engine{CallsAsOperators: opts.CallsAsOperators},
	}, nil
}

// Options returns the options c has been created with.
func (c *Converter) Options() Options {
	return c.opts
}

// Tokens scans and classifies input. In strict mode the first problem found
// is returned; the tokens are complete in any case.
func (c *Converter) Tokens(input string) ([]token.Token, error) {
	if c.opts.Normalize {
		input = norm.NFC.String(input)
	}
	lexemes, first := c.scanner.Scan(input)
	tokens := make([]token.Token, len(lexemes))
	for i, lx := range lexemes {
		t, err := c.classifier.ClassifyAt(lx.Text, lx.Pos)
		if err != nil && first == nil {
			first = err
		}
		tokens[i] = t
	}
	return tokens, first
}

// Convert returns the postfix form of an infix expression: token forms
// separated by single spaces.
//
// In lenient mode (the default) err is always nil and malformed input produces
// best-effort output. In strict mode the first diagnosed *token.SyntaxError is
// returned along with the best-effort output.
func (c *Converter) Convert(input string) (string, error) {
	tokens, first := c.Tokens(input)
	forms, diags := c.engine.Reorder(tokens)
	if first == nil && len(diags) > 0 {
		first = diags[0]
	}
	out := postfix.Join(forms)
	tracer().Debugf("%q ⟹ %q", input, out)
	if !c.opts.Strict {
		return out, nil
	}
	return out, first
}

var defaultConverter, _ = NewConverter(DefaultOptions())

// Convert converts an infix expression to postfix with default options.
func Convert(input string) string {
	out, _ := defaultConverter.Convert(input)
	return out
}
