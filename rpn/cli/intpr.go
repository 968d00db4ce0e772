package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/rpn"
	"github.com/npillmayer/rpn/rpn/ui/termui"
)

// rpnIntpr converts every line it is handed.
type rpnIntpr struct {
	*termui.BaseREPL
	conv   *rpn.Converter
	format termui.Formatter
}

func newRpnIntpr(repl *termui.BaseREPL, conv *rpn.Converter) *rpnIntpr {
	intp := &rpnIntpr{
		BaseREPL: repl,
		conv:     conv,
		format:   termui.DefaultFormatter{Color: true},
	}
	intp.Interpreter = intp
	intp.Helper = func(w io.Writer) {
		io.WriteString(w, `
Any other input is an infix expression and will be converted to postfix:

  Enter infix: (a + b) * c
  Postfix form: a b + c *

  :tokens <expression>  : show how an expression is classified
  :strict [on|off]      : display or set reporting of syntax errors

`)
	}
	intp.AddCommand(":tokens", intp.tokens)
	intp.AddCommand(":strict", intp.strict)
	return intp
}

func (intp *rpnIntpr) InterpretCommand(line string) {
	line = strings.Trim(line, "\x00")
	out, err := intp.conv.Convert(line)
	stdout, stderr := intp.Outputs()
	fmt.Fprintf(stdout, "Postfix form: %s\n", out)
	if err != nil {
		intp.format.Format(err, stderr)
	}
}

// tokens prints a table of the tokens of an expression.
func (intp *rpnIntpr) tokens(repl *termui.BaseREPL, args []string) {
	stdout, stderr := repl.Outputs()
	tokens, err := intp.conv.Tokens(strings.Join(args[1:], " "))
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"#", "lexeme", "kind", "pos", "value"})
	for i, t := range tokens {
		value := ""
		if !t.Value.IsZero() || t.Text == "0" {
			value = t.Value.String()
		}
		tw.AppendRow(table.Row{i + 1, t.Text, t.Kind.String(), t.Pos, value})
	}
	tw.SetStyle(table.StyleLight)
	intp.format.Format(tw, stdout)
	if err != nil {
		intp.format.Format(err, stderr)
	}
}

// strict switches strict mode on or off.
func (intp *rpnIntpr) strict(repl *termui.BaseREPL, args []string) {
	_, stderr := repl.Outputs()
	opts := intp.conv.Options()
	if len(args) > 1 {
		switch args[1] {
		case "on":
			opts.Strict = true
		case "off":
			opts.Strict = false
		default:
			io.WriteString(stderr, "> usage: :strict [on|off]\n")
			return
		}
		conv, err := rpn.NewConverter(opts)
		if err != nil {
			intp.format.Format(err, stderr)
			return
		}
		intp.conv = conv
	}
	io.WriteString(stderr, fmt.Sprintf("> strict mode: %v\n", opts.Strict))
}
