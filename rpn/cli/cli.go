// Package cli implements the rpn command line interface.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/rpn"
	"github.com/npillmayer/rpn/rpn/ui/termui"
	"github.com/npillmayer/rpn/token"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

const version = "0.1"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rpn [expression ...]",
	Short: "Convert infix expressions to postfix notation",
	Long: `Welcome to RPN V0.1

RPN converts infix expressions to postfix notation (Reverse Polish Notation).

Called with arguments, every argument is converted and its postfix form
printed on a line of its own. Without arguments RPN prompts for expressions
in a terminal REPL.

`,
	RunE:         runRpnCmd,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by main().
func Execute() {
	if rootCmd.Execute() != nil {
		rpn.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	flags := rootCmd.PersistentFlags()
	flags.BoolP("interactive", "i", false, "Enter the REPL after converting arguments")
	flags.String("logfile", "stderr", "URL of log output location")
	flags.Bool("strict", false, "Report unbalanced parentheses and malformed numbers")
	flags.String("lexer", "state", "Lexer backend: state | dfa")
	flags.StringSlice("reserved", token.DefaultReserved, "Reserved marker words")
	flags.Bool("normalize", true, "NFC-normalize input")
	flags.Bool("calls", true, "Emit function names after their arguments")
}

func runRpnCmd(cmd *cobra.Command, args []string) error {
	tracing.Infof("rpn converter called")
	conv, err := rpn.NewConverter(rpn.OptionsFrom(rpn.Configuration))
	if err != nil {
		return fmt.Errorf("cannot create converter: %w", err)
	}
	interactive, _ := cmd.Flags().GetBool("interactive")
	if len(args) > 0 {
		err = convertArgs(conv, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		if !interactive {
			return err
		}
	}
	runRpnIntpr(conv)
	rpn.Exit(0)
	return nil
}

// convertArgs converts expressions in batch mode.
func convertArgs(conv *rpn.Converter, args []string, stdout, stderr io.Writer) error {
	failed := 0
	f := termui.DefaultFormatter{}
	for _, arg := range args {
		out, err := conv.Convert(arg)
		fmt.Fprintln(stdout, out)
		if err != nil {
			f.Format(fmt.Errorf("%q: %w", arg, err), stderr)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions are malformed", failed, len(args))
	}
	return nil
}

func runRpnIntpr(conv *rpn.Converter) {
	var repl *termui.BaseREPL
	if termui.IsTerminal(os.Stdin) {
		var err error
		if repl, err = termui.NewBaseREPL("rpn", version); err != nil {
			tracing.Errorf("cannot open terminal: %v", err)
			rpn.Exit(1)
		}
	} else {
		repl = termui.NewPipedREPL("rpn", version, os.Stdin, os.Stdout, os.Stderr)
	}
	intp := newRpnIntpr(repl, conv)
	intp.Prompt(rpn.SignalContext)
}
