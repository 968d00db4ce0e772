package termui

// Utilities for interactive command line interfaces.

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
)

// Some global defaults
var banner = "Press <Ctrl> + D or <Ctrl> + C to exit"
var stdprompt = "Enter infix: "
var editmode string = "emacs"

// LineReader is the input side of a REPL. *readline.Instance implements it.
// Readline returns io.EOF at the end of input and readline.ErrInterrupt if
// the user hits Ctrl-C.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

// REPLCommandInterpreter is an interface all interpreters have to implement.
// It is the workhorse doing interpretation of interactive
// commands.
//
// The REPL will delegate interpreting input lines (i.e. those which do not
// represent meta commands) to the interpreter.
type REPLCommandInterpreter interface {
	InterpretCommand(string)
}

// MetaCommand is a handler for a colon-prefixed command. It receives the
// words of the line, including the command itself.
type MetaCommand func(repl *BaseREPL, args []string)

// BaseREPL is a base type to instantiate a REPL interpreter.
// Concrete REPL implementations will usually use this as a base type.
type BaseREPL struct {
	Interpreter REPLCommandInterpreter // the interpreter this REPL runs for
	Helper      func(io.Writer)        // print out help information
	reader      LineReader
	stdout      io.Writer
	stderr      io.Writer
	commands    map[string]MetaCommand
	toolname    string
	version     string
}

// New creates a REPL reading lines from reader.
func New(toolname, version string, reader LineReader, stdout, stderr io.Writer) *BaseREPL {
	return &BaseREPL{
		reader:   reader,
		stdout:   stdout,
		stderr:   stderr,
		commands: make(map[string]MetaCommand),
		toolname: toolname,
		version:  version,
	}
}

// NewBaseREPL create a new REPL base object intialized for an interpreter tool
// and a given version, reading from the terminal.
func NewBaseREPL(toolname, version string) (*BaseREPL, error) {
	rl, err := newReadline(toolname)
	if err != nil {
		return nil, err
	}
	return New(toolname, version, rl, rl.Stdout(), rl.Stderr()), nil
}

// NewPipedREPL creates a REPL for non-interactive input. The prompt is still
// written to stdout for every line read.
func NewPipedREPL(toolname, version string, in io.Reader, stdout, stderr io.Writer) *BaseREPL {
	return New(toolname, version, &lineScanner{
		scanner: bufio.NewScanner(in),
		prompt:  stdprompt,
		out:     stdout,
	}, stdout, stderr)
}

// IsTerminal is a predicate: is f connected to a terminal?
func IsTerminal(f *os.File) bool {
	return readline.IsTerminal(int(f.Fd()))
}

// Create a readline instance.
func newReadline(toolname string) (*readline.Instance, error) {
	histfile := fmt.Sprintf("%s/%s-repl-history.tmp", os.TempDir(), toolname)
	return readline.NewEx(&readline.Config{
		Prompt:              stdprompt,
		HistoryFile:         histfile,
		AutoComplete:        replCompleter,
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterReplInput,
	})
}

// Completer-tree for meta commands
var replCompleter = readline.NewPrefixCompleter(
	readline.PcItem(":help"),
	readline.PcItem(":bye"),
	readline.PcItem(":mode",
		readline.PcItem("vi"),
		readline.PcItem("emacs"),
	),
	readline.PcItem(":tokens"),
	readline.PcItem(":strict",
		readline.PcItem("on"),
		readline.PcItem("off"),
	),
)

// AddCommand registers a meta command. name must start with a colon.
func (repl *BaseREPL) AddCommand(name string, cmd MetaCommand) {
	repl.commands[name] = cmd
}

// Outputs returns stdout and stderr of this REPL.
func (repl *BaseREPL) Outputs() (io.Writer, io.Writer) {
	return repl.stdout, repl.stderr
}

// displayCommands prints a help message with available commands.
func (repl *BaseREPL) displayCommands(out io.Writer) {
	io.WriteString(out, fmt.Sprintf("%s [V%s]\n", repl.toolname, repl.version))
	io.WriteString(out, "\nThe following commands are available:\n\n")
	io.WriteString(out, "  :help               : print this message\n")
	io.WriteString(out, "  :bye                : quit application\n")
	io.WriteString(out, "  :mode [vi|emacs]    : display or set current editing mode\n")
	var names []string
	for name := range repl.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		io.WriteString(out, fmt.Sprintf("  %s\n", name))
	}
}

// Prompt enters a REPL and executes commands until end of input, an
// interrupt, ":bye" or cancellation of ctx.
// Lines are either meta commands (":help", etc.) or interpreted statements.
func (repl *BaseREPL) Prompt(ctx context.Context) {
	defer repl.reader.Close()
	io.WriteString(repl.stdout, banner+"\n")
	for ctx.Err() == nil {
		line, err := repl.reader.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			trace().Errorf("cannot read input: %v", err)
			break
		}
		if doExit := repl.executeCommand(strings.TrimSpace(line)); doExit {
			break
		}
	}
}

// Central dispatcher function to execute meta commands or interpreter
// statements. If it returns true, the REPL should terminate.
func (repl *BaseREPL) executeCommand(line string) bool {
	if !strings.HasPrefix(line, ":") {
		trace().Debugf("call interpreter on: '%s'", line)
		repl.interpret(line)
		return false
	}
	args := strings.Fields(line)
	switch cmd := args[0]; cmd {
	case ":help":
		repl.displayCommands(repl.stderr)
		if repl.Helper != nil {
			repl.Helper(repl.stderr)
		}
	case ":bye":
		io.WriteString(repl.stderr, "> goodbye!\n")
		return true
	case ":mode":
		rl, ok := repl.reader.(*readline.Instance)
		if ok && len(args) > 1 {
			switch args[1] {
			case "vi":
				rl.SetVimMode(true)
				editmode = "vi"
				return false
			case "emacs":
				rl.SetVimMode(false)
				editmode = "emacs"
				return false
			}
		}
		io.WriteString(repl.stderr, fmt.Sprintf("> current input mode: %s\n", editmode))
	default:
		if handler, ok := repl.commands[cmd]; ok {
			handler(repl, args)
		} else {
			io.WriteString(repl.stderr, fmt.Sprintf("> unknown command %s, try :help\n", cmd))
		}
	}
	return false // do not exit
}

// interpret calls the interpreter, sending a statement.
func (repl *BaseREPL) interpret(line string) {
	if repl.Interpreter == nil {
		return
	}
	repl.Interpreter.InterpretCommand(line)
}

// Input filter for REPL. Blocks ctrl-z.
func filterReplInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// lineScanner reads lines from a non-terminal input.
type lineScanner struct {
	scanner *bufio.Scanner
	prompt  string
	out     io.Writer
}

func (ls *lineScanner) Readline() (string, error) {
	io.WriteString(ls.out, ls.prompt)
	if !ls.scanner.Scan() {
		io.WriteString(ls.out, "\n")
		if err := ls.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return ls.scanner.Text(), nil
}

func (ls *lineScanner) Close() error {
	return nil
}
