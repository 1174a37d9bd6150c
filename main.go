package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bobappleyard/readline"

	"loxwalk/ast"
	"loxwalk/interpret"
	"loxwalk/parse"
	"loxwalk/scan"
)

func main() {
	args := os.Args[1:]

	switch {
	case len(args) > 1:
		fmt.Println("Usage: jlox [script]")
		os.Exit(64)
	case len(args) == 1:
		runFile(args[0])
	default:
		runPrompt()
	}
}

// runFile executes a single source file and exits with 65 if it contained
// a lexical or syntax error, or 70 if it ran but hit a runtime error.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	r := newRunner(os.Stdout, os.Stderr)
	hadError, hadRuntimeError := r.run(string(source))
	if hadError {
		os.Exit(65)
	}
	if hadRuntimeError {
		os.Exit(70)
	}
}

// runPrompt starts an interactive REPL. Each line is run against the same
// runner, so variable and function declarations persist across lines; a
// scan or parse error on one line does not end the session, only resets
// that line's error flag before reading the next.
func runPrompt() {
	r := newRunner(os.Stdout, os.Stderr)
	for {
		line, err := readline.String("> ")
		if err != nil {
			break
		}
		readline.AddHistory(line)
		r.run(line)
	}
}

// runner owns one interpreter instance and the writers it reports through.
// Keeping these as fields instead of package globals lets a test (or an
// embedder) run several independent sessions without interference.
type runner struct {
	interpreter *interpret.Interpreter
	stdErr      io.Writer
}

func newRunner(stdOut, stdErr io.Writer) runner {
	return runner{interpreter: interpret.NewInterpreter(stdOut, stdErr), stdErr: stdErr}
}

func (r runner) run(source string) (hadError, hadRuntimeError bool) {
	scanner := scan.NewScanner(source, r.stdErr)
	tokens, scanErr := scanner.ScanTokens()

	parser := parse.NewParser(tokens, r.stdErr)
	var statements []ast.Stmt
	statements, parseErr := parser.Parse()

	hadError = scanErr || parseErr
	if hadError {
		return hadError, false
	}

	hadRuntimeError = r.interpreter.Interpret(statements)
	return hadError, hadRuntimeError
}
