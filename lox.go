// Package lox is glox's library entry point: "given a source string,
// produce the program's standard-output string or a diagnostic," per the
// spec's External Interfaces section. Everything else -- the CLI driver,
// its flag parsing, and its logging -- lives in cmd/glox and is an
// external collaborator of this package, never imported here.
package lox

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/glox-lang/glox/interp"
	"github.com/glox-lang/glox/lexer"
	"github.com/glox-lang/glox/parser"
)

// Run scans, parses, and interprets source, returning everything `print`
// wrote (joined by newlines, as the evaluator appends them) or the first
// error from any pipeline stage. print statements are also mirrored to
// os.Stdout as they execute.
func Run(source string) (string, error) {
	return RunWithOutput(source, os.Stdout)
}

// RunWithOutput is Run but mirrors `print` output to w instead of
// os.Stdout; pass nil to only capture the output string.
func RunWithOutput(source string, w io.Writer) (string, error) {
	tokens, err := lexer.New(source).ScanTokens()
	if err != nil {
		return "", err
	}
	stmts, err := parser.New(tokens).Parse()
	if err != nil {
		return "", err
	}
	return interp.New(w).Interpret(stmts)
}

// RunFile reads path and runs its contents.
func RunFile(path string) (string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read file %q: %w", path, err)
	}
	return Run(string(contents))
}

// RunPrompt is a minimal, dependency-free REPL convenience wrapper: it
// reads one line at a time from r, printing "> " to w before each prompt,
// running each line, and exiting when r reaches EOF. cmd/glox uses a
// readline-backed REPL instead for line editing and history; this version
// exists purely as the spec's zero-dependency library-level convenience
// function.
func RunPrompt(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		if _, err := RunWithOutput(line, w); err != nil {
			fmt.Fprintln(w, err)
		}
	}
}
