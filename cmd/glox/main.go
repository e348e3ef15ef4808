// Command glox is the CLI driver around the lox library: read a script
// file or start an interactive prompt. Argument parsing, logging, and
// error-message prettification all live here, never in the lox package
// itself, per the spec's Non-goals.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/glox-lang/glox"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "glox [script]",
		Short: "glox runs Lox-family scripts, or starts an interactive prompt with none given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			if len(args) == 1 {
				return runFile(args[0])
			}
			return runPrompt(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func runFile(path string) error {
	log.WithField("path", path).Debug("running script")
	if _, err := lox.RunFile(path); err != nil {
		log.WithField("path", path).Error(err)
		return err
	}
	return nil
}

// runPrompt is the teacher's runPrompt loop (print "> ", read a line, run
// it, continue until EOF) with the bufio reader swapped for a readline
// instance, giving history and line editing.
func runPrompt(stdin io.Reader, stdout io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		Stdin:       io.NopCloser(stdin),
		Stdout:      stdout,
		HistoryFile: historyPath(),
	})
	if err != nil {
		return fmt.Errorf("could not start prompt: %w", err)
	}
	defer rl.Close()

	log.Debug("glox REPL starting")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			log.Debug("glox REPL exiting")
			return nil
		}
		if line == "" {
			continue
		}
		if _, err := lox.RunWithOutput(line, stdout); err != nil {
			fmt.Fprintln(stdout, err)
		}
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.glox_history"
}
