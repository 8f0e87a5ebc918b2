package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"yesnoquiz/internal/config"
	"yesnoquiz/internal/question"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, _ io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		quizPath := flags.String("quiz", "", "Path to quiz file (default: search for .yesnoquiz/quiz.yml)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		resolved, err := resolveQuizPath(*quizPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}

		quiz, err := config.Load(resolved)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}

		items := question.Ingest(quiz.Questions)
		fmt.Fprintf(stdout, "Quiz OK (%d entries)\n", len(items))
		for _, item := range items {
			if item.Valid() {
				continue
			}
			fmt.Fprintf(stdout, "Warning: %v (will be skipped): %s\n", item.Invalid, item.Invalid.Raw)
		}
		return ExitOK
	}
}
