package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"yesnoquiz/internal/logging"
	"yesnoquiz/internal/prompt"
	"yesnoquiz/internal/question"
	"yesnoquiz/internal/runner"
	"yesnoquiz/internal/ui/live"
)

// playParams bundles what a single play needs.
type playParams struct {
	cfg     runner.Config
	items   []question.Item
	stdin   io.Reader
	stdout  io.Writer
	log     *zap.Logger
	noColor bool
}

func runRun(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		quizPath := fs.String("quiz", "", "Path to quiz file (default: search for .yesnoquiz/quiz.yml)")
		countdown := fs.Int("countdown", -1, "Override countdown seconds (0 disables)")
		uiMode := fs.String("ui", "plain", "Console UI mode: auto|live|plain")
		noColor := fs.Bool("no-color", false, "Disable colored output")
		verbose := fs.Bool("verbose", false, "Write debug logs to stderr")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		decision, err := resolveUIMode(*uiMode, *verbose, stdin, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid options: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		quiz, err := loadQuiz(*quizPath, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load quiz:\n%v\n", err)
			return ExitError
		}
		if *countdown >= 0 {
			quiz.CountdownSeconds = *countdown
		}

		log := logging.New(*verbose, stderr)
		defer func() { _ = log.Sync() }()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		params := playParams{
			cfg: runner.Config{
				Title:            quiz.Title,
				Description:      quiz.Description,
				CountdownSeconds: quiz.CountdownSeconds,
			},
			items:   question.Ingest(quiz.Questions),
			stdin:   stdin,
			stdout:  stdout,
			log:     log,
			noColor: *noColor,
		}
		play := playPlain
		if decision.useLive {
			play = playLive
		}
		if _, err := play(ctx, params); err != nil {
			switch {
			case errors.Is(err, context.Canceled):
				fmt.Fprintln(stderr, "Quiz interrupted.")
			case errors.Is(err, prompt.ErrInputClosed):
				fmt.Fprintf(stderr, "Quiz aborted: %v\n", err)
			default:
				fmt.Fprintf(stderr, "Run failed: %v\n", err)
			}
			return ExitError
		}
		return ExitOK
	}
}

// playPlain runs the quiz on the line-oriented console.
func playPlain(ctx context.Context, params playParams) (runner.Results, error) {
	asker := prompt.New(prompt.NewScannerReader(params.stdin), params.stdout, prompt.Options{Logger: params.log})
	r := runner.New(params.cfg, runner.Options{
		Asker:   asker,
		Out:     params.stdout,
		Logger:  params.log,
		NoColor: params.noColor,
	})
	return r.Run(ctx, params.items)
}

// playLive runs the quiz behind the live UI and prints the final line once
// the UI has exited.
func playLive(ctx context.Context, params playParams) (runner.Results, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ui := live.Start(params.stdin, params.stdout, live.Options{
		Title:   params.cfg.Title,
		NoColor: params.noColor,
		Cancel:  cancel,
	})
	asker := prompt.New(ui.Answers(), io.Discard, prompt.Options{
		Logger:   params.log,
		OnReject: ui.OnReject,
	})
	r := runner.New(params.cfg, runner.Options{
		Asker:    asker,
		Out:      io.Discard,
		Observer: ui,
		Logger:   params.log,
		NoColor:  true,
	})
	results, err := r.Run(ctx, params.items)
	ui.Close()
	if waitErr := ui.Wait(); waitErr != nil && err == nil {
		err = fmt.Errorf("live ui: %w", waitErr)
	}
	if err != nil {
		return results, err
	}
	if results.Empty {
		fmt.Fprintln(params.stdout, runner.EmptyMessage)
	} else {
		fmt.Fprintln(params.stdout, results.ScoreLine())
	}
	return results, nil
}
