package cli

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// UI modes accepted by run --ui.
const (
	uiModeAuto  = "auto"
	uiModeLive  = "live"
	uiModePlain = "plain"
)

// uiModeDecision records which front end plays the quiz.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal reports whether a stream is attached to a TTY.
var isTerminal = streamIsTerminal

// resolveUIMode picks the live UI or plain output for a run. The live UI
// reads keys from stdin and redraws stdout, so it needs both on a terminal.
func resolveUIMode(mode string, verbose bool, stdin io.Reader, stdout io.Writer) (uiModeDecision, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = uiModeAuto
	}
	if normalized != uiModeAuto && normalized != uiModeLive && normalized != uiModePlain {
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
	}
	// Log lines on stderr would tear the redrawn screen.
	if verbose || normalized == uiModePlain {
		return uiModeDecision{}, nil
	}

	missing := terminalGap(stdin, stdout)
	if missing == "" {
		return uiModeDecision{useLive: true}, nil
	}
	if normalized == uiModeAuto {
		return uiModeDecision{}, nil
	}
	return uiModeDecision{
		warning: fmt.Sprintf("Live UI requested but %s is not a TTY; playing the quiz in plain mode.", missing),
	}, nil
}

// terminalGap names the first stream that is not a terminal, or "".
func terminalGap(stdin io.Reader, stdout io.Writer) string {
	switch {
	case !isTerminal(stdin):
		return "stdin"
	case !isTerminal(stdout):
		return "stdout"
	}
	return ""
}

// streamIsTerminal inspects any stream exposing a file descriptor.
func streamIsTerminal(stream any) bool {
	fder, ok := stream.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(fder.Fd()))
}
