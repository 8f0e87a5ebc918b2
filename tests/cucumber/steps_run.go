//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"strings"

	"yesnoquiz/internal/cli"
)

// thePlayerWillAnswer queues one line of player input.
func (s *featureState) thePlayerWillAnswer(line string) error {
	s.answers = append(s.answers, line)
	return nil
}

// iRunCommand executes a CLI command with the queued input as stdin.
func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "yesnoquiz" {
		args = args[1:]
	}
	input := strings.Join(s.answers, "\n")
	if input != "" {
		input += "\n"
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, strings.NewReader(input), &s.stdout, &s.stderr)
	return nil
}
