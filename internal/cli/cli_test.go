package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootUsage(t *testing.T) {
	cases := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{name: "no args", wantCode: ExitUsage},
		{name: "long flag", args: []string{"--help"}, wantCode: ExitOK},
		{name: "short flag", args: []string{"-h"}, wantCode: ExitOK},
		{name: "help word", args: []string{"help"}, wantCode: ExitOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := runCLI("", tc.args...)
			assert.Equal(t, tc.wantCode, res.code)
			assert.Empty(t, res.stderr)
			assert.Contains(t, res.stdout, "yesnoquiz <command> [options]")
			for _, cmd := range commands {
				assert.Contains(t, res.stdout, cmd.Name)
				assert.Contains(t, res.stdout, cmd.Summary)
			}
		})
	}
}

func TestUnknownCommandPrintsUsageToStderr(t *testing.T) {
	res := runCLI("", "play")

	assert.Equal(t, ExitUsage, res.code)
	assert.Empty(t, res.stdout)
	assert.True(t, strings.HasPrefix(res.stderr, "Unknown command: play\n"), res.stderr)
	assert.Contains(t, res.stderr, "Usage:")
}

func TestEveryCommandHasHelp(t *testing.T) {
	for _, cmd := range commands {
		for _, flag := range []string{"--help", "-h"} {
			t.Run(cmd.Name+" "+flag, func(t *testing.T) {
				// stdin is never read when help is requested.
				res := runCLI("yes\n", cmd.Name, flag)
				assert.Equal(t, ExitOK, res.code)
				assert.Empty(t, res.stderr)
				assert.Contains(t, res.stdout, "Usage:")
				for _, line := range cmd.Usage {
					assert.Contains(t, res.stdout, line)
				}
			})
		}
	}
}
