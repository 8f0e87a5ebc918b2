package prompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yesnoquiz/internal/testutil"
)

func TestAskYesNoRecognizedTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{input: "YES\n", want: true},
		{input: " yes \n", want: true},
		{input: "Y\n", want: true},
		{input: "y \n", want: true},
		{input: "NO\n", want: false},
		{input: " no \n", want: false},
		{input: "N\n", want: false},
		{input: "n", want: false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		p := New(NewScannerReader(strings.NewReader(tt.input)), &out, Options{})
		got, err := p.AskYesNo(context.Background(), "Your answer")
		require.NoErrorf(t, err, "input %q", tt.input)
		assert.Equalf(t, tt.want, got, "input %q", tt.input)
		assert.Equal(t, "Your answer (yes/no): ", out.String())
	}
}

func TestAskYesNoRepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	var rejected []string
	reader := NewScannerReader(strings.NewReader("maybe\n\n1\nyes\nno\n"))
	p := New(reader, &out, Options{OnReject: func(input string) { rejected = append(rejected, input) }})

	got, err := p.AskYesNo(context.Background(), "Your answer")
	require.NoError(t, err)
	assert.True(t, got)
	assert.Equal(t, []string{"maybe", "", "1"}, rejected)
	assert.Equal(t, 3, strings.Count(out.String(), RejectMessage))
	assert.Equal(t, 4, strings.Count(out.String(), "Your answer (yes/no): "))

	got, err = p.AskYesNo(context.Background(), "Your answer")
	require.NoError(t, err)
	assert.False(t, got, "remaining input must be untouched by earlier retries")
}

func TestAskYesNoInputClosed(t *testing.T) {
	p := New(NewScannerReader(strings.NewReader("maybe\n")), io.Discard, Options{})
	_, err := p.AskYesNo(context.Background(), "Your answer")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInputClosed))
	assert.True(t, errors.Is(err, io.EOF))
}

func TestAskYesNoChanReader(t *testing.T) {
	lines := make(chan string, 2)
	lines <- "what"
	lines <- "n"
	p := New(NewChanReader(lines), nil, Options{})

	got, err := p.AskYesNo(testutil.Context(t, time.Second), "Q")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestAskYesNoCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := New(NewChanReader(make(chan string)), io.Discard, Options{})

	_, err := p.AskYesNo(ctx, "Q")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, errors.Is(err, ErrInputClosed))
}

func TestChanReaderClosed(t *testing.T) {
	lines := make(chan string)
	close(lines)
	_, err := NewChanReader(lines).ReadLine(context.Background())
	assert.Equal(t, io.EOF, err)
}

func TestAskYesNoCancelledWhileWaitingOnStream(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	ctx, cancel := testutil.WithCancel(t, 0)
	p := New(NewScannerReader(pr), io.Discard, Options{})

	type result struct {
		answer bool
		err    error
	}
	done := make(chan result, 1)
	go func() {
		answer, err := p.AskYesNo(ctx, "Q")
		done <- result{answer: answer, err: err}
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case got := <-done:
		require.Error(t, got.err)
		assert.True(t, errors.Is(got.err, context.Canceled))
		assert.False(t, errors.Is(got.err, ErrInputClosed))
	case <-time.After(time.Second):
		t.Fatalf("AskYesNo still blocked after cancel")
	}
}

func TestAskYesNoRejectsLineReadAfterCancel(t *testing.T) {
	lines := make(chan string, 1)
	lines <- "yes"
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := New(NewChanReader(lines), io.Discard, Options{})

	_, err := p.AskYesNo(ctx, "Q")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestScannerReaderReportsReadError(t *testing.T) {
	boom := errors.New("boom")
	p := New(NewScannerReader(iotest.ErrReader(boom)), io.Discard, Options{})

	_, err := p.AskYesNo(testutil.Context(t, time.Second), "Q")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInputClosed))
	assert.True(t, errors.Is(err, boom))
}
