package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"yesnoquiz/internal/logging"
	"yesnoquiz/internal/question"
)

// RejectMessage is shown after input that is neither yes nor no.
const RejectMessage = "Please answer 'yes' or 'no'."

// ErrInputClosed reports that the input stream ended before a valid answer.
var ErrInputClosed = errors.New("input closed before a yes/no answer")

// Options configures a Prompter.
type Options struct {
	Logger *zap.Logger
	// OnReject is called with the raw line whenever input is rejected.
	OnReject func(input string)
}

// Prompter asks yes/no questions until it gets a recognized answer.
type Prompter struct {
	reader   LineReader
	out      io.Writer
	log      *zap.Logger
	onReject func(string)
}

// New builds a Prompter reading from reader and writing prompts to out.
func New(reader LineReader, out io.Writer, opts Options) *Prompter {
	if out == nil {
		out = io.Discard
	}
	return &Prompter{
		reader:   reader,
		out:      out,
		log:      logging.OrNop(opts.Logger),
		onReject: opts.OnReject,
	}
}

// AskYesNo writes "<label> (yes/no): " and reads lines until one classifies
// as affirmative (true) or negative (false). Unrecognized input is answered
// with RejectMessage and the prompt repeats without limit.
func (p *Prompter) AskYesNo(ctx context.Context, label string) (bool, error) {
	for {
		fmt.Fprintf(p.out, "%s (yes/no): ", label)
		line, err := p.reader.ReadLine(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return false, fmt.Errorf("read answer: %w", ctxErr)
			}
			return false, fmt.Errorf("%w: %w", ErrInputClosed, err)
		}
		if err := ctx.Err(); err != nil {
			return false, fmt.Errorf("read answer: %w", err)
		}
		switch question.Classify(line) {
		case question.Affirmative:
			return true, nil
		case question.Negative:
			return false, nil
		}
		p.log.Debug("rejected answer", zap.String("input", line))
		if p.onReject != nil {
			p.onReject(line)
		}
		fmt.Fprintln(p.out, RejectMessage)
	}
}
