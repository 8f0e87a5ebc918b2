package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"yesnoquiz/internal/logging"
	"yesnoquiz/internal/question"
)

// Asker obtains a yes/no answer from the player.
type Asker interface {
	AskYesNo(ctx context.Context, label string) (bool, error)
}

// Config is the presentation side of a quiz.
type Config struct {
	Title            string
	Description      string
	CountdownSeconds int
}

// Options wires a Runner to its collaborators. Only Asker is required.
type Options struct {
	Asker    Asker
	Out      io.Writer
	Observer Observer
	Logger   *zap.Logger
	Sleeper  Sleeper
	NoColor  bool
	NewID    func() string
	Now      func() time.Time
}

// Runner drives one quiz session at a time.
type Runner struct {
	cfg      Config
	asker    Asker
	out      io.Writer
	observer Observer
	log      *zap.Logger
	sleeper  Sleeper
	palette  palette
	newID    func() string
	now      func() time.Time
}

// New builds a Runner for cfg. It panics when opts.Asker is nil.
func New(cfg Config, opts Options) *Runner {
	if opts.Asker == nil {
		panic("runner: Options.Asker is required")
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	observer := opts.Observer
	if observer == nil {
		observer = nopObserver{}
	}
	sleeper := opts.Sleeper
	if sleeper == nil {
		sleeper = timerSleeper{}
	}
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Runner{
		cfg:      cfg,
		asker:    opts.Asker,
		out:      out,
		observer: observer,
		log:      logging.OrNop(opts.Logger),
		sleeper:  sleeper,
		palette:  newPalette(out, opts.NoColor),
		newID:    newID,
		now:      now,
	}
}

// Run prints the banner, counts down, and plays the question set.
func (r *Runner) Run(ctx context.Context, items []question.Item) (Results, error) {
	r.writeBanner()
	if err := r.countdown(ctx); err != nil {
		return Results{Title: r.cfg.Title, Total: len(items)}, err
	}
	return r.Play(ctx, items)
}

// Play asks every question in order and reports the final score.
//
// Invalid items are announced and skipped without changing the score, and
// the reported total is always len(items), so each skipped entry lowers the
// achievable score.
func (r *Runner) Play(ctx context.Context, items []question.Item) (Results, error) {
	session := newSession(r.newID(), len(items))
	results := Results{
		SessionID: session.ID,
		Title:     r.cfg.Title,
		Total:     session.Total,
		StartedAt: r.now(),
	}
	r.observer.OnSessionStart(session.ID, r.cfg.Title, session.Total)
	r.log.Info("session started",
		zap.String("session_id", session.ID),
		zap.String("title", r.cfg.Title),
		zap.Int("total", session.Total),
	)

	session.begin()
	if session.Phase == PhaseFinished {
		fmt.Fprintln(r.out, r.palette.notice(EmptyMessage))
		results.Empty = true
		r.finish(&results)
		return results, nil
	}

	for _, item := range items {
		position := session.Position
		if !item.Valid() {
			r.skip(session, item, &results)
			session.advance()
			continue
		}

		q := item.Question
		r.emit(session, QuestionEvent{Position: position, Text: q.Text, Type: QuestionPresented})
		fmt.Fprintln(r.out, questionLine(position, session.Total, q.Text))

		answer, err := r.asker.AskYesNo(ctx, AnswerLabel)
		if err != nil {
			results.Score = session.Score
			summarize(&results)
			return results, fmt.Errorf("question %d: %w", position, err)
		}

		correct := answer == q.Expected
		session.score(correct)
		results.Outcomes = append(results.Outcomes, Outcome{
			Position: position,
			Text:     q.Text,
			Expected: q.Expected,
			Answer:   answer,
			Correct:  correct,
		})
		eventType := QuestionIncorrect
		if correct {
			eventType = QuestionCorrect
			fmt.Fprintf(r.out, "%s\n\n", r.palette.correct(CorrectText))
		} else {
			fmt.Fprintf(r.out, "%s\n\n", r.palette.incorrect(IncorrectText))
		}
		r.emit(session, QuestionEvent{Position: position, Text: q.Text, Type: eventType, Answer: answer})
		r.log.Debug("question answered",
			zap.Int("position", position),
			zap.Bool("answer", answer),
			zap.Bool("correct", correct),
		)
		session.advance()
	}

	results.Score = session.Score
	fmt.Fprintln(r.out, results.ScoreLine())
	fmt.Fprintf(r.out, "%s\n\n", rule())
	r.finish(&results)
	return results, nil
}

// skip reports a malformed entry and records it as a skipped outcome.
func (r *Runner) skip(session *Session, item question.Item, results *Results) {
	position := session.Position
	fmt.Fprintln(r.out, r.palette.notice(fmt.Sprintf(skipLineFormat, position, item.Invalid.Raw)))
	r.log.Warn("skipping invalid question entry",
		zap.Int("position", position),
		zap.String("entry", item.Invalid.Raw),
		zap.String("reason", item.Invalid.Reason),
	)
	session.skip()
	results.Outcomes = append(results.Outcomes, Outcome{
		Position: position,
		Skipped:  true,
		Reason:   item.Invalid.Reason,
	})
	r.emit(session, QuestionEvent{
		Position: position,
		Type:     QuestionSkipped,
		Raw:      item.Invalid.Raw,
		Reason:   item.Invalid.Reason,
	})
}

func (r *Runner) emit(session *Session, event QuestionEvent) {
	event.SessionID = session.ID
	event.Total = session.Total
	event.EmittedAt = r.now()
	r.observer.OnQuestionEvent(event)
}

func (r *Runner) finish(results *Results) {
	summarize(results)
	results.FinishedAt = r.now()
	r.log.Info("session finished",
		zap.String("session_id", results.SessionID),
		zap.Int("score", results.Score),
		zap.Int("total", results.Total),
		zap.Int("skipped", results.Skipped),
	)
	r.observer.OnSessionEnd(*results)
}
