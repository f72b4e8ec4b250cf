package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
)

// Session feeds command lines from one sender into a dispatcher.
type Session struct {
	dispatcher *dispatchers.Dispatcher
	sender     *Sender
	history    domain.HistoryStore
	logger     domain.Logger
	prompt     string
}

type SessionOption func(*Session)

// WithHistory records every dispatched line in store.
func WithHistory(store domain.HistoryStore) SessionOption {
	return func(s *Session) {
		s.history = store
	}
}

func WithPrompt(prompt string) SessionOption {
	return func(s *Session) {
		s.prompt = prompt
	}
}

func NewSession(d *dispatchers.Dispatcher, sender *Sender, logger domain.Logger, opts ...SessionOption) *Session {
	s := &Session{
		dispatcher: d,
		sender:     sender,
		logger:     logger,
		prompt:     "> ",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run dispatches one line, records it and then drains queued asynchronous
// calls.
func (s *Session) Run(line string) (dispatchers.Outcome, error) {
	outcome, err := s.dispatcher.ExecuteLine(s.sender, line)
	if err == nil {
		err = s.dispatcher.Drain()
	}
	s.record(line, outcome, err)
	return outcome, err
}

func (s *Session) record(line string, outcome dispatchers.Outcome, err error) {
	if s.history == nil {
		return
	}
	rec := domain.HistoryRecord{
		Sender:  s.sender.Name(),
		Line:    line,
		Outcome: outcome.String(),
	}
	if err != nil {
		rec.Error = err.Error()
	}
	if herr := s.history.Record(rec); herr != nil {
		s.logger.Warn("console: could not record history: %v", herr)
	}
}

// Serve reads lines from in until EOF, "exit" or ctx is cancelled. Command
// failures are reported to the sender and do not end the loop.
func (s *Session) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, _ = fmt.Fprint(out, s.prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		if _, err := s.Run(line); err != nil {
			s.sender.SendMessage("error: %v", err)
		}
	}
}
