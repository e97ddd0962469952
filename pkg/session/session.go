// Package session runs the interactive read, send, stream and render loop.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minhyannv/ai-playground/pkg/console"
	"github.com/minhyannv/ai-playground/pkg/llm"
	loggerpkg "github.com/minhyannv/ai-playground/pkg/logger"
	"github.com/minhyannv/ai-playground/pkg/prompt"
)

// Phase is the session state machine position.
type Phase int

const (
	PhaseAwaitingInput Phase = iota
	PhaseSubmitting
	PhaseStreaming
	PhaseRendered
	PhaseClosed
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingInput:
		return "awaiting_input"
	case PhaseSubmitting:
		return "submitting"
	case PhaseStreaming:
		return "streaming"
	case PhaseRendered:
		return "rendered"
	case PhaseClosed:
		return "closed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Streamer starts one streaming single-turn completion.
type Streamer interface {
	Stream(ctx context.Context, turn llm.Turn) llm.ChunkStream
}

// Session holds the state of one interactive chat. Only one turn is ever in
// flight and no history is carried between turns.
type Session struct {
	streamer Streamer
	console  *console.Console
	logger   loggerpkg.Logger

	running bool
	seed    string
	phase   Phase
}

// New builds a Session reading from and writing to c.
func New(streamer Streamer, c *console.Console, opts ...Option) (*Session, error) {
	if streamer == nil {
		return nil, errors.New("streamer is required")
	}
	if c == nil {
		return nil, errors.New("console is required")
	}
	deps := sessionDeps{logger: loggerpkg.NopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&deps)
		}
	}

	return &Session{
		streamer: streamer,
		console:  c,
		logger:   loggerpkg.OrNop(deps.logger),
		seed:     strings.TrimSpace(deps.seed),
		phase:    PhaseAwaitingInput,
	}, nil
}

// Phase returns the current state machine position.
func (s *Session) Phase() Phase { return s.phase }

// Running reports whether Run is in progress.
func (s *Session) Running() bool { return s.running }

func (s *Session) setPhase(p Phase) {
	if s.phase == p {
		return
	}
	s.logger.Debug("session phase", map[string]any{"from": s.phase.String(), "to": p.String()})
	s.phase = p
}

// Run drives the session until the quit keyword, end of input, or a
// streaming failure. Quit and end of input return nil.
func (s *Session) Run(ctx context.Context) error {
	if s.running {
		return errors.New("session already running")
	}
	if s.phase == PhaseClosed {
		return errors.New("session is closed")
	}
	s.running = true
	defer func() { s.running = false }()

	s.console.Println(prompt.Welcome)
	s.console.Newline()

	if s.seed != "" {
		seed := prompt.GameSeed(s.seed)
		s.seed = ""
		s.logger.Debug("sending game seed", map[string]any{"bytes": len(seed)})
		if err := s.submit(ctx, seed); err != nil {
			s.setPhase(PhaseClosed)
			return err
		}
	}

	for {
		input, err := s.readInput()
		if errors.Is(err, io.EOF) {
			s.logger.Info("input closed", nil)
			s.close()
			return nil
		}
		if err != nil {
			s.setPhase(PhaseClosed)
			return err
		}

		if prompt.IsQuit(input) {
			s.logger.Info("Program exit initiated by user", nil)
			s.close()
			return nil
		}

		s.logger.Debug("User sent prompt", map[string]any{"prompt": input})
		if err := s.submit(ctx, input); err != nil {
			s.setPhase(PhaseClosed)
			return err
		}
	}
}

func (s *Session) close() {
	s.console.Println(prompt.Farewell)
	s.setPhase(PhaseClosed)
}

// readInput blocks until a non-empty line arrives.
func (s *Session) readInput() (string, error) {
	s.setPhase(PhaseAwaitingInput)
	for {
		s.console.Println(prompt.QuitHint)
		s.console.Newline()
		input, err := s.console.ReadLine(prompt.UserLabel)
		if err != nil {
			return "", err
		}
		if input != "" {
			return input, nil
		}
	}
}

// submit sends one turn and renders the reply chunk by chunk.
func (s *Session) submit(ctx context.Context, content string) error {
	s.setPhase(PhaseSubmitting)
	turn := llm.UserTurn(content)

	s.setPhase(PhaseStreaming)
	stream := s.streamer.Stream(ctx, turn)
	defer stream.Close()

	s.console.Print(prompt.AssistantName)
	chunks := 0
	for stream.Next() {
		text := stream.Current().Text
		if text == "" {
			continue
		}
		s.phase = PhaseRendered
		s.console.Print(text)
		chunks++
		s.phase = PhaseStreaming
	}
	if err := stream.Err(); err != nil {
		s.console.Newline()
		s.logger.Error("streaming failed", map[string]any{"chunks": chunks, "error": err.Error()})
		return fmt.Errorf("stream response: %w", err)
	}

	s.console.Newline()
	s.logger.Debug("response rendered", map[string]any{"chunks": chunks})
	return nil
}
