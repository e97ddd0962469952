package session

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhyannv/ai-playground/pkg/console"
	"github.com/minhyannv/ai-playground/pkg/llm"
)

type scriptedStream struct {
	chunks []string
	err    error
	pos    int
	closed bool
}

func (s *scriptedStream) Next() bool {
	if s.pos >= len(s.chunks) {
		return false
	}
	s.pos++
	return true
}

func (s *scriptedStream) Current() llm.StreamChunk {
	return llm.StreamChunk{Text: s.chunks[s.pos-1]}
}

func (s *scriptedStream) Err() error {
	if s.pos >= len(s.chunks) {
		return s.err
	}
	return nil
}

func (s *scriptedStream) Close() error {
	s.closed = true
	return nil
}

type fakeStreamer struct {
	turns   []llm.Turn
	chunks  []string
	err     error
	streams []*scriptedStream
}

func (f *fakeStreamer) Stream(_ context.Context, turn llm.Turn) llm.ChunkStream {
	f.turns = append(f.turns, turn)
	s := &scriptedStream{chunks: f.chunks, err: f.err}
	f.streams = append(f.streams, s)
	return s
}

// snapshotWriter records the accumulated output after every write.
type snapshotWriter struct {
	buf       bytes.Buffer
	snapshots []string
}

func (w *snapshotWriter) Write(p []byte) (int, error) {
	n, err := w.buf.Write(p)
	w.snapshots = append(w.snapshots, w.buf.String())
	return n, err
}

func newSession(t *testing.T, streamer Streamer, input string, opts ...Option) (*Session, *snapshotWriter) {
	t.Helper()
	out := &snapshotWriter{}
	c, err := console.New(strings.NewReader(input), out)
	require.NoError(t, err)
	s, err := New(streamer, c, opts...)
	require.NoError(t, err)
	return s, out
}

func TestRunSendsTrimmedInputAsSingleTurn(t *testing.T) {
	streamer := &fakeStreamer{chunks: []string{"Salut"}}
	s, out := newSession(t, streamer, "  bonjour  \nquit\n")

	require.NoError(t, s.Run(context.Background()))

	require.Len(t, streamer.turns, 1)
	assert.Equal(t, llm.RoleUser, streamer.turns[0].Role)
	assert.Equal(t, "bonjour", streamer.turns[0].Content)
	assert.True(t, streamer.streams[0].closed)
	assert.Contains(t, out.buf.String(), "Mistral: Salut\n")
	assert.Equal(t, PhaseClosed, s.Phase())
	assert.False(t, s.Running())
}

func TestRunQuitSubstringTerminatesWithoutRequest(t *testing.T) {
	for _, in := range []string{"quit", "quitter", "je quitte"} {
		streamer := &fakeStreamer{}
		s, out := newSession(t, streamer, in+"\nbonjour\n")

		require.NoError(t, s.Run(context.Background()), in)
		assert.Empty(t, streamer.turns, in)
		assert.True(t, strings.HasSuffix(out.buf.String(), "A la prochaine!\n"), in)
	}
}

func TestRunQuitIsCaseSensitive(t *testing.T) {
	streamer := &fakeStreamer{chunks: []string{"ok"}}
	s, _ := newSession(t, streamer, "QUIT\nquit\n")

	require.NoError(t, s.Run(context.Background()))
	require.Len(t, streamer.turns, 1)
	assert.Equal(t, "QUIT", streamer.turns[0].Content)
}

func TestRunSkipsBlankInput(t *testing.T) {
	streamer := &fakeStreamer{chunks: []string{"ok"}}
	s, out := newSession(t, streamer, "\n   \n\t\nsalut\nquit\n")

	require.NoError(t, s.Run(context.Background()))
	require.Len(t, streamer.turns, 1)
	assert.Equal(t, "salut", streamer.turns[0].Content)
	assert.Equal(t, 5, strings.Count(out.buf.String(), "Vous: "))
	assert.Equal(t, 5, strings.Count(out.buf.String(), "(écrire 'quit' pour quitter à tout moment)"))
}

func TestRunRendersIncrementally(t *testing.T) {
	streamer := &fakeStreamer{chunks: []string{"Bon", "", "jour"}}
	s, out := newSession(t, streamer, "dis bonjour\nquit\n")

	require.NoError(t, s.Run(context.Background()))

	var prefix string
	for i, snap := range out.snapshots {
		if strings.HasSuffix(snap, "Mistral: ") {
			prefix = snap
			require.Greater(t, len(out.snapshots), i+3)
			assert.Equal(t, prefix+"Bon", out.snapshots[i+1])
			assert.Equal(t, prefix+"Bonjour", out.snapshots[i+2])
			assert.Equal(t, prefix+"Bonjour\n", out.snapshots[i+3])
			break
		}
	}
	require.NotEmpty(t, prefix, "assistant label never written")
}

func TestRunIsStatelessAcrossTurns(t *testing.T) {
	streamer := &fakeStreamer{chunks: []string{"ok"}}
	s, _ := newSession(t, streamer, "premier\nsecond\nquit\n")

	require.NoError(t, s.Run(context.Background()))
	require.Len(t, streamer.turns, 2)
	assert.Equal(t, "second", streamer.turns[1].Content)
	assert.NotContains(t, streamer.turns[1].Content, "premier")
}

func TestRunPropagatesStreamError(t *testing.T) {
	boom := errors.New("connection reset")
	streamer := &fakeStreamer{chunks: []string{"Bon"}, err: boom}
	s, out := newSession(t, streamer, "salut\nencore\nquit\n")

	err := s.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, streamer.turns, 1, "no retry and no further turns after a transport error")
	assert.Equal(t, PhaseClosed, s.Phase())
	assert.NotContains(t, out.buf.String(), "A la prochaine!")
}

func TestRunGameSeedIsSentFirstAndOnce(t *testing.T) {
	streamer := &fakeStreamer{chunks: []string{"ok"}}
	s, _ := newSession(t, streamer, "A moi\nquit\n", WithGameSeed("Devine le nombre."))

	require.NoError(t, s.Run(context.Background()))
	require.Len(t, streamer.turns, 2)
	assert.Equal(t, "Let's play this game: Devine le nombre.", streamer.turns[0].Content)
	assert.Equal(t, "A moi", streamer.turns[1].Content)
}

func TestRunEndOfInputClosesCleanly(t *testing.T) {
	streamer := &fakeStreamer{chunks: []string{"ok"}}
	s, out := newSession(t, streamer, "salut\n")

	require.NoError(t, s.Run(context.Background()))
	assert.Len(t, streamer.turns, 1)
	assert.Equal(t, PhaseClosed, s.Phase())
	assert.True(t, strings.HasSuffix(out.buf.String(), "A la prochaine!\n"))

	assert.Error(t, s.Run(context.Background()), "closed session cannot run again")
}

func TestRunPrintsWelcomeFirst(t *testing.T) {
	s, out := newSession(t, &fakeStreamer{}, "quit\n")
	require.NoError(t, s.Run(context.Background()))
	assert.True(t, strings.HasPrefix(out.buf.String(), "Welcome\n\n"))
}

func TestNewRequiresDependencies(t *testing.T) {
	c, err := console.New(strings.NewReader(""), io.Discard)
	require.NoError(t, err)

	_, err = New(nil, c)
	assert.Error(t, err)
	_, err = New(&fakeStreamer{}, nil)
	assert.Error(t, err)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "awaiting_input", PhaseAwaitingInput.String())
	assert.Equal(t, "closed", PhaseClosed.String())
	assert.Equal(t, "phase(42)", Phase(42).String())
}
