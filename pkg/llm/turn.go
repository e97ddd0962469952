// Package llm talks to the hosted chat model. Every request carries exactly one
// user Turn; no conversation history is kept between requests.
package llm

import (
	"errors"
	"fmt"
	"strings"
)

// Role is the role for a chat message.
type Role string

const RoleUser Role = "user"

var ErrEmptyTurn = errors.New("turn content is empty")

// Turn is one role-tagged message submitted to the model.
type Turn struct {
	Role    Role
	Content string
}

// UserTurn builds a user Turn from trimmed content.
func UserTurn(content string) Turn {
	return Turn{Role: RoleUser, Content: strings.TrimSpace(content)}
}

// Validate rejects turns this client never sends.
func (t Turn) Validate() error {
	if t.Role != RoleUser {
		return fmt.Errorf("invalid turn role %q", t.Role)
	}
	if strings.TrimSpace(t.Content) == "" {
		return ErrEmptyTurn
	}
	return nil
}

// StreamChunk is one incremental fragment of a streamed reply.
type StreamChunk struct {
	Text string
}

// ChunkStream yields StreamChunks in arrival order. It is finite and cannot be
// restarted; Err reports a transport failure after Next returns false.
type ChunkStream interface {
	Next() bool
	Current() StreamChunk
	Err() error
	Close() error
}
