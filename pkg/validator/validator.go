// Package validator checks an API key with a single probe request before the
// interactive session starts.
package validator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/minhyannv/ai-playground/pkg/llm"
	loggerpkg "github.com/minhyannv/ai-playground/pkg/logger"
	"github.com/minhyannv/ai-playground/pkg/prompt"
)

var ErrInvalidAPIKey = errors.New("API key validation failed")

// Completer performs one non-streaming single-turn completion.
type Completer interface {
	Complete(ctx context.Context, turn llm.Turn) (string, error)
}

// Result is the outcome of the key probe.
type Result struct {
	Valid   bool
	Message string
}

// Err returns nil for a valid result and ErrInvalidAPIKey carrying Message otherwise.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidAPIKey, r.Message)
}

// Validate sends the fixed probe prompt once and reports whether it succeeded.
func Validate(ctx context.Context, c Completer, l loggerpkg.Logger) Result {
	l = loggerpkg.OrNop(l)
	if c == nil {
		return Result{Valid: false, Message: "no model client configured"}
	}

	l.Debug("validating api key", nil)
	reply, err := c.Complete(ctx, llm.UserTurn(prompt.ProbePrompt))
	if err != nil {
		l.Error("api key validation failed", err)
		return Result{Valid: false, Message: err.Error()}
	}

	reply = strings.TrimSpace(reply)
	l.Info("api key validated", map[string]any{"reply": reply})
	return Result{Valid: true, Message: reply}
}
