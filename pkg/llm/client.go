package llm

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/ssestream"

	configpkg "github.com/minhyannv/ai-playground/pkg/config"
	loggerpkg "github.com/minhyannv/ai-playground/pkg/logger"
)

// Client sends single-turn chat completions to an OpenAI-compatible endpoint.
type Client struct {
	api    openai.Client
	model  string
	logger loggerpkg.Logger
}

// Option configures optional client dependencies.
type Option func(*clientDeps)

type clientDeps struct {
	logger         loggerpkg.Logger
	requestOptions []option.RequestOption
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) Option {
	return func(d *clientDeps) {
		d.logger = l
	}
}

// WithRequestOptions appends raw openai-go request options, such as a custom
// HTTP client or retry count.
func WithRequestOptions(opts ...option.RequestOption) Option {
	return func(d *clientDeps) {
		d.requestOptions = append(d.requestOptions, opts...)
	}
}

// New builds a Client for cfg's base URL, key and model.
func New(cfg configpkg.Config, opts ...Option) *Client {
	cfg = configpkg.Normalize(cfg)
	deps := clientDeps{logger: loggerpkg.NopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&deps)
		}
	}
	deps.logger = loggerpkg.OrNop(deps.logger)

	requestOptions := []option.RequestOption{}
	if cfg.BaseURL != "" {
		requestOptions = append(requestOptions, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		requestOptions = append(requestOptions, option.WithAPIKey(cfg.APIKey))
	}
	requestOptions = append(requestOptions, deps.requestOptions...)

	deps.logger.Debug("llm client init", map[string]any{
		"model":    cfg.Model,
		"base_url": cfg.BaseURL,
	})
	return &Client{
		api:    openai.NewClient(requestOptions...),
		model:  cfg.Model,
		logger: deps.logger,
	}
}

// Model returns the model identifier sent with every request.
func (c *Client) Model() string { return c.model }

func (c *Client) newChatParams(turn Turn) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(turn.Content),
		},
	}
}

// Complete performs one non-streaming completion and returns the reply text.
func (c *Client) Complete(ctx context.Context, turn Turn) (string, error) {
	if err := turn.Validate(); err != nil {
		return "", err
	}
	c.logger.Debug("chat: sending non-streaming request", map[string]any{"bytes": len(turn.Content)})
	completion, err := c.api.Chat.Completions.New(ctx, c.newChatParams(turn))
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("empty completion choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// Stream starts one streaming completion. Errors, including an invalid turn,
// surface through the returned stream's Err.
func (c *Client) Stream(ctx context.Context, turn Turn) ChunkStream {
	if err := turn.Validate(); err != nil {
		return &failedStream{err: err}
	}
	c.logger.Debug("chat: sending streaming request", map[string]any{"bytes": len(turn.Content)})
	return &chunkStream{inner: c.api.Chat.Completions.NewStreaming(ctx, c.newChatParams(turn))}
}

// chunkStream adapts the openai-go SSE stream to ChunkStream.
type chunkStream struct {
	inner *ssestream.Stream[openai.ChatCompletionChunk]
}

func (s *chunkStream) Next() bool { return s.inner.Next() }

func (s *chunkStream) Current() StreamChunk {
	chunk := s.inner.Current()
	if len(chunk.Choices) == 0 {
		return StreamChunk{}
	}
	return StreamChunk{Text: chunk.Choices[0].Delta.Content}
}

func (s *chunkStream) Err() error   { return s.inner.Err() }
func (s *chunkStream) Close() error { return s.inner.Close() }

type failedStream struct {
	err error
}

func (s *failedStream) Next() bool           { return false }
func (s *failedStream) Current() StreamChunk { return StreamChunk{} }
func (s *failedStream) Err() error           { return s.err }
func (s *failedStream) Close() error         { return nil }
