// Package llm wraps the OpenAI-compatible chat completion API with a
// pull-based streaming interface. The executor drives the stream one chunk
// at a time so it can check cancellation between chunks.
package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/talkwheel/talkwheel/pkg/config"
	"github.com/talkwheel/talkwheel/pkg/models"
)

// Message is one entry of an assembled prompt.
type Message struct {
	Role    string // "system", "user", "assistant"
	Content string
}

// Request is the input for a streaming generation call.
type Request struct {
	Messages  []Message
	Stop      []string
	MaxTokens int
}

// Chunk is one streamed increment. Content is the delta for this chunk;
// callers accumulate.
type Chunk struct {
	Content string
}

// Stream yields generation chunks. Recv returns io.EOF when the stream is
// exhausted; Usage is only meaningful after that.
type Stream interface {
	Recv() (Chunk, error)
	Usage() models.TokenUsage
	Close() error
}

// Client is the LLM transport interface. Tests substitute a scripted
// implementation.
type Client interface {
	Stream(ctx context.Context, req Request) (Stream, error)
}

// OpenAIClient implements Client over any OpenAI-compatible endpoint.
type OpenAIClient struct {
	client    *openai.Client
	model     string
	maxTokens int
}

// NewOpenAIClient builds a client from config. BaseURL may point at a local
// OpenAI-compatible server.
func NewOpenAIClient(cfg config.LLMConfig) *OpenAIClient {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	slog.Info("LLM client configured", "model", cfg.Model, "base_url", cfg.BaseURL)
	return &OpenAIClient{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}
}

// Stream starts a streaming chat completion. Errors from the initial call
// and from Recv are classified TransportErrors.
func (c *OpenAIClient) Stream(ctx context.Context, req Request) (Stream, error) {
	messages := make([]openai.ChatCompletionMessage, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}

	ocReq := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   true,
		StreamOptions: &openai.StreamOptions{
			IncludeUsage: true,
		},
	}
	if len(req.Stop) > 0 {
		// The API caps stop sequences at 4.
		stop := req.Stop
		if len(stop) > 4 {
			stop = stop[:4]
		}
		ocReq.Stop = stop
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.maxTokens
	}
	if maxTokens > 0 {
		ocReq.MaxCompletionTokens = maxTokens
	}

	stream, err := c.client.CreateChatCompletionStream(ctx, ocReq)
	if err != nil {
		return nil, ClassifyError(fmt.Errorf("create completion stream: %w", err))
	}
	return &openAIStream{inner: stream}, nil
}

type openAIStream struct {
	inner *openai.ChatCompletionStream
	usage models.TokenUsage
}

func (s *openAIStream) Recv() (Chunk, error) {
	for {
		resp, err := s.inner.Recv()
		if errors.Is(err, io.EOF) {
			return Chunk{}, io.EOF
		}
		if err != nil {
			return Chunk{}, ClassifyError(fmt.Errorf("stream recv: %w", err))
		}
		if resp.Usage != nil {
			s.usage = models.TokenUsage{
				PromptTokens:     int64(resp.Usage.PromptTokens),
				CompletionTokens: int64(resp.Usage.CompletionTokens),
			}
		}
		if len(resp.Choices) == 0 {
			// Usage-only frame at end of stream.
			continue
		}
		return Chunk{Content: resp.Choices[0].Delta.Content}, nil
	}
}

func (s *openAIStream) Usage() models.TokenUsage { return s.usage }

func (s *openAIStream) Close() error {
	return s.inner.Close()
}

// Collect drains a stream into the final text, calling onChunk with the
// cumulative content after each received chunk. onChunk returning an error
// aborts the stream with that error.
func Collect(stream Stream, onChunk func(cumulative string) error) (string, models.TokenUsage, error) {
	defer func() { _ = stream.Close() }()

	var sb strings.Builder
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return sb.String(), stream.Usage(), nil
		}
		if err != nil {
			return sb.String(), stream.Usage(), err
		}
		sb.WriteString(chunk.Content)
		if onChunk != nil {
			if err := onChunk(sb.String()); err != nil {
				return sb.String(), stream.Usage(), err
			}
		}
	}
}
