package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang-stock-summary/internal/summary/config"
	"golang-stock-summary/internal/summary/dto"
	"golang-stock-summary/pkg/logger"
	"golang-stock-summary/pkg/trace"

	"go.opentelemetry.io/otel/attribute"
)

type openaiChatRepository struct {
	client *http.Client
	cfg    *config.Config
	logger *logger.Logger
}

// NewOpenAIChatRepository creates a ChatRepository for OpenAI compatible endpoints
// (OpenAI, GitHub Models, Azure AI inference, OpenRouter, ...).
func NewOpenAIChatRepository(cfg *config.Config, log *logger.Logger) ChatRepository {
	return &openaiChatRepository{
		client: &http.Client{
			Timeout: cfg.LLM.Timeout,
		},
		cfg:    cfg,
		logger: log,
	}
}

func (r *openaiChatRepository) Configured() bool {
	return r.cfg.LLM.Token != ""
}

func (r *openaiChatRepository) Complete(ctx context.Context, payload dto.ChatRequest) (*dto.ChatResponse, error) {
	if !r.Configured() {
		return nil, ErrChatNotConfigured
	}

	ctx, span := trace.StartSpan(ctx, "llm.chat-completion",
		attribute.String("llm.provider", "openai"),
		attribute.String("llm.model", payload.Model),
	)
	defer span.End()

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	r.logger.DebugContext(ctx, "Sending request to chat completion API", logger.StringField("url", r.cfg.LLM.Endpoint), logger.StringField("model", payload.Model))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.LLM.Endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.cfg.LLM.Token))

	resp, err := r.client.Do(req)
	if err != nil {
		err = fmt.Errorf("%w: failed to send request to chat completion API: %w", ErrUpstreamTransport, err)
		trace.RecordError(span, err)
		return nil, err
	}
	defer resp.Body.Close()

	r.logger.DebugContext(ctx, "Chat completion API responded", logger.IntField("status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("%w: received non-success response from chat completion API: %d - %s", ErrUpstreamTransport, resp.StatusCode, string(body))
		trace.RecordError(span, err)
		return nil, err
	}

	var chatResp dto.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		err = fmt.Errorf("%w: failed to decode response body: %w", ErrUpstreamParse, err)
		trace.RecordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("llm.total_tokens", chatResp.Usage.TotalTokens))
	return &chatResp, nil
}
