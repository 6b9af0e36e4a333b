package repository

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"golang-stock-summary/internal/summary/config"
	"golang-stock-summary/internal/summary/dto"
	"golang-stock-summary/pkg/logger"
	"golang-stock-summary/pkg/trace"

	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/genai"
)

type geminiChatRepository struct {
	genAiClient *genai.Client
	cfg         *config.Config
	logger      *logger.Logger
}

// NewGeminiChatRepository creates a ChatRepository backed by the Google GenAI SDK.
// Without a token no client is created and the repository reports itself unconfigured.
func NewGeminiChatRepository(ctx context.Context, cfg *config.Config, log *logger.Logger) (ChatRepository, error) {
	repo := &geminiChatRepository{cfg: cfg, logger: log}
	if cfg.LLM.Token == "" {
		return repo, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.LLM.Token,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.LLM.Timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	repo.genAiClient = client
	return repo, nil
}

func (r *geminiChatRepository) Configured() bool {
	return r.genAiClient != nil
}

// Complete maps the chat request onto GenerateContent: system messages become the
// system instruction, the rest become user/model contents.
func (r *geminiChatRepository) Complete(ctx context.Context, payload dto.ChatRequest) (*dto.ChatResponse, error) {
	if !r.Configured() {
		return nil, ErrChatNotConfigured
	}

	ctx, span := trace.StartSpan(ctx, "llm.chat-completion",
		attribute.String("llm.provider", "gemini"),
		attribute.String("llm.model", payload.Model),
	)
	defer span.End()

	var (
		system   []string
		contents []*genai.Content
	)
	for _, m := range payload.Messages {
		switch m.Role {
		case dto.RoleSystem:
			system = append(system, m.Content)
		case dto.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}

	var genCfg *genai.GenerateContentConfig
	if len(system) > 0 {
		genCfg = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(strings.Join(system, "\n"), genai.RoleUser),
		}
	}

	r.logger.DebugContext(ctx, "Sending request to Gemini API", logger.StringField("model", payload.Model))

	resp, err := r.genAiClient.Models.GenerateContent(ctx, payload.Model, contents, genCfg)
	if err != nil {
		err = fmt.Errorf("%w: failed to send request to Gemini API: %w", ErrUpstreamTransport, err)
		trace.RecordError(span, err)
		return nil, err
	}

	return geminiToChatResponse(payload.Model, resp), nil
}

func geminiToChatResponse(model string, resp *genai.GenerateContentResponse) *dto.ChatResponse {
	out := &dto.ChatResponse{Model: model}
	if resp == nil {
		return out
	}

	for i, candidate := range resp.Candidates {
		choice := dto.Choice{
			Index:        i,
			Message:      dto.ResponseMessage{Role: dto.RoleAssistant},
			FinishReason: strings.ToLower(string(candidate.FinishReason)),
		}
		if candidate.Content != nil {
			var sb strings.Builder
			for _, part := range candidate.Content.Parts {
				if part != nil && !part.Thought {
					sb.WriteString(part.Text)
				}
			}
			if sb.Len() > 0 {
				text := sb.String()
				choice.Message.Content = &text
			}
		}
		out.Choices = append(out.Choices, choice)
	}

	if resp.UsageMetadata != nil {
		out.Usage = dto.Usage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return out
}
