package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"SantaChat/pkg/config"
)

var ErrOpenAIDisabled = errors.New("openai is disabled via config")

const santaSystemPrompt = "You are Santa Claus speaking with a child. Respond in a warm, jolly, and encouraging manner. " +
	"Keep responses concise (max 2-3 sentences) and age-appropriate. " +
	"Include occasional 'ho ho ho' and references to the North Pole, elves, or reindeer. " +
	"Never make promises about specific gifts. Instead, acknowledge the child's wishes positively. " +
	"If the child says anything inappropriate or off-topic, gently steer the talk back to the holidays. " +
	"Answer with a JSON object holding \"message\" (your reply), \"tone\" (one of jolly, caring, encouraging, playful, wise, merry) " +
	"and \"suggestions\" (up to 3 short follow-up questions the child could ask)."

// SantaAI generates persona replies through the hosted chat-completion API.
type SantaAI struct {
	client  *openai.Client
	model   string
	enabled bool
}

func NewSantaAI() *SantaAI {
	return &SantaAI{
		client:  openai.NewClient(config.OpenAIAPIKey),
		model:   config.OpenAIModel,
		enabled: config.IsOpenAIEnabled,
	}
}

type modelReply struct {
	Message     string   `json:"message"`
	Tone        string   `json:"tone"`
	Suggestions []string `json:"suggestions"`
}

func (s *SantaAI) Generate(ctx context.Context, req GenerateRequest) (Reply, error) {
	if !s.enabled {
		return Reply{}, ErrOpenAIDisabled
	}
	if strings.TrimSpace(config.OpenAIAPIKey) == "" {
		return Reply{}, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	if r, ok := redirectIfUnsafe(req.Message); ok {
		return r, nil
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: s.systemPrompt(req)},
	}
	for _, h := range req.History {
		role := openai.ChatMessageRoleUser
		if h.FromSanta {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: h.Text})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.Message})

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	request := openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: 0.7,
		MaxTokens:   300,
		Messages:    messages,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := s.client.CreateChatCompletion(ctx, request)
	if err != nil && isRetriable(err) {
		sleepWithContext(ctx, 2*time.Second)
		resp, err = s.client.CreateChatCompletion(ctx, request)
	}
	if err != nil {
		zap.L().Warn("chat completion failed", zap.String("model", s.model), zap.Error(err))
		return Reply{}, err
	}
	if len(resp.Choices) == 0 {
		return Reply{}, fmt.Errorf("no choices in completion response")
	}

	return parseModelReply(resp.Choices[0].Message.Content)
}

func (s *SantaAI) systemPrompt(req GenerateRequest) string {
	if len(req.WishlistItems) == 0 {
		return santaSystemPrompt
	}
	b := strings.Builder{}
	b.WriteString(santaSystemPrompt)
	b.WriteString("\n\nThe child's wishlist so far: ")
	b.WriteString(strings.Join(req.WishlistItems, ", "))
	b.WriteString(". You may mention that the elves noted it down, but never promise any item.")
	return b.String()
}

func parseModelReply(raw string) (Reply, error) {
	raw = strings.TrimSpace(raw)
	// some models wrap JSON in a fenced block even in JSON mode
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var parsed modelReply
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &parsed); err != nil {
		return Reply{}, fmt.Errorf("malformed completion payload: %w", err)
	}
	if strings.TrimSpace(parsed.Message) == "" {
		return Reply{}, fmt.Errorf("completion payload missing message")
	}
	return Reply{
		Message:     strings.TrimSpace(parsed.Message),
		Tone:        NormalizeTone(parsed.Tone),
		Suggestions: clampSuggestions(parsed.Suggestions),
	}, nil
}

func isRetriable(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == 429 || apiErr.HTTPStatusCode >= 500
	}
	e := strings.ToLower(err.Error())
	return strings.Contains(e, "status 429") || strings.Contains(e, "status 503") || strings.Contains(e, "unavailable")
}

func sleepWithContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
