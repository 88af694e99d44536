package ai

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/zhalobnik/backend/internal/config"
)

// ErrUnavailable is returned when model credentials are missing and the
// caller should use its own fallback.
var ErrUnavailable = errors.New("ai: model unavailable")

// Sampling temperatures per agent. The question and document agents want
// variety, the recipient agent should stay deterministic.
const (
	quizTemperature      = 0.7
	documentTemperature  = 0.7
	recipientTemperature = 0.3
)

// Service bundles the three model-backed agents of the wizard: question
// generation, document drafting and recipient recommendation. Each agent
// has its own compiled chain so models and temperatures can differ.
type Service struct {
	quiz      compose.Runnable[map[string]any, *schema.Message]
	document  compose.Runnable[map[string]any, *schema.Message]
	recipient compose.Runnable[map[string]any, *schema.Message]
}

// NewService compiles the agent chains. When credentials are absent the
// service is still constructed: every call then returns ErrUnavailable and
// callers fall back to their static behavior.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	if !cfg.Enabled() {
		log.Printf("[ai] ark credentials missing, agents run in fallback mode")
		return &Service{}, nil
	}

	quiz, err := newChain(ctx, cfg, cfg.QuizModel, quizTemperature, quizSystemPrompt, quizUserPrompt)
	if err != nil {
		return nil, fmt.Errorf("compile quiz chain: %w", err)
	}

	document, err := newChain(ctx, cfg, cfg.DocumentModel, documentTemperature, documentSystemPrompt, documentUserPrompt)
	if err != nil {
		return nil, fmt.Errorf("compile document chain: %w", err)
	}

	recipient, err := newChain(ctx, cfg, cfg.RecipientModel, recipientTemperature, recipientSystemPrompt, recipientUserPrompt)
	if err != nil {
		return nil, fmt.Errorf("compile recipient chain: %w", err)
	}

	return &Service{quiz: quiz, document: document, recipient: recipient}, nil
}

func newChain(ctx context.Context, cfg config.AIConfig, modelName string, temperature float32, systemPrompt, userPrompt string) (compose.Runnable[map[string]any, *schema.Message], error) {
	chatModel, err := cfg.NewChatModel(ctx, modelName, temperature)
	if err != nil {
		return nil, err
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(userPrompt),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	return chain.Compile(ctx)
}

func invoke(ctx context.Context, runnable compose.Runnable[map[string]any, *schema.Message], input map[string]any) (string, error) {
	if runnable == nil {
		return "", ErrUnavailable
	}

	msg, err := runnable.Invoke(ctx, input)
	if err != nil {
		return "", err
	}
	if msg == nil || msg.Content == "" {
		return "", fmt.Errorf("empty model response")
	}
	return msg.Content, nil
}
