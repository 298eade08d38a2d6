package claude

import (
	"context"
	"fmt"
	"strings"

	"github.com/liushuangls/go-anthropic/v2"

	"github.com/skanda-m/estatedesk/internal/describe"
	"github.com/skanda-m/estatedesk/internal/domain"
)

const maxTokens = 512

type Generator struct {
	client *anthropic.Client
	model  anthropic.Model
}

func NewGenerator(apiKey, model string) *Generator {
	return &Generator{
		client: anthropic.NewClient(apiKey),
		model:  anthropic.Model(model),
	}
}

func (g *Generator) Generate(ctx context.Context, p *domain.Property) (string, error) {
	resp, err := g.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     g.model,
		MaxTokens: maxTokens,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(describe.Prompt(p)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate description: %w", err)
	}

	text := strings.TrimSpace(resp.GetFirstContentText())
	if text == "" {
		return "", fmt.Errorf("model returned an empty description")
	}
	return text, nil
}
