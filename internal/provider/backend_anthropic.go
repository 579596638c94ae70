package provider

import (
	"context"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicMaxTokens = 4096

type messagesClient struct {
	name   string
	model  string
	client anthropic.Client
}

func anthropicConstruct(name, model string, verify bool, timeout time.Duration) ConstructFunc {
	return func(ctx context.Context, credential string) (Client, error) {
		opts := []option.RequestOption{
			option.WithAPIKey(credential),
			option.WithMaxRetries(0),
		}
		if timeout > 0 {
			opts = append(opts, option.WithRequestTimeout(timeout))
		}

		client := anthropic.NewClient(opts...)

		if verify {
			if _, err := client.Models.List(ctx, anthropic.ModelListParams{}); err != nil {
				return nil, &ConstructionError{Provider: name, Err: err}
			}
		}

		return &messagesClient{name: name, model: model, client: client}, nil
	}
}

func (c *messagesClient) Provider() string {
	return c.name
}

func (c *messagesClient) Complete(ctx context.Context, text string) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.AsText().Text)
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyCompletion
	}

	return sb.String(), nil
}
