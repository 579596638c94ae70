package provider

import (
	"context"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// openAICompatible describes a backend that speaks the OpenAI chat
// completions protocol, possibly behind another base URL.
type openAICompatible struct {
	name    string
	baseURL string
	model   string

	// canListModels is false for backends without a models endpoint; their
	// credentials are only checked by the first real call.
	canListModels bool
}

type chatCompletionClient struct {
	name   string
	model  string
	client openai.Client
}

func (b openAICompatible) construct(verify bool, timeout time.Duration) ConstructFunc {
	return func(ctx context.Context, credential string) (Client, error) {
		opts := []option.RequestOption{
			option.WithAPIKey(credential),
			option.WithMaxRetries(0),
		}
		if timeout > 0 {
			opts = append(opts, option.WithRequestTimeout(timeout))
		}
		if b.baseURL != "" {
			opts = append(opts, option.WithBaseURL(b.baseURL))
		}

		client := openai.NewClient(opts...)

		if verify && b.canListModels {
			if _, err := client.Models.List(ctx); err != nil {
				return nil, &ConstructionError{Provider: b.name, Err: err}
			}
		}

		return &chatCompletionClient{name: b.name, model: b.model, client: client}, nil
	}
}

func (c *chatCompletionClient) Provider() string {
	return c.name
}

func (c *chatCompletionClient) Complete(ctx context.Context, text string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(text),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}
