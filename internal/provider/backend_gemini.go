package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

type generativeClient struct {
	name    string
	model   string
	timeout time.Duration
	client  *genai.Client
}

func geminiConstruct(name, model string, verify bool, timeout time.Duration) ConstructFunc {
	return func(ctx context.Context, credential string) (Client, error) {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		client, err := genai.NewClient(ctx, option.WithAPIKey(credential))
		if err != nil {
			return nil, &ConstructionError{Provider: name, Err: err}
		}

		if verify {
			if _, err = client.ListModels(ctx).Next(); err != nil && !errors.Is(err, iterator.Done) {
				_ = client.Close()
				return nil, &ConstructionError{Provider: name, Err: err}
			}
		}

		return &generativeClient{name: name, model: model, timeout: timeout, client: client}, nil
	}
}

func (c *generativeClient) Provider() string {
	return c.name
}

func (c *generativeClient) Complete(ctx context.Context, text string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.client.GenerativeModel(c.model).GenerateContent(ctx, genai.Text(text))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
			return "", fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason.String())
		}
		return "", ErrEmptyCompletion
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyCompletion
	}

	return sb.String(), nil
}

// Close releases the underlying gRPC connection.
func (c *generativeClient) Close() error {
	return c.client.Close()
}
