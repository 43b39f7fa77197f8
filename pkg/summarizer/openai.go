// Package summarizer provides the optional generative phrasing backend for
// insight descriptions. Callers must treat it as best-effort and keep a
// deterministic fallback.
package summarizer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
)

const (
	defaultModel    = "gpt-4o-mini"
	maxOutputTokens = 120

	instructions = "You rephrase short wellbeing observations from a journaling app. " +
		"Respond with one or two warm, plain sentences. Do not give medical advice, " +
		"do not add caveats, and do not mention that you are rephrasing."
)

// OpenAISummarizer phrases insight descriptions through the OpenAI
// Responses API.
type OpenAISummarizer struct {
	client openai.Client
	model  string
}

// NewOpenAISummarizer creates a summarizer using the given API key and
// model. An empty model selects a small default.
func NewOpenAISummarizer(apiKey, model string) *OpenAISummarizer {
	if model == "" {
		model = defaultModel
	}
	return &OpenAISummarizer{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

// Summarize sends the prompt and returns the model's text. The context
// deadline bounds the whole call including retries.
func (s *OpenAISummarizer) Summarize(ctx context.Context, prompt string) (string, error) {
	params := responses.ResponseNewParams{
		Model:           s.model,
		MaxOutputTokens: openai.Int(maxOutputTokens),
		Instructions:    openai.String(instructions),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(prompt, responses.EasyInputMessageRoleUser),
			},
		},
	}

	resp, err := callWithRetry(ctx, &s.client, params)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.OutputText())
	if text == "" {
		return "", errors.New("empty model output")
	}
	return text, nil
}

// callWithRetry retries transient failures with short backoffs. Waits are
// kept small because the caller holds a tight deadline.
func callWithRetry(ctx context.Context, client *openai.Client, params responses.ResponseNewParams) (*responses.Response, error) {
	const maxRetries = 3
	waitTimes := []time.Duration{250 * time.Millisecond, 750 * time.Millisecond}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		resp, err := client.Responses.New(ctx, params)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !isRetryableError(err) || attempt == maxRetries-1 {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(waitTimes[attempt]):
		}
	}
	return nil, lastErr
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "too many requests") ||
		strings.Contains(errStr, "500") ||
		strings.Contains(errStr, "502") ||
		strings.Contains(errStr, "503") ||
		strings.Contains(errStr, "server_error")
}
