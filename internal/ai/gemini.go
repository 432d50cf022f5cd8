package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.5-flash"

// GeminiProvider implements Provider using Google's Gemini models.
type GeminiProvider struct {
	apiKey string
}

// NewGeminiProvider returns a provider bound to the given API key. The key is
// validated at call time so that a misconfigured deployment fails with a
// configuration error instead of an opaque network failure.
func NewGeminiProvider(apiKey string) *GeminiProvider {
	return &GeminiProvider{apiKey: apiKey}
}

// GenerateText sends the prompt and returns the raw text response.
func (p *GeminiProvider) GenerateText(ctx context.Context, prompt string, opts Options) (string, error) {
	return p.generate(ctx, buildTextPrompt(prompt, opts), false)
}

// GenerateJSON sends a schema-constrained prompt and parses the response.
func (p *GeminiProvider) GenerateJSON(ctx context.Context, prompt string, schema Schema, out any, opts Options) error {
	fullPrompt, err := buildJSONPrompt(prompt, schema, opts)
	if err != nil {
		return err
	}
	raw, err := p.generate(ctx, fullPrompt, true)
	if err != nil {
		return err
	}
	if err := decodeJSONResponse(raw, out); err != nil {
		var malformed *MalformedResponseError
		if errors.As(err, &malformed) {
			log.Printf("ai: failed to parse JSON response from Gemini: %s", malformed.Raw)
		}
		return err
	}
	return nil
}

// generate performs a single content-generation call. No retries: failures
// propagate to the caller.
func (p *GeminiProvider) generate(ctx context.Context, fullPrompt string, jsonMode bool) (string, error) {
	if strings.TrimSpace(p.apiKey) == "" {
		return "", ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return "", fmt.Errorf("ai: create Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(geminiModel)
	if jsonMode {
		// Force JSON output; fence stripping below still applies, safety first.
		model.ResponseMIMEType = "application/json"
	}

	resp, err := model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			return "", &UpstreamError{StatusCode: apiErr.Code, Body: apiErr.Body}
		}
		return "", fmt.Errorf("ai: generate content: %w", err)
	}

	return extractText(resp)
}

// extractText pulls the text out of candidates[0].content.parts. A response
// without that path is itself a malformed response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", &MalformedResponseError{Err: errors.New("no response candidates from Gemini")}
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", &MalformedResponseError{Err: errors.New("empty text parts in Gemini response")}
	}
	return sb.String(), nil
}
