package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	externalContextInstruction = "Use your knowledge and information from the internet to make suggestions current and practical."
	internalOnlyInstruction    = "Rely only on your internal knowledge."
)

// systemInstructions picks the framing line for the request.
func systemInstructions(opts Options) string {
	if opts.UseExternalContext {
		return externalContextInstruction
	}
	return internalOnlyInstruction
}

// buildTextPrompt frames a free-text request.
func buildTextPrompt(prompt string, opts Options) string {
	return fmt.Sprintf("%s\n\n%s", systemInstructions(opts), prompt)
}

// buildJSONPrompt frames a schema-constrained request. The schema is embedded
// verbatim (pretty-printed) so the model sees the exact contract.
func buildJSONPrompt(prompt string, schema Schema, opts Options) (string, error) {
	schemaJSON, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("ai: marshalling response schema: %w", err)
	}
	return fmt.Sprintf(
		"%s\n\nRespond ONLY with valid JSON following this schema:\n%s\n\nPrompt:\n%s",
		systemInstructions(opts), schemaJSON, prompt,
	), nil
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```JSON")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}

// decodeJSONResponse cleans fences from raw and unmarshals into out.
func decodeJSONResponse(raw string, out any) error {
	clean := cleanJSONString(raw)
	if err := json.Unmarshal([]byte(clean), out); err != nil {
		return &MalformedResponseError{Raw: clean, Err: err}
	}
	return nil
}
