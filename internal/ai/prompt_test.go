package ai

import (
	"reflect"
	"strings"
	"testing"
)

func TestCleanJSONString(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced json", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced bare", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading whitespace", "  \n```json\n{\"a\":1}\n```  ", `{"a":1}`},
		{"no trailing fence", "```json\n{\"a\":1}", `{"a":1}`},
	}
	for _, tc := range cases {
		if got := cleanJSONString(tc.in); got != tc.want {
			t.Errorf("%s: cleanJSONString(%q) = %q, want %q", tc.name, tc.in, got, tc.want)
		}
	}
}

// Fenced and pre-cleaned responses must decode to identical values.
func TestDecodeJSONResponseFenceEquivalence(t *testing.T) {
	fenced := "```json\n{\"total_estimated_cost\": 42000, \"ai_recommendations\": \"pack light\"}\n```"
	clean := `{"total_estimated_cost": 42000, "ai_recommendations": "pack light"}`

	var a, b map[string]any
	if err := decodeJSONResponse(fenced, &a); err != nil {
		t.Fatalf("decode fenced: %v", err)
	}
	if err := decodeJSONResponse(clean, &b); err != nil {
		t.Fatalf("decode clean: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("fenced and clean decode differ: %v vs %v", a, b)
	}
}

func TestDecodeJSONResponseMalformed(t *testing.T) {
	var out map[string]any
	err := decodeJSONResponse("I am not JSON, sorry", &out)
	if err == nil {
		t.Fatal("expected error for non-JSON response")
	}
	malformed, ok := err.(*MalformedResponseError)
	if !ok {
		t.Fatalf("expected *MalformedResponseError, got %T", err)
	}
	if malformed.Raw != "I am not JSON, sorry" {
		t.Errorf("Raw = %q, want original cleaned text", malformed.Raw)
	}
}

func TestBuildJSONPromptEmbedsSchema(t *testing.T) {
	schema := Schema{
		"type": "object",
		"properties": map[string]any{
			"confirmationMessage": map[string]any{"type": "string"},
		},
	}
	prompt, err := buildJSONPrompt("change my hotel", schema, Options{})
	if err != nil {
		t.Fatalf("buildJSONPrompt: %v", err)
	}
	for _, want := range []string{
		internalOnlyInstruction,
		"Respond ONLY with valid JSON following this schema:",
		`"confirmationMessage"`,
		"Prompt:\nchange my hotel",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildTextPromptExternalContext(t *testing.T) {
	got := buildTextPrompt("hello", Options{UseExternalContext: true})
	if !strings.HasPrefix(got, externalContextInstruction) {
		t.Errorf("expected external-context instruction prefix, got %q", got)
	}
}

func TestGenerateWithoutKey(t *testing.T) {
	p := NewGeminiProvider("")
	if _, err := p.GenerateText(t.Context(), "hi", Options{}); err != ErrMissingAPIKey {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}
	var out map[string]any
	if err := p.GenerateJSON(t.Context(), "hi", Schema{"type": "object"}, &out, Options{}); err != ErrMissingAPIKey {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}
}
