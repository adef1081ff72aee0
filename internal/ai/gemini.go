package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"lodhi/internal/types"
)

// GeminiSuggester produces complaint-fix suggestions using Google's Gemini models.
type GeminiSuggester struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiSuggester initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiSuggester(ctx context.Context, apiKey string) (*GeminiSuggester, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Use Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"

	// Complaint triage should stay factual; keep the temperature low.
	model.SetTemperature(0.2)

	return &GeminiSuggester{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiSuggester) Close() {
	p.client.Close()
}

// SuggestFix asks the model for a resolution suggestion and returns its
// user-facing text.
func (p *GeminiSuggester) SuggestFix(ctx context.Context, complaint, jobDescription string, category types.ServiceCategory) (string, error) {
	prompt := buildFixPrompt(complaint, jobDescription, category)

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	// Clean up potential markdown formatting (though json mode should handle this, safety first).
	cleanJSON := cleanJSONString(responseText.String())

	var result FixResult
	if err := json.Unmarshal([]byte(cleanJSON), &result); err != nil {
		return "", fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}
	if result.Suggestion == "" {
		return "", fmt.Errorf("empty suggestion from model")
	}
	return result.Suggestion, nil
}

func buildFixPrompt(complaint, jobDescription string, category types.ServiceCategory) string {
	return fmt.Sprintf(`Role: You are the complaint-triage assistant for a home-services marketplace.
A customer filed a complaint against a completed or in-progress job.

Job category: %s
Job description: %s
Complaint: %s

Suggest a concrete resolution the handling admin can act on. Keep the
suggestion under three sentences and do not promise refunds.

OUTPUT: STRICT JSON only:
{
  "suggestion": "string (admin facing resolution text)",
  "severity": "low" | "medium" | "high",
  "needs_revisit": boolean
}
`, category, jobDescription, complaint)
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
