package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dellis317/provocations/pkg/llm"
)

// GeminiProvider implements Provider against the Google Generative Language
// REST API. System messages are folded into the first user turn because the
// v1 API only accepts "user" and "model" roles.
type GeminiProvider struct {
	ApiKey    string
	ModelName string
	Client    *http.Client
}

var _ llm.Provider = &GeminiProvider{}

func NewGeminiProvider(apiKey, modelName string) *GeminiProvider {
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	return &GeminiProvider{
		ApiKey:    apiKey,
		ModelName: modelName,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type geminiChatParts struct {
	Text string `json:"text"`
}

type geminiChatContent struct {
	Parts []*geminiChatParts `json:"parts"`
	Role  string             `json:"role"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature,omitempty"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

type geminiChatRequest struct {
	Contents         []*geminiChatContent    `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiChatCandidate struct {
	Content *geminiChatContent `json:"content"`
}

type geminiChatResponse struct {
	Candidates []*geminiChatCandidate `json:"candidates"`
}

// --- Interface Implementation ---

func (g *GeminiProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{
		Temperature: 0.7, // Default
	}
	for _, opt := range opts {
		opt(options)
	}

	contents := make([]*geminiChatContent, 0, len(history))
	var pendingSystem string
	for _, msg := range history {
		role := msg.Role
		text := msg.Content

		switch role {
		case "system":
			// Buffer system text and prepend it to the next user turn
			if pendingSystem != "" {
				pendingSystem += "\n\n"
			}
			pendingSystem += text
			continue
		case "assistant":
			role = "model"
		}

		if role == "user" && pendingSystem != "" {
			text = pendingSystem + "\n\n" + text
			pendingSystem = ""
		}

		contents = append(contents, &geminiChatContent{
			Parts: []*geminiChatParts{{Text: text}},
			Role:  role,
		})
	}
	if pendingSystem != "" {
		// History was system-only; send it as a user turn
		contents = append(contents, &geminiChatContent{
			Parts: []*geminiChatParts{{Text: pendingSystem}},
			Role:  "user",
		})
	}

	genCfg := &geminiGenerationConfig{
		Temperature: options.Temperature,
	}
	if options.MaxTokens > 0 {
		genCfg.MaxOutputTokens = options.MaxTokens
	}
	if options.JSONMode {
		genCfg.ResponseMimeType = "application/json"
	}

	payload := geminiChatRequest{
		Contents:         contents,
		GenerationConfig: genCfg,
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	model := g.ModelName
	if options.Model != "" {
		model = options.Model
	}

	endpoint := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent",
		model,
	)

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(payloadJson))
	if err != nil {
		return "", err
	}

	req.Header.Set("x-goog-api-key", g.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := g.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var geminiRes geminiChatResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return "", err
	}

	if len(geminiRes.Candidates) == 0 || geminiRes.Candidates[0].Content == nil ||
		len(geminiRes.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	return geminiRes.Candidates[0].Content.Parts[0].Text, nil
}

func (g *GeminiProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return g.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}
