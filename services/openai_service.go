// services/openai_service.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TextGenerator is the external text-generation collaborator. The
// generation engine treats every failure from it as recoverable.
type TextGenerator interface {
	Generate(system, prompt string, maxTokens int) (string, error)
}

// OpenAIService calls the OpenAI chat completions API.
type OpenAIService struct {
	client *http.Client
	apiKey string
	model  string
}

func NewOpenAIService(apiKey, model string) *OpenAIService {
	return &OpenAIService{
		client: &http.Client{Timeout: 30 * time.Second},
		apiKey: apiKey,
		model:  model,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *OpenAIService) Generate(system, prompt string, maxTokens int) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not set")
	}

	body := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   maxTokens,
	}
	b, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.openai.com/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read openai response error: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var out chatResponse
		if json.Unmarshal(respBytes, &out) == nil && out.Error != nil && out.Error.Message != "" {
			return "", fmt.Errorf("openai api error (%d): %s", resp.StatusCode, out.Error.Message)
		}
		return "", fmt.Errorf("openai api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var out chatResponse
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return "", fmt.Errorf("decode openai response error: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("empty completion from openai")
	}
	return out.Choices[0].Message.Content, nil
}
