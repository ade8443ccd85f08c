package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const assistantSystemPrompt = "You are Plauntie, a friendly houseplant care assistant. " +
	"Answer questions about plant care, watering, light, soil and pests. " +
	"Keep answers short and practical."

const diagnosisPrompt = "Look at this photo of a houseplant and assess its health. " +
	"Describe any visible problems (discoloration, pests, drooping, spots) and " +
	"give concrete care recommendations."

// AssistantService talks to an OpenAI-compatible chat completions API. The
// response is treated as opaque text; no structure is assumed beyond the
// completions envelope.
type AssistantService struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewAssistantService() *AssistantService {
	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &AssistantService{
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// Chat answers a free-text plant question.
func (s *AssistantService) Chat(message string) (string, error) {
	return s.complete([]map[string]any{
		{"role": "system", "content": assistantSystemPrompt},
		{"role": "user", "content": message},
	})
}

// Diagnose sends a JPEG plant photo plus optional user notes and returns the
// model's health assessment as text.
func (s *AssistantService) Diagnose(imageData []byte, notes string) (string, error) {
	prompt := diagnosisPrompt
	if notes != "" {
		prompt += "\n\nOwner's notes: " + notes
	}

	dataURI := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(imageData)
	return s.complete([]map[string]any{
		{"role": "system", "content": assistantSystemPrompt},
		{"role": "user", "content": []map[string]any{
			{"type": "text", "text": prompt},
			{"type": "image_url", "image_url": map[string]string{"url": dataURI}},
		}},
	})
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (s *AssistantService) complete(messages []map[string]any) (string, error) {
	payload := map[string]any{
		"model":    s.model,
		"messages": messages,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion payload: %w", err)
	}

	req, err := http.NewRequest("POST", s.baseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call assistant API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read assistant response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant API error %d: %s", resp.StatusCode, string(body))
	}

	var cr chatCompletionResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("failed to parse assistant JSON: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("assistant returned no choices")
	}
	return cr.Choices[0].Message.Content, nil
}
