package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const openAIEndpoint = "https://api.openai.com/v1/chat/completions"

// Teto fixo por chamada; exatamente uma tentativa por requisição.
const requestTimeout = 30 * time.Second

type openAIClient struct {
	apiKey      string
	model       string
	temperature float64
	// baseURL substitui o endpoint padrão nos testes
	baseURL    string
	httpClient *http.Client
}

type OpenAIRequest struct {
	Model          string          `json:"model"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat ResponseFormat  `json:"response_format"`
	Messages       []OpenAIMessage `json:"messages"`
}

type ResponseFormat struct {
	Type string `json:"type"`
}

type OpenAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type OpenAIResponse struct {
	Choices []Choice  `json:"choices"`
	Error   *APIError `json:"error,omitempty"`
}

type Choice struct {
	Message OpenAIMessage `json:"message"`
}

type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

// NewOpenAIClient cria o cliente de chat-completions. A chave pode ser
// vazia; nesse caso toda chamada devolve ErrNoAPIKey sem tocar a rede.
func NewOpenAIClient(apiKey, model string, temperature float64) OpenAIClient {
	if apiKey == "" {
		log.Printf("⚠️ OPENAI_API_KEY ausente; geração remota desabilitada")
	}

	return &openAIClient{
		apiKey:      apiKey,
		model:       model,
		temperature: temperature,
		httpClient:  &http.Client{Timeout: requestTimeout},
	}
}

func (c *openAIClient) GenerateJSON(ctx context.Context, system, user string) (string, error) {
	return c.generate(ctx, "json_object", system, user)
}

func (c *openAIClient) GenerateText(ctx context.Context, system, user string) (string, error) {
	return c.generate(ctx, "text", system, user)
}

func (c *openAIClient) generate(ctx context.Context, format, system, user string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	request := OpenAIRequest{
		Model:          c.model,
		Temperature:    c.temperature,
		ResponseFormat: ResponseFormat{Type: format},
		Messages: []OpenAIMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint(), bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResponse OpenAIResponse
		if err := json.Unmarshal(body, &errorResponse); err == nil && errorResponse.Error != nil {
			return "", fmt.Errorf("OpenAI API error (%s): %s", errorResponse.Error.Code, errorResponse.Error.Message)
		}
		return "", fmt.Errorf("OpenAI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var response OpenAIResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if response.Error != nil {
		return "", fmt.Errorf("OpenAI API error: %s", response.Error.Message)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from OpenAI API")
	}

	return response.Choices[0].Message.Content, nil
}

func (c *openAIClient) endpoint() string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return openAIEndpoint
}
