package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"backend/models"
)

const defaultGenerationURL = "https://api.openai.com/v1/chat/completions"

const systemPrompt = `Eres un asistente que redacta cotizaciones de proyectos en español.
A partir de la descripción del proyecto responde ÚNICAMENTE con un objeto JSON con esta forma exacta:
{"titulo": "...", "subtitulo": "...", "descripcion": "...", "justificacion": "...", "alcances": ["...", "..."]}
Sin texto adicional, sin markdown.`

// GenerationService drafts quotation content by forwarding a free-text
// project description to an OpenAI-compatible chat completions API.
type GenerationService struct {
	apiURL     string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGenerationService builds the service from the environment. A missing
// GENERATION_API_KEY leaves the service unconfigured, which the handler
// reports as 503 rather than failing startup: the rest of the API works
// without the generator.
func NewGenerationService() *GenerationService {
	apiURL := os.Getenv("GENERATION_API_URL")
	if apiURL == "" {
		apiURL = defaultGenerationURL
	}
	model := os.Getenv("GENERATION_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &GenerationService{
		apiURL:     apiURL,
		apiKey:     os.Getenv("GENERATION_API_KEY"),
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Configured reports whether the generative API credentials are present.
func (s *GenerationService) Configured() bool {
	return s.apiKey != ""
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GenerateProject forwards the description and relays the structured draft.
func (s *GenerationService) GenerateProject(ctx context.Context, descripcion string) (*models.GeneratedProject, error) {
	if !s.Configured() {
		return nil, fmt.Errorf("generation API key not configured")
	}

	payload := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: descripcion},
		},
		Temperature: 0.7,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshaling generation request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error creating generation request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling generation API: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading generation response: %v", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("error parsing generation response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return nil, fmt.Errorf("generation API returned %d: %s", resp.StatusCode, parsed.Error.Message)
		}
		return nil, fmt.Errorf("generation API returned %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("generation API returned no choices")
	}

	content := stripCodeFences(parsed.Choices[0].Message.Content)

	var project models.GeneratedProject
	if err := json.Unmarshal([]byte(content), &project); err != nil {
		return nil, fmt.Errorf("generation API returned malformed JSON: %v", err)
	}
	return &project, nil
}

// stripCodeFences removes a surrounding ```json ... ``` block; some models
// wrap the response in one no matter what the prompt says.
func stripCodeFences(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
