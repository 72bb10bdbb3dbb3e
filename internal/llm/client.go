package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ChatTurn es un par rol/contenido en el formato del proveedor.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client define la interfaz del adaptador de chat completions.
//
// Reply nunca falla: cualquier error del proveedor se convierte en un
// texto de disculpa apto para mostrar al usuario, asi el flujo de chat
// degrada a un mensaje conversacional en vez de un error HTTP.
// CompleteJSON si devuelve errores tipados, porque en la generacion de
// itinerarios no existe un sustituto razonable para un resultado malo.
type Client interface {
	Reply(ctx context.Context, history []ChatTurn) string
	CompleteJSON(ctx context.Context, prompt string) (string, error)
}

// Textos de respuesta cuando el proveedor no esta disponible. Los
// callers del flujo de chat solo distinguen causas por el contenido.
const (
	DemoModeReply = "I'm currently in demo mode. To enable full functionality, a valid OpenAI API key is required. Please contact the administrator."

	QuotaExhaustedReply = "My AI capabilities are temporarily unavailable due to API usage limits. Please try again later or contact the administrator about upgrading the API plan."
	RateLimitedReply    = "I'm currently handling too many requests. Please try again in a moment."
	AuthFailureReply    = "I'm having authentication issues. Please contact the administrator to verify the API key."
	GenericFailureReply = "Sorry, I'm having trouble connecting to my AI capabilities right now. Please try again in a moment."
	EmptyReply          = "I'm having trouble generating a response. Please try again."
)

// Errores tipados para el flujo de itinerarios.
var (
	ErrMissingCredential = errors.New("llm credential missing")
	ErrQuotaExhausted    = errors.New("llm quota exhausted")
	ErrRateLimited       = errors.New("llm rate limited")
	ErrAuthFailed        = errors.New("llm authentication failed")
)

// placeholderKey es el valor de relleno que se trata igual que una
// credencial ausente.
const placeholderKey = "sk-demo-key"

const travelSystemPrompt = `You are TravelPal, an AI travel planning assistant specialized in creating personalized itineraries.
Help users plan their trips by suggesting destinations, activities, accommodations, and transportation options.
Provide clear, concise, and practical travel advice based on the user's preferences, budget, and timeline.
For specific destinations, include local insights about cultural norms, best times to visit attractions, and hidden gems.
Respond in a friendly, enthusiastic tone and format your responses for easy reading.`

// APIError es un fallo HTTP del proveedor con su sub-tipo, cuando el
// cuerpo de error lo trae. Status 429 + type insufficient_quota se
// distingue de un rate limit generico.
type APIError struct {
	Status  int
	Type    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("llm http error: status=%d type=%s message=%s", e.Status, e.Type, e.Message)
}

// HTTPClient implementa Client usando una API OpenAI-compatible.
type HTTPClient struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPClient construye un cliente apuntando a la API de chat completions.
func NewHTTPClient(baseURL, apiKey, model string, logger *zap.Logger) *HTTPClient {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
		logger:  logger,
	}
}

func (c *HTTPClient) credentialMissing() bool {
	return c.apiKey == "" || c.apiKey == placeholderKey
}

// Reply genera la respuesta conversacional para el historial dado.
// Inyecta el system prompt de viajes si el historial no trae uno y
// contiene cualquier fallo del proveedor como texto de disculpa.
// Cada llamada se intenta exactamente una vez, sin retries.
func (c *HTTPClient) Reply(ctx context.Context, history []ChatTurn) string {
	if c.credentialMissing() {
		c.logger.Warn("missing or placeholder llm api key")
		return DemoModeReply
	}

	turns := ensureSystemPrompt(history)

	content, err := c.complete(ctx, chatRequest{
		Model:       c.model,
		Messages:    turns,
		Temperature: 0.7,
		MaxTokens:   800,
	})
	if err != nil {
		c.logger.Error("chat completion failed", zap.Error(err))
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			switch {
			case apiErr.Status == http.StatusTooManyRequests && apiErr.Type == "insufficient_quota":
				return QuotaExhaustedReply
			case apiErr.Status == http.StatusTooManyRequests:
				return RateLimitedReply
			case apiErr.Status == http.StatusUnauthorized:
				return AuthFailureReply
			}
		}
		return GenericFailureReply
	}
	if strings.TrimSpace(content) == "" {
		return EmptyReply
	}
	return content
}

// CompleteJSON manda un unico prompt en modo estructurado: el proveedor
// garantiza JSON sintacticamente valido en la respuesta.
func (c *HTTPClient) CompleteJSON(ctx context.Context, prompt string) (string, error) {
	if c.credentialMissing() {
		c.logger.Warn("missing or placeholder llm api key for structured completion")
		return "", ErrMissingCredential
	}

	content, err := c.complete(ctx, chatRequest{
		Model: c.model,
		Messages: []ChatTurn{
			{Role: "system", Content: travelSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature:    0.7,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			switch {
			case apiErr.Status == http.StatusTooManyRequests && apiErr.Type == "insufficient_quota":
				return "", fmt.Errorf("%w: %s", ErrQuotaExhausted, apiErr.Message)
			case apiErr.Status == http.StatusTooManyRequests:
				return "", fmt.Errorf("%w: %s", ErrRateLimited, apiErr.Message)
			case apiErr.Status == http.StatusUnauthorized:
				return "", fmt.Errorf("%w: %s", ErrAuthFailed, apiErr.Message)
			}
		}
		return "", err
	}
	return content, nil
}

func (c *HTTPClient) complete(ctx context.Context, reqBody chatRequest) (string, error) {
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var cr chatResponse
	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		if jsonErr := json.Unmarshal(respBody, &cr); jsonErr == nil && cr.Error != nil {
			apiErr.Type = cr.Error.Type
			apiErr.Message = cr.Error.Message
		}
		c.logger.Warn("llm error response",
			zap.Int("status", resp.StatusCode),
			zap.String("type", apiErr.Type),
		)
		return "", apiErr
	}

	if err := json.Unmarshal(respBody, &cr); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if cr.Error != nil {
		return "", fmt.Errorf("llm api error: %s", cr.Error.Message)
	}

	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("llm empty response")
	}

	return cr.Choices[0].Message.Content, nil
}

// ensureSystemPrompt antepone el system prompt de viajes si el historial
// no trae ninguno.
func ensureSystemPrompt(history []ChatTurn) []ChatTurn {
	for _, t := range history {
		if t.Role == "system" {
			return history
		}
	}
	turns := make([]ChatTurn, 0, len(history)+1)
	turns = append(turns, ChatTurn{Role: "system", Content: travelSystemPrompt})
	return append(turns, history...)
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatTurn      `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message ChatTurn `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}
