package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mwhite7112/woodpantry-rates/internal/shipping"
)

const (
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	DefaultExtractModel  = "gemini-2.5-flash"
)

// GeminiClient turns free-text addresses into structured records using the
// Gemini generateContent endpoint with a constrained response schema.
type GeminiClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	validate   *validator.Validate
}

func NewGeminiClient(baseURL, apiKey, model string, httpClient *http.Client) *GeminiClient {
	if baseURL == "" {
		baseURL = DefaultGeminiBaseURL
	}
	if model == "" {
		model = DefaultExtractModel
	}
	return &GeminiClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: httpClient,
		validate:   validator.New(),
	}
}

const extractPrompt = `Parse the following address text into a structured JSON object.
If a field is missing, make a best guess or leave it as an empty string.
Input text: %q`

// addressSchema restricts model output to the Address shape.
var addressSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"name":    map[string]string{"type": "STRING"},
		"street1": map[string]string{"type": "STRING"},
		"city":    map[string]string{"type": "STRING"},
		"state":   map[string]string{"type": "STRING"},
		"zip":     map[string]string{"type": "STRING"},
		"country": map[string]string{"type": "STRING"},
		"email":   map[string]string{"type": "STRING"},
		"phone":   map[string]string{"type": "STRING"},
	},
	"required": []string{"street1", "city", "country"},
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// extractedAddress mirrors Address with pointer fields so that absent keys
// can be told apart from empty strings.
type extractedAddress struct {
	Name    *string `json:"name"`
	Street1 *string `json:"street1" validate:"required"`
	City    *string `json:"city" validate:"required"`
	State   *string `json:"state"`
	Zip     *string `json:"zip"`
	Country *string `json:"country" validate:"required"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
}

func (e extractedAddress) address() shipping.Address {
	return shipping.Address{
		Name:    deref(e.Name),
		Street1: deref(e.Street1),
		City:    deref(e.City),
		State:   deref(e.State),
		Zip:     deref(e.Zip),
		Country: deref(e.Country),
		Email:   deref(e.Email),
		Phone:   deref(e.Phone),
	}
}

// Extract asks the model to structure rawText as an Address. It makes a single
// attempt. Without an API key it fails with a ConfigError before any request;
// every other failure is reported as an ExtractionError.
func (c *GeminiClient) Extract(ctx context.Context, rawText string) (shipping.Address, error) {
	if c.apiKey == "" {
		return shipping.Address{}, &shipping.ConfigError{Err: shipping.ErrMissingCredential}
	}

	addr, err := c.extract(ctx, rawText)
	if err != nil {
		slog.Error("address extraction failed", "model", c.model, "error", err)
		return shipping.Address{}, &shipping.ExtractionError{Err: err}
	}
	return addr, nil
}

func (c *GeminiClient) extract(ctx context.Context, rawText string) (shipping.Address, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: fmt.Sprintf(extractPrompt, rawText)}},
		}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   addressSchema,
		},
	})
	if err != nil {
		return shipping.Address{}, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return shipping.Address{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return shipping.Address{}, &shipping.TransportError{Service: "gemini", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return shipping.Address{}, &shipping.TransportError{
			Service: "gemini",
			Err:     fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))),
		}
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return shipping.Address{}, &shipping.MalformedResponseError{Service: "gemini", Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return shipping.Address{}, &shipping.MalformedResponseError{Service: "gemini", Err: errors.New("no candidates returned")}
	}

	text := genResp.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return shipping.Address{}, &shipping.MalformedResponseError{Service: "gemini", Err: errors.New("empty response text")}
	}

	var extracted extractedAddress
	if err := json.Unmarshal([]byte(text), &extracted); err != nil {
		return shipping.Address{}, &shipping.MalformedResponseError{Service: "gemini", Err: fmt.Errorf("parse address json: %w", err)}
	}
	if err := c.validate.Struct(extracted); err != nil {
		return shipping.Address{}, &shipping.MalformedResponseError{Service: "gemini", Err: fmt.Errorf("missing required fields: %w", err)}
	}
	return extracted.address(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
