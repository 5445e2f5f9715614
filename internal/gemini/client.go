package gemini

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

var _ Generator = &GeminiAPI{}

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"

	// Text questions go to the cheaper model; image analysis needs the
	// vision-capable one.
	textModel   = "gemini-1.5-flash"
	visionModel = "gemini-2.5-flash"

	defaultImagePrompt = "Describe what you see in this image in 2-3 sentences."
)

// GenerateRequest represents the request payload for the generateContent API
type GenerateRequest struct {
	Contents []Content `json:"contents"`
}

// Content holds the ordered parts of one prompt
type Content struct {
	Parts []Part `json:"parts"`
}

// Part is either prompt text or inline image data
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inline_data,omitempty"`
}

// InlineData carries base64 image bytes for multimodal requests
type InlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// GenerateResponse represents the response from the generateContent API
type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate is one generated answer
type Candidate struct {
	Content struct {
		Parts []Part `json:"parts"`
	} `json:"content"`
}

type GeminiAPI struct {
	apiKey  string
	baseURL string
	client  *resty.Client
}

func NewGeminiAPI(apiKey string) *GeminiAPI {
	return &GeminiAPI{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  resty.New().SetTimeout(30 * time.Second),
	}
}

// AnswerText sends a plain text question to Gemini and returns the first
// candidate's answer
func (g *GeminiAPI) AnswerText(requestID string, question string) (string, error) {
	request := GenerateRequest{
		Contents: []Content{
			{Parts: []Part{{Text: question}}},
		},
	}
	return g.generate(requestID, textModel, request)
}

// DescribeImage sends image bytes plus an instruction to Gemini's vision
// model. The caption, when present, becomes the instruction; otherwise a
// fixed describe prompt is used.
func (g *GeminiAPI) DescribeImage(requestID string, image []byte, caption string) (string, error) {
	instruction := caption
	if instruction == "" {
		instruction = defaultImagePrompt
	}

	request := GenerateRequest{
		Contents: []Content{
			{Parts: []Part{
				{Text: instruction},
				{InlineData: &InlineData{
					MimeType: "image/jpeg",
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
			}},
		},
	}
	return g.generate(requestID, visionModel, request)
}

func (g *GeminiAPI) generate(requestID, model string, request GenerateRequest) (string, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, model, g.apiKey)

	resp, err := g.client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-ID", requestID).
		SetBody(request).
		Post(url)

	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		var generateResponse GenerateResponse
		if err := json.Unmarshal(resp.Body(), &generateResponse); err != nil {
			return "", fmt.Errorf("failed to unmarshal response: %w", err)
		}

		if len(generateResponse.Candidates) == 0 || len(generateResponse.Candidates[0].Content.Parts) == 0 {
			return "", fmt.Errorf("response contains no usable candidate")
		}

		return generateResponse.Candidates[0].Content.Parts[0].Text, nil

	case http.StatusTooManyRequests:
		return "", ErrRateLimited

	default:
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}
}
