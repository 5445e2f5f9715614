package whatsapp

import (
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "https://graph.facebook.com"
	graphVersion   = "v18.0"
)

type WhatsAppAPI struct {
	token         string
	phoneNumberID string
	baseURL       string
	client        *resty.Client
}

func NewWhatsAppAPI(token, phoneNumberID string) *WhatsAppAPI {
	return &WhatsAppAPI{
		token:         token,
		phoneNumberID: phoneNumberID,
		baseURL:       defaultBaseURL,
		client:        resty.New().SetTimeout(30 * time.Second),
	}
}

// SendMessage sends a text message to a WhatsApp user
func (w *WhatsAppAPI) SendMessage(requestID, to, body string) error {
	if w.token == "" {
		return fmt.Errorf("WHATSAPP_TOKEN is not set")
	}

	reply := SendMessageRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
		Text:             SendText{Body: body},
	}

	url := fmt.Sprintf("%s/%s/%s/messages", w.baseURL, graphVersion, w.phoneNumberID)
	resp, err := w.client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+w.token).
		SetHeader("X-Request-ID", requestID).
		SetBody(reply).
		Post(url)

	if err != nil {
		return fmt.Errorf("http call to whatsapp failed: %w", err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return fmt.Errorf("whatsapp returned non-2xx status: %d - %s", resp.StatusCode(), resp.Body())
	}

	log.Printf("✅ message sent to %s", to)
	return nil
}

// DownloadMedia fetches the binary content of a media attachment by its
// webhook media ID. The Graph API hands out a short-lived URL first; both
// calls carry the bearer token.
func (w *WhatsAppAPI) DownloadMedia(requestID, mediaID string) ([]byte, error) {
	if w.token == "" {
		return nil, fmt.Errorf("WHATSAPP_TOKEN is not set")
	}

	url := fmt.Sprintf("%s/%s/%s", w.baseURL, graphVersion, mediaID)

	var mediaResponse MediaURLResponse
	resp, err := w.client.R().
		SetHeader("Authorization", "Bearer "+w.token).
		SetHeader("X-Request-ID", requestID).
		SetResult(&mediaResponse).
		Get(url)

	if err != nil {
		return nil, fmt.Errorf("failed to get media info: %w", err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("whatsapp media lookup returned non-2xx status: %d", resp.StatusCode())
	}

	if mediaResponse.URL == "" {
		return nil, fmt.Errorf("whatsapp returned no download URL for media_id: %s", mediaID)
	}

	download, err := w.client.R().
		SetHeader("Authorization", "Bearer "+w.token).
		SetHeader("X-Request-ID", requestID).
		Get(mediaResponse.URL)

	if err != nil {
		return nil, fmt.Errorf("failed to download media: %w", err)
	}

	if download.StatusCode() < 200 || download.StatusCode() >= 300 {
		return nil, fmt.Errorf("media download returned non-2xx status: %d", download.StatusCode())
	}

	return download.Body(), nil
}
