package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/naseer2426/whatsapp-gemini-bot/internal/visionbot"
	"github.com/naseer2426/whatsapp-gemini-bot/internal/whatsapp"
)

// MessageSender delivers the reply back to the user.
type MessageSender interface {
	SendMessage(requestID, to, body string) error
}

type WhatsAppWebhook struct {
	VisionBot     *visionbot.Bot
	Sender        MessageSender
	VerifyToken   string
	PhoneNumberID string
}

// Verify handles Meta's webhook verification handshake. Meta calls this once
// when the webhook URL is registered.
func (h *WhatsAppWebhook) Verify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == h.VerifyToken {
		log.Println("✅ webhook verified")
		c.String(http.StatusOK, challenge)
		return
	}

	log.Printf("webhook verification failed: mode=%s", mode)
	c.String(http.StatusForbidden, "verification failed")
}

// Receive handles incoming WhatsApp messages. It always answers 200 once the
// body has been read: Meta retries deliveries that are not acknowledged, and
// a malformed or ignorable payload must never trigger a retry storm.
func (h *WhatsAppWebhook) Receive(c *gin.Context) {
	requestID := requestid.Get(c)

	payload, err := h.parseBody(c)
	if err != nil {
		log.Printf("ignoring webhook: %v", err)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	if payload.Object != whatsapp.ObjectWhatsApp {
		log.Printf("ignoring webhook: unexpected object %q", payload.Object)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	inbound, ok := extractMessage(payload)
	if !ok {
		// Status updates and other message-less deliveries land here;
		// this is the common case, not an error.
		c.JSON(http.StatusOK, gin.H{"status": "no messages"})
		return
	}

	message := preProcessMsg(inbound)
	log.Printf("📨 %s message from %s", inbound.Type, inbound.From)

	reply, err := h.VisionBot.HandleMessage(requestID, message)
	if err != nil {
		log.Printf("handle message failed (sender=%s kind=%s): %v", message.From, message.Kind, err)
		reply = visionbot.FallbackReply(err)
	}

	if err := h.Sender.SendMessage(requestID, message.From, reply); err != nil {
		log.Printf("failed to send reply to %s: %v", message.From, err)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *WhatsAppWebhook) parseBody(c *gin.Context) (*whatsapp.WebhookPayload, error) {
	// Parse the JSON manually
	var payload whatsapp.WebhookPayload
	bodyBytes, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// extractMessage pulls the first message out of the envelope. Meta nests it
// under entry[0].changes[0].value.messages[0].
func extractMessage(payload *whatsapp.WebhookPayload) (*whatsapp.Message, bool) {
	if len(payload.Entry) == 0 {
		return nil, false
	}
	entry := payload.Entry[0]
	if len(entry.Changes) == 0 {
		return nil, false
	}
	value := entry.Changes[0].Value
	if len(value.Messages) == 0 {
		return nil, false
	}
	return &value.Messages[0], true
}

func preProcessMsg(inbound *whatsapp.Message) *visionbot.Message {
	message := &visionbot.Message{
		From: inbound.From,
		Kind: visionbot.KindOther,
	}

	switch {
	case inbound.Type == "text" && inbound.Text != nil:
		message.Kind = visionbot.KindText
		message.Text = inbound.Text.Body
	case inbound.Type == "image" && inbound.Image != nil:
		message.Kind = visionbot.KindImage
		message.MediaID = inbound.Image.ID
		message.Caption = inbound.Image.Caption
	}

	return message
}
