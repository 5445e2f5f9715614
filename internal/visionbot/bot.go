package visionbot

import (
	"errors"
	"fmt"

	"github.com/naseer2426/whatsapp-gemini-bot/internal/gemini"
)

// MediaFetcher resolves a webhook media ID to binary content.
type MediaFetcher interface {
	DownloadMedia(requestID, mediaID string) ([]byte, error)
}

type Bot struct {
	Generator gemini.Generator
	Media     MediaFetcher
}

func NewBot(generator gemini.Generator, media MediaFetcher) *Bot {
	return &Bot{
		Generator: generator,
		Media:     media,
	}
}

// HandleMessage produces the reply text for one inbound message. Unsupported
// kinds get the fixed notice without touching the AI provider; failures on
// the text/image paths are returned for the caller to log and map to a
// fallback reply.
func (b *Bot) HandleMessage(requestID string, message *Message) (string, error) {
	switch message.Kind {
	case KindText:
		answer, err := b.Generator.AnswerText(requestID, message.Text)
		if err != nil {
			return "", fmt.Errorf("answer question: %w", err)
		}
		return answer, nil

	case KindImage:
		image, err := b.Media.DownloadMedia(requestID, message.MediaID)
		if err != nil {
			return "", fmt.Errorf("download media %s: %w", message.MediaID, err)
		}

		analysis, err := b.Generator.DescribeImage(requestID, image, message.Caption)
		if err != nil {
			return "", fmt.Errorf("analyze image: %w", err)
		}
		return formatImageReply(message.Caption, analysis), nil

	default:
		return ReplyUnsupported, nil
	}
}

// FallbackReply maps a HandleMessage error to the text sent in place of a
// real answer.
func FallbackReply(err error) string {
	if errors.Is(err, gemini.ErrRateLimited) {
		return ReplyBusy
	}
	return ReplyFallback
}

func formatImageReply(caption, analysis string) string {
	reply := fmt.Sprintf("%s\n\n%s", imageReplyHeader, analysis)
	if caption != "" {
		reply = fmt.Sprintf("📝 Caption: _%s_\n\n%s", caption, reply)
	}
	return reply
}
