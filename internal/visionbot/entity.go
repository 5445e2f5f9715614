package visionbot

type Kind string

const (
	KindText  Kind = "text"
	KindImage Kind = "image"
	KindOther Kind = "other"
)

type Message struct {
	From    string
	Kind    Kind
	Text    string
	MediaID string
	Caption string
}

// Fixed user-facing replies for the non-happy paths.
const (
	ReplyUnsupported = "⚠️ Sorry, I can only help with text and image messages right now."
	ReplyFallback    = "⚠️ Sorry, something went wrong. Please try again."
	ReplyBusy        = "⏳ I'm a bit busy right now. Please try again in a moment!"
)

const imageReplyHeader = "🖼️ *Image Analysis*"
