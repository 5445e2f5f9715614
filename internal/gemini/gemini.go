package gemini

import "errors"

// ErrRateLimited is returned when the provider answers 429; callers send a
// "busy" reply instead of the generic fallback.
var ErrRateLimited = errors.New("gemini rate limit exceeded")

type Generator interface {
	AnswerText(requestID string, question string) (string, error)
	DescribeImage(requestID string, image []byte, caption string) (string, error)
}
