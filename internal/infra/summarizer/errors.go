package summarizer

import "errors"

var (
	// ErrContentTooShort indicates the article does not carry enough text to
	// be worth a chat-completion call.
	ErrContentTooShort = errors.New("article text too short to summarize")

	// ErrEmptyResponse indicates the API answered without any content.
	ErrEmptyResponse = errors.New("summarizer api returned empty response")
)
