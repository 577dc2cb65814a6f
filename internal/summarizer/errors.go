package summarizer

import "errors"

var (
	ErrNoAPIKeys     = errors.New("no Gemini API keys configured")
	ErrEmptyResponse = errors.New("empty response from Gemini")
	ErrKeysExhausted = errors.New("all API keys exhausted")
)
