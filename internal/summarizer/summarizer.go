package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/meeting-digest/pkg/transcript"
)

const summaryPrompt = `Please analyze and summarize this meeting transcript in a clear, narrative format.

MEETING DETAILS:
- Duration: %s
- Participants: %s
- Total entries: %d

TRANSCRIPT:
%s

Please provide a comprehensive summary in narrative format that includes:

1. **Meeting Overview**: Brief description of the meeting's main purpose and context
2. **Key Discussion Topics**: Main subjects discussed during the meeting
3. **Important Decisions Made**: Any decisions, agreements, or conclusions reached
4. **Action Items & Next Steps**: Tasks assigned, deadlines mentioned, or follow-up actions
5. **Notable Updates**: Important announcements, status updates, or information shared
6. **Scheduling & Timeline**: Any dates, deadlines, or future meetings mentioned

Write the summary in a flowing narrative style, not bullet points. Focus on the most important information and maintain the context of the business discussion.`

const pingPrompt = "Hello, please respond with 'API connection successful'"

// buildPrompt fills the summary prompt from the transcript text and stats.
func buildPrompt(narrative string, stats transcript.Stats) string {
	duration := stats.Duration
	if duration == "" {
		duration = "Unknown"
	}
	return fmt.Sprintf(summaryPrompt,
		duration,
		strings.Join(stats.Participants(), ", "),
		stats.TotalEntries,
		narrative,
	)
}

// Summarize sends the transcript to Gemini and returns the summary text.
func (s *implSummarizer) Summarize(ctx context.Context, narrative string, stats transcript.Stats) (string, error) {
	text, err := s.call(ctx, buildPrompt(narrative, stats))
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Ping checks that the configured key and model answer a trivial prompt.
func (s *implSummarizer) Ping(ctx context.Context) error {
	text, err := s.call(ctx, pingPrompt)
	if err != nil {
		return fmt.Errorf("ping gemini: %w", err)
	}
	if !strings.Contains(strings.ToLower(text), "successful") {
		return fmt.Errorf("ping gemini: unexpected reply %q", text)
	}
	return nil
}

// call rotates API keys on 429 / quota errors.
func (s *implSummarizer) call(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for range len(s.apiKeys) {
		idx, key := s.key()

		text, err := s.gen.Generate(ctx, key, s.model, prompt)
		if err == nil {
			return text, nil
		}
		if errors.Is(err, ErrEmptyResponse) {
			return "", err
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if !isRateLimited(err) {
			return "", err
		}

		s.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
		s.rotateKey(idx)
		lastErr = err
	}

	return "", fmt.Errorf("%w: %w", ErrKeysExhausted, lastErr)
}

func (s *implSummarizer) key() (int, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentKey, s.apiKeys[s.currentKey]
}

// rotateKey advances past idx unless another caller already has.
func (s *implSummarizer) rotateKey(idx int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentKey == idx {
		s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
	}
}
