// Command digest parses WebVTT meeting transcripts and produces
// Gemini-generated meeting summaries.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
