package processor

import "context"

// Processor defines the transcript processing pipeline.
type Processor interface {
	Process(ctx context.Context, path string) (*Result, error)
	ProcessAll(ctx context.Context, paths []string) ([]*Result, error)
}
