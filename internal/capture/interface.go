package capture

import (
	"context"

	"todosplus/internal/model"
)

// UseCase defines the business logic interface for AI capture.
type UseCase interface {
	// Capture runs structured extraction over free text and stores the
	// resulting tasks. Invalid due strings from the extractor trigger
	// exactly one stricter retry before the error surfaces.
	Capture(ctx context.Context, sc model.Scope, input CaptureInput) (CaptureOutput, error)
}

// Extractor is the LLM collaborator that turns free text into structured
// tasks. Implementations live outside this service; the interface is
// defined here, on the consumer side.
type Extractor interface {
	Extract(ctx context.Context, req ExtractRequest) ([]ExtractedTask, error)
}
