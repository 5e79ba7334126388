package llmclient

import "context"

// IChat defines the interface for an OpenAI-compatible chat client
type IChat interface {
	ChatCompletion(ctx context.Context, req *Request) (*Response, error)
}
