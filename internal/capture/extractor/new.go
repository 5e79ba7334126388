package extractor

import (
	"todosplus/internal/capture"
	"todosplus/pkg/llmclient"
	"todosplus/pkg/log"
)

type implExtractor struct {
	l    log.Logger
	chat llmclient.IChat
}

var _ capture.Extractor = &implExtractor{}

// New returns an Extractor backed by an OpenAI-compatible chat model.
func New(l log.Logger, chat llmclient.IChat) capture.Extractor {
	return &implExtractor{
		l:    l,
		chat: chat,
	}
}
