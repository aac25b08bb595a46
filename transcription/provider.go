package transcription

import (
	"context"

	"github.com/notedly/minutes/provider"
)

// Provider is the interface that transcription backends must implement.
type Provider interface {
	provider.Provider // embeds Name() and IsAvailable()

	// Transcribe uploads audio and returns the transcription result.
	Transcribe(ctx context.Context, req Request) (*Result, error)
}

// NewRegistry creates a new provider registry for transcription providers.
func NewRegistry() *provider.Registry[Provider] {
	return provider.NewRegistry[Provider]()
}
