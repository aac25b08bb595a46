package provider

import "context"

// Provider is the base interface shared by the speech-to-text and chat
// completion backends.
type Provider interface {
	// Name returns the backend's unique name.
	Name() string
	// IsAvailable reports whether the backend has the credentials and
	// configuration it needs to serve requests.
	IsAvailable(ctx context.Context) bool
}

// Factory builds a backend from loose configuration, typically derived
// from settings.
type Factory[T Provider] func(cfg map[string]any) (T, error)
