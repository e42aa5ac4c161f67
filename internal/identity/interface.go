package identity

import "context"

// ClientInterface defines the interface for identity provider operations.
// This interface enables testability by allowing mock implementations.
type ClientInterface interface {
	RedirectURL(ctx context.Context) (string, error)
	ExchangeCode(ctx context.Context, code string) (string, error)
	ResolveSession(ctx context.Context, token string) (*User, error)
	DeleteSession(ctx context.Context, token string) error
}

// Ensure Client implements the interface
var _ ClientInterface = (*Client)(nil)
