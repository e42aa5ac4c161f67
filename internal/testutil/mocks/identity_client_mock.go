package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/karim/quizrush/internal/identity"
)

// MockIdentityClient is a mock implementation of identity.ClientInterface
type MockIdentityClient struct {
	mock.Mock
}

func (m *MockIdentityClient) RedirectURL(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockIdentityClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

func (m *MockIdentityClient) ResolveSession(ctx context.Context, token string) (*identity.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockIdentityClient) DeleteSession(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
