package backend

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go-event-portal/models"
)

// Ensure MockClient implements Client
var _ Client = (*MockClient)(nil)

// MockClient is a mock implementation for testing and extends `mock.Mock`
type MockClient struct {
	mock.Mock
}

// Login (Mocked)
func (m *MockClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	args := m.Called(ctx, email, password)
	res, _ := args.Get(0).(*LoginResult)
	return res, args.Error(1)
}

// Register (Mocked)
func (m *MockClient) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*RegisterResult)
	return res, args.Error(1)
}

// ListEvents (Mocked)
func (m *MockClient) ListEvents(ctx context.Context, token string) ([]models.RemoteEvent, error) {
	args := m.Called(ctx, token)
	list, _ := args.Get(0).([]models.RemoteEvent)
	return list, args.Error(1)
}

// GetEvent (Mocked)
func (m *MockClient) GetEvent(ctx context.Context, token string, id int64) (*models.RemoteEvent, error) {
	args := m.Called(ctx, token, id)
	ev, _ := args.Get(0).(*models.RemoteEvent)
	return ev, args.Error(1)
}

// CreatePromotion (Mocked)
func (m *MockClient) CreatePromotion(ctx context.Context, token string, req PromotionRequest) error {
	args := m.Called(ctx, token, req)
	return args.Error(0)
}
