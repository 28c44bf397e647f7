package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Harshitk-cp/guestchat/internal/domain"
	"github.com/Harshitk-cp/guestchat/internal/llm"
	"github.com/Harshitk-cp/guestchat/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockTenantDirectory mocks the TenantDirectory interface.
type MockTenantDirectory struct {
	mock.Mock
}

func (m *MockTenantDirectory) Lookup(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

// MockAssetStore mocks the AssetStore interface.
type MockAssetStore struct {
	mock.Mock
}

func (m *MockAssetStore) Read(ctx context.Context, assetPath, name string) (string, error) {
	args := m.Called(ctx, assetPath, name)
	return args.String(0), args.Error(1)
}

const testTemplate = "You are the concierge for {tenant_name}. Guest: {guest_name}\nFAQ:\n{faq}\nEvents:\n{events}\nMessage: {guest_message}"

var acme = &domain.Tenant{ID: "t1", Name: "Acme", AssetPath: "acme"}

func newChatFixture(t *testing.T) (*ChatService, *MockTenantDirectory, *MockAssetStore, *llm.MockClient) {
	t.Helper()

	tmpl, err := prompt.Parse(testTemplate)
	require.NoError(t, err)
	cfg, err := NewChatConfig(tmpl, domain.GenerateOptions{Model: "gpt-4o", Temperature: 0.7})
	require.NoError(t, err)

	dir := new(MockTenantDirectory)
	assets := new(MockAssetStore)
	client := llm.NewMockClient()
	client.Response = "Hello Bob!"

	svc := NewChatService(NewTenantService(dir), assets, client, cfg, zap.NewNop())
	return svc, dir, assets, client
}

func validRequest() domain.ChatRequest {
	return domain.ChatRequest{TenantID: "t1", GuestName: "Bob", GuestMessage: "Hi"}
}

func TestChatService_Handle(t *testing.T) {
	svc, dir, assets, client := newChatFixture(t)
	ctx := context.Background()

	dir.On("Lookup", ctx, "t1").Return(acme, nil)
	assets.On("Read", ctx, "acme", domain.AssetFAQ).Return("Pool opens at 8.", nil)
	assets.On("Read", ctx, "acme", domain.AssetEvents).Return("Karaoke Friday.", nil)

	resp, err := svc.Handle(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, "Hello Bob!", resp.Text)

	calls := client.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t,
		"You are the concierge for Acme. Guest: Bob\nFAQ:\nPool opens at 8.\nEvents:\nKaraoke Friday.\nMessage: Hi",
		calls[0].Prompt)
	assert.Equal(t, domain.GenerateOptions{Model: "gpt-4o", Temperature: 0.7}, calls[0].Options)

	dir.AssertExpectations(t)
	assets.AssertExpectations(t)
}

func TestChatService_ReplyPassedThroughUnchanged(t *testing.T) {
	svc, dir, assets, client := newChatFixture(t)
	ctx := context.Background()
	client.Response = "  <b>Hi</b>\n\n"

	dir.On("Lookup", ctx, "t1").Return(acme, nil)
	assets.On("Read", ctx, "acme", mock.Anything).Return("x", nil)

	resp, err := svc.Handle(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, "  <b>Hi</b>\n\n", resp.Text)
}

func TestChatService_MissingTenantID(t *testing.T) {
	svc, dir, assets, client := newChatFixture(t)

	// a request missing every field still reports the tenant id first
	_, err := svc.Handle(context.Background(), domain.ChatRequest{})
	assert.ErrorIs(t, err, ErrTenantIDMissing)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	dir.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
	assets.AssertNotCalled(t, "Read", mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, client.Calls())
}

func TestChatService_MissingGuestFields(t *testing.T) {
	cases := map[string]domain.ChatRequest{
		"no name":    {TenantID: "t1", GuestMessage: "Hi"},
		"no message": {TenantID: "t1", GuestName: "Bob"},
		"neither":    {TenantID: "t1"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			svc, dir, assets, client := newChatFixture(t)

			_, err := svc.Handle(context.Background(), req)
			assert.ErrorIs(t, err, ErrGuestFieldsMissing)

			dir.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
			assets.AssertNotCalled(t, "Read", mock.Anything, mock.Anything, mock.Anything)
			assert.Empty(t, client.Calls())
		})
	}
}

func TestChatService_TenantErrors(t *testing.T) {
	for _, tenantErr := range []error{domain.ErrTenantNotFound, domain.ErrTenantsUnavailable, domain.ErrTenantsMalformed} {
		t.Run(tenantErr.Error(), func(t *testing.T) {
			svc, dir, assets, client := newChatFixture(t)
			ctx := context.Background()
			dir.On("Lookup", ctx, "t1").Return(nil, tenantErr)

			_, err := svc.Handle(ctx, validRequest())
			assert.ErrorIs(t, err, tenantErr)
			assert.True(t, domain.IsTenantError(err))

			assets.AssertNotCalled(t, "Read", mock.Anything, mock.Anything, mock.Anything)
			assert.Empty(t, client.Calls())
		})
	}
}

func TestChatService_MissingAsset(t *testing.T) {
	svc, dir, assets, client := newChatFixture(t)
	ctx := context.Background()

	dir.On("Lookup", ctx, "t1").Return(acme, nil)
	assets.On("Read", ctx, "acme", domain.AssetFAQ).Return("faq", nil)
	assets.On("Read", ctx, "acme", domain.AssetEvents).Return("", domain.ErrAssetUnavailable)

	_, err := svc.Handle(ctx, validRequest())
	assert.ErrorIs(t, err, domain.ErrAssetUnavailable)
	assert.Empty(t, client.Calls())
}

func TestChatService_ProviderError(t *testing.T) {
	svc, dir, assets, client := newChatFixture(t)
	ctx := context.Background()
	client.Error = errors.New("openai API returned status 500")

	dir.On("Lookup", ctx, "t1").Return(acme, nil)
	assets.On("Read", ctx, "acme", mock.Anything).Return("x", nil)

	_, err := svc.Handle(ctx, validRequest())
	assert.ErrorIs(t, err, domain.ErrProviderFailed)
	assert.ErrorContains(t, err, "status 500")
	assert.Len(t, client.Calls(), 1)
}

func TestChatService_IdenticalRequestsCallProviderTwice(t *testing.T) {
	svc, dir, assets, client := newChatFixture(t)
	ctx := context.Background()

	dir.On("Lookup", ctx, "t1").Return(acme, nil)
	assets.On("Read", ctx, "acme", domain.AssetFAQ).Return("faq", nil)
	assets.On("Read", ctx, "acme", domain.AssetEvents).Return("events", nil)

	_, err := svc.Handle(ctx, validRequest())
	require.NoError(t, err)
	_, err = svc.Handle(ctx, validRequest())
	require.NoError(t, err)

	calls := client.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, calls[0].Prompt, calls[1].Prompt)
	dir.AssertNumberOfCalls(t, "Lookup", 2)
}

func TestNewChatConfig(t *testing.T) {
	_, err := NewChatConfig(nil, domain.GenerateOptions{})
	assert.Error(t, err)

	tmpl, err := prompt.Parse("{guest_name} asks about {weather}")
	require.NoError(t, err)
	_, err = NewChatConfig(tmpl, domain.GenerateOptions{})
	assert.ErrorContains(t, err, "{weather}")
}

func TestTenantService_Resolve(t *testing.T) {
	dir := new(MockTenantDirectory)
	svc := NewTenantService(dir)
	ctx := context.Background()

	dir.On("Lookup", ctx, "t1").Return(acme, nil)
	dir.On("Lookup", ctx, "unknown").Return(nil, domain.ErrTenantNotFound)

	tenant, err := svc.Resolve(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "Acme", tenant.Name)

	_, err = svc.Resolve(ctx, "unknown")
	assert.ErrorIs(t, err, domain.ErrTenantNotFound)

	_, err = svc.Resolve(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	dir.AssertNumberOfCalls(t, "Lookup", 2)
}
