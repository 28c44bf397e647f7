package service

import (
	"context"
	"fmt"

	"github.com/Harshitk-cp/guestchat/internal/domain"
	"github.com/Harshitk-cp/guestchat/internal/prompt"
	"go.uber.org/zap"
)

var (
	ErrTenantIDMissing    = fmt.Errorf("%w: access denied", domain.ErrInvalidRequest)
	ErrGuestFieldsMissing = fmt.Errorf("%w: name and message are required", domain.ErrInvalidRequest)
)

// ChatConfig is built once at startup and never mutated.
type ChatConfig struct {
	Template *prompt.Template
	Options  domain.GenerateOptions
}

// NewChatConfig rejects templates that reference unknown placeholders.
func NewChatConfig(tmpl *prompt.Template, opts domain.GenerateOptions) (ChatConfig, error) {
	if tmpl == nil {
		return ChatConfig{}, fmt.Errorf("prompt template is required")
	}
	if err := tmpl.Validate(domain.PromptFields...); err != nil {
		return ChatConfig{}, fmt.Errorf("prompt template: %w", err)
	}
	return ChatConfig{Template: tmpl, Options: opts}, nil
}

type ChatService struct {
	tenants *TenantService
	assets  domain.AssetStore
	llm     domain.LLMClient
	cfg     ChatConfig
	logger  *zap.Logger
}

func NewChatService(tenants *TenantService, assets domain.AssetStore, llmClient domain.LLMClient, cfg ChatConfig, logger *zap.Logger) *ChatService {
	return &ChatService{
		tenants: tenants,
		assets:  assets,
		llm:     llmClient,
		cfg:     cfg,
		logger:  logger,
	}
}

// Handle runs one guest message through tenant resolution, asset loading,
// prompt rendering and generation. It stops at the first error.
func (s *ChatService) Handle(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
	if req.TenantID == "" {
		return nil, ErrTenantIDMissing
	}
	if req.GuestName == "" || req.GuestMessage == "" {
		return nil, ErrGuestFieldsMissing
	}

	tenant, err := s.tenants.Resolve(ctx, req.TenantID)
	if err != nil {
		s.logger.Warn("tenant resolution failed", zap.String("tenant_id", req.TenantID), zap.Error(err))
		return nil, err
	}

	faq, err := s.assets.Read(ctx, tenant.AssetPath, domain.AssetFAQ)
	if err != nil {
		s.logger.Error("failed to read faq", zap.String("tenant_id", tenant.ID), zap.Error(err))
		return nil, err
	}
	events, err := s.assets.Read(ctx, tenant.AssetPath, domain.AssetEvents)
	if err != nil {
		s.logger.Error("failed to read events", zap.String("tenant_id", tenant.ID), zap.Error(err))
		return nil, err
	}

	pc := domain.PromptContext{
		TenantName:   tenant.Name,
		GuestName:    req.GuestName,
		FAQ:          faq,
		Events:       events,
		GuestMessage: req.GuestMessage,
	}
	rendered, err := s.cfg.Template.Render(pc.Values())
	if err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}

	text, err := s.llm.Generate(ctx, rendered, s.cfg.Options)
	if err != nil {
		s.logger.Error("generation failed", zap.String("tenant_id", tenant.ID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderFailed, err)
	}

	s.logger.Info("chat reply generated",
		zap.String("tenant_id", tenant.ID),
		zap.Int("prompt_chars", len(rendered)),
		zap.Int("reply_chars", len(text)),
	)

	return &domain.ChatResponse{Text: text}, nil
}
