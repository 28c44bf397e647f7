package domain

import "context"

// TenantDirectory resolves tenant ids against the persisted mapping.
// Implementations read the mapping on every call.
type TenantDirectory interface {
	Lookup(ctx context.Context, tenantID string) (*Tenant, error)
}

// AssetStore reads a tenant's text assets.
type AssetStore interface {
	Read(ctx context.Context, assetPath, name string) (string, error)
}

// LLMClient turns a rendered prompt into generated text.
type LLMClient interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}
