package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harshitk-cp/guestchat/internal/domain"
	"github.com/jackc/pgx/v5"
)

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TenantStore resolves tenants from the chat_tenants table.
type TenantStore struct {
	db querier
}

// NewTenantStore accepts a *pgxpool.Pool or any other pgx querier.
func NewTenantStore(db querier) *TenantStore {
	return &TenantStore{db: db}
}

func (s *TenantStore) Lookup(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	t := &domain.Tenant{}
	err := s.db.QueryRow(ctx,
		`SELECT id, name, asset_path FROM chat_tenants WHERE id = $1`,
		tenantID,
	).Scan(&t.ID, &t.Name, &t.AssetPath)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTenantNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrTenantsUnavailable, err)
	}
	return t, nil
}
