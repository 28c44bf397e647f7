package service

import (
	"context"

	"github.com/Harshitk-cp/guestchat/internal/domain"
)

type TenantService struct {
	directory domain.TenantDirectory
}

func NewTenantService(d domain.TenantDirectory) *TenantService {
	return &TenantService{directory: d}
}

// Resolve returns the tenant for id. Errors wrap ErrTenantNotFound,
// ErrTenantsUnavailable or ErrTenantsMalformed.
func (s *TenantService) Resolve(ctx context.Context, id string) (*domain.Tenant, error) {
	if id == "" {
		return nil, ErrTenantIDMissing
	}
	return s.directory.Lookup(ctx, id)
}
