package store

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Harshitk-cp/guestchat/internal/domain"
	"gopkg.in/yaml.v3"
)

type tenantEntry struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// FileTenantDirectory reads a YAML tenant mapping keyed by tenant id.
// The file is read on every lookup so edits take effect immediately.
type FileTenantDirectory struct {
	fsys fs.FS
	name string
}

func NewFileTenantDirectory(path string) *FileTenantDirectory {
	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return NewFileTenantDirectoryFS(os.DirFS(dir), file)
}

func NewFileTenantDirectoryFS(fsys fs.FS, name string) *FileTenantDirectory {
	return &FileTenantDirectory{fsys: fsys, name: name}
}

func (d *FileTenantDirectory) Lookup(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	raw, err := fs.ReadFile(d.fsys, d.name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTenantsUnavailable, err)
	}

	var entries map[string]*tenantEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTenantsMalformed, err)
	}

	// An entry without a display name resolves like an absent one.
	entry, ok := entries[tenantID]
	if !ok || entry == nil || entry.Name == "" {
		return nil, domain.ErrTenantNotFound
	}

	return &domain.Tenant{
		ID:        tenantID,
		Name:      entry.Name,
		AssetPath: entry.Path,
	}, nil
}

// LoadTenantFile parses every entry of a tenant mapping file.
func LoadTenantFile(path string) ([]domain.Tenant, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTenantsUnavailable, err)
	}

	var entries map[string]*tenantEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTenantsMalformed, err)
	}

	tenants := make([]domain.Tenant, 0, len(entries))
	for id, e := range entries {
		if e == nil || e.Name == "" {
			return nil, fmt.Errorf("%w: tenant %q has no name", domain.ErrTenantsMalformed, id)
		}
		tenants = append(tenants, domain.Tenant{ID: id, Name: e.Name, AssetPath: e.Path})
	}
	slices.SortFunc(tenants, func(a, b domain.Tenant) int {
		return strings.Compare(a.ID, b.ID)
	})
	return tenants, nil
}
