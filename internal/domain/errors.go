package domain

import "errors"

var (
	// ErrInvalidRequest covers missing or empty request fields.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrTenantNotFound means the tenant id has no entry in the mapping.
	ErrTenantNotFound = errors.New("tenant not found")
	// ErrTenantsUnavailable means the tenant mapping could not be read.
	ErrTenantsUnavailable = errors.New("tenants file not found")
	// ErrTenantsMalformed means the tenant mapping could not be parsed.
	ErrTenantsMalformed = errors.New("error parsing tenants file")

	ErrAssetUnavailable = errors.New("tenant asset unavailable")

	ErrProviderFailed = errors.New("provider request failed")
)

// IsTenantError reports whether err came from tenant resolution.
func IsTenantError(err error) bool {
	return errors.Is(err, ErrTenantNotFound) ||
		errors.Is(err, ErrTenantsUnavailable) ||
		errors.Is(err, ErrTenantsMalformed)
}
