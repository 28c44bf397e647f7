package domain

// Tenant is one entry of the tenant mapping. AssetPath is relative to the
// asset root and names the directory holding the tenant's faq and events text.
type Tenant struct {
	ID        string
	Name      string
	AssetPath string
}

// Asset file names looked up under a tenant's AssetPath.
const (
	AssetFAQ    = "faq.txt"
	AssetEvents = "events.txt"
)
