package domain

// ChatRequest is a single inbound guest message.
type ChatRequest struct {
	TenantID     string `json:"tenant_id"`
	GuestName    string `json:"guest_name"`
	GuestMessage string `json:"guest_message"`
}

// PromptContext holds the values substituted into the prompt template.
type PromptContext struct {
	TenantName   string
	GuestName    string
	FAQ          string
	Events       string
	GuestMessage string
}

// Placeholder names understood by the prompt template.
const (
	FieldTenantName   = "tenant_name"
	FieldGuestName    = "guest_name"
	FieldFAQ          = "faq"
	FieldEvents       = "events"
	FieldGuestMessage = "guest_message"
)

// PromptFields lists every placeholder a template may reference.
var PromptFields = []string{
	FieldTenantName,
	FieldGuestName,
	FieldFAQ,
	FieldEvents,
	FieldGuestMessage,
}

// Values returns the context keyed by placeholder name.
func (p PromptContext) Values() map[string]string {
	return map[string]string{
		FieldTenantName:   p.TenantName,
		FieldGuestName:    p.GuestName,
		FieldFAQ:          p.FAQ,
		FieldEvents:       p.Events,
		FieldGuestMessage: p.GuestMessage,
	}
}

// ChatResponse carries the provider's reply, unmodified.
type ChatResponse struct {
	Text string `json:"response"`
}

// GenerateOptions configures a single provider call.
type GenerateOptions struct {
	Model       string
	Temperature float32
}
