package buildconfig

// Build-time variables injected via ldflags:
//
//	-X github.com/Harshitk-cp/guestchat/internal/buildconfig.version=v1.2.0
var (
	version = "dev"
	commit  = "unknown"
)

func Version() string {
	return version
}

func Commit() string {
	return commit
}

// UserAgent identifies the service to upstream LLM providers.
func UserAgent() string {
	return "guestchat/" + version + " (" + commit + ")"
}
