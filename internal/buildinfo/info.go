package buildinfo

// Set via -ldflags "-X github.com/cameronfoundation/aba/internal/buildinfo.Version=..." at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
