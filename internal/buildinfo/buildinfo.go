package buildinfo

// These variables will be set via ldflags during build
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
