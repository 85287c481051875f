package version

// Set at build time with -ldflags "-X motionview/internal/version.COMMIT=...".
var (
	VERSION = "0.1.0"
	COMMIT  = "dev"
)
