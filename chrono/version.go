package chrono

// Build identity reported by the console help screen. Release builds
// override these at link time.
var (
	Version        = "syschrono-0.1.0"
	BuildTimestamp = "dev"
	GitCommit      = "unknown"
)
