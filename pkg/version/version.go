package version

// Version is the application version, overridable at build time via
// -ldflags "-X trailbuddy/pkg/version.Version=...".
var Version = "0.3.0-dev"
