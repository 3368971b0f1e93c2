// internal/version/version.go
package version

// Version is stamped at build time with
// -ldflags "-X moop/internal/version.Version=v1.2.3".
var Version = "dev"
