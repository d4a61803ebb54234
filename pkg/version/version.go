// Package version contains the sf-preflight version, set at build time.
package version

// Version is the current sf-preflight version.
// This is set at build time using ldflags:
//
//	go build -ldflags "-X github.com/Avinava/sf-preflight/pkg/version.Version=v1.0.0"
var Version = "dev"
