// Package version exposes build metadata for stamplog.
//
// Version and Commit are injected at build time via Go ldflags.
package version
