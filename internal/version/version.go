// Package version carries the build version. Override at link time:
//
//	go build -ldflags "-X nanocount/internal/version.Version=v1.2.3" ./cmd/nanocount
package version

var Version = "dev"
