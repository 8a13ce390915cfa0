//go:build tools
// +build tools

// Package tools documents development tool dependencies.
// They are run with `go run pkg@version` or installed with `go install` and are
// not tracked in go.mod.
package tools

// Air - rebuilds and restarts the server on Go changes. Pair it with DEV=true
// so template and static edits are picked up without a rebuild.
//   Install: go install github.com/air-verse/air@v1.63.0
//   Docs: https://github.com/air-verse/air
//
// mockgen - regenerates internal/mocks from the ports in internal/core.
//   Run: go generate ./internal/mocks
//   Docs: https://github.com/uber-go/mock
