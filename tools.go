//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// These imports are not used at runtime. They pin the Go-based tools
// invoked via `go generate` (mockgen) as explicit module dependencies so
// that go.mod / go.sum stay in sync on a fresh checkout.
package talk_lab

import (
	_ "go.uber.org/mock/mockgen"
)
