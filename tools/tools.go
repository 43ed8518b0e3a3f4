//go:build tools

// Package tools pins CLI dependencies used during development.
package tools

import (
	_ "github.com/pressly/goose/v3/cmd/goose"
)
