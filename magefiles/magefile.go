// Package main provides build targets for the safetydesk project using Mage.
//
// Usage:
//
//	mage build    Compile safetydesk binary to bin/
//	mage test     Run all tests
//	mage lint     Run golangci-lint
//	mage fmt      Run gofmt over the tree
//	mage clean    Remove build artifacts
//	mage install  Install safetydesk to GOPATH/bin

//go:build mage

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/sh"
)

const (
	binaryName = "safetydesk"
	binaryDir  = "bin"
	cmdDir     = "./cmd/safetydesk"
)

// Build compiles the safetydesk binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Fmt formats the tree with gofmt.
func Fmt() error {
	return sh.RunV("gofmt", "-w", ".")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV("go", "clean")
}

// Install installs safetydesk to GOPATH/bin.
func Install() error {
	return sh.RunV("go", "install", cmdDir)
}
