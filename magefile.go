//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified
var Default = Build

// Build builds the tangocho binary
func Build() error {
	mg.Deps(Vet)
	return sh.RunV("go", "build", "-o", "tangocho", "./cmd/tangocho")
}

// Test runs the test suite
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet on all packages
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs the tangocho binary
func Install() error {
	return sh.RunV("go", "install", "./cmd/tangocho")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("tangocho")
}
