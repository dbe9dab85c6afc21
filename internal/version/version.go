// Package version holds the compiler version and checks version constraints
// against it.
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is the compiler version. It is a var so release builds can set it
// with -ldflags "-X github.com/hassan/bootc/internal/version.Version=...".
var Version = "0.3.0"

// Current returns the parsed compiler version.
func Current() (*semver.Version, error) {
	v, err := semver.NewVersion(Version)
	if err != nil {
		return nil, fmt.Errorf("invalid compiler version %q: %w", Version, err)
	}
	return v, nil
}

// Satisfies reports whether the compiler version meets constraint, e.g.
// ">= 0.3, < 1.0".
func Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	v, err := Current()
	if err != nil {
		return false, err
	}
	return c.Check(v), nil
}
