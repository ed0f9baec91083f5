// Package kernel contains shared value objects used across domain aggregates.
// It currently provides the UUID identifier type, which enforces construction
// through factory functions so that zero-value identifiers never leak into
// aggregates or persistence.
package kernel
