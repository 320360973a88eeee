// Package kernel contains shared value objects used across the domain model.
// These are small, validated types that aggregate roots and commands build on.
package kernel
