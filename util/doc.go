// Package util provides small generic helpers shared across minutes
// packages: zero-value coalescing, human-readable size parsing, and
// secret masking for log output.
package util
