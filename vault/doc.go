// Package vault abstracts the note store the pipeline reads and writes.
//
// A Vault holds markdown notes addressed by relative path. Dir is the
// filesystem implementation; tests substitute in-memory fakes.
package vault
