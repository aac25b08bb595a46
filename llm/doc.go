// Package llm defines the chat-completion provider interface and common
// types for interacting with LLM backends.
package llm
