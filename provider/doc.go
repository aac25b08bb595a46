// Package provider defines the pluggable backend pattern used by the
// transcription and llm packages: a base Provider interface, factories
// for config-driven construction, and a typed registry for named
// backends.
package provider
