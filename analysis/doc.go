// Package analysis extracts structured meeting insights from an
// assembled transcript using an LLM, and parses the model's free-text
// reply into participants, agenda, key points, action items, and next
// steps.
//
// Analysis is always optional: when disabled, unconfigured, or failing,
// the rest of the pipeline proceeds without it.
package analysis
