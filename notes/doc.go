// Package notes synthesizes meeting documents: rendering templates with
// placeholder substitution, and merging analysis results into an
// existing document's sections.
//
// Documents are parsed once into a sequence of {header, body} sections,
// mutated in memory, and re-serialized, so merges never pattern-rewrite
// raw document text.
package notes
