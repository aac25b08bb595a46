package logger

// Standard field names used across the pipeline.
const (
	FieldComponent = "component"
	FieldSession   = "session_id"
	FieldChunk     = "chunk_index"
	FieldChunks    = "chunks"
	FieldDuration  = "duration"
	FieldSizeBytes = "size_bytes"
	FieldModel     = "model"
	FieldTemplate  = "template"
	FieldPath      = "path"
)
