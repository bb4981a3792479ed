package log

// Canonical field names for structured logging.
const (
	FieldService   = "service"
	FieldRunID     = "run_id"
	FieldComponent = "component"

	FieldPath    = "path"
	FieldOutput  = "output"
	FieldStreams = "streams"
	FieldFiles   = "files"
	FieldIndex   = "index"
	FieldCode    = "exit_code"
)
