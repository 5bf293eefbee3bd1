package domain

// MessageCount pairs a message key with its occurrence count.
type MessageCount struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// Report is the machine-readable result of one analysis run.
type Report struct {
	Type          string `json:"type"`          // Always "report"
	SchemaVersion int    `json:"schemaVersion"` // Schema version for compatibility
	Timestamp     string `json:"timestamp"`
	File          string `json:"file"`

	// Counts
	TotalLines   int `json:"totalLines"`
	ErrorCount   int `json:"errorCount"`
	WarnCount    int `json:"warnCount"`
	InfoCount    int `json:"infoCount"`
	DebugCount   int `json:"debugCount"`
	UnknownCount int `json:"unknownCount"`

	// Agent markers
	HasErrors bool `json:"hasErrors"`

	// Rankings
	TopMessages []MessageCount `json:"topMessages"`
	UniqueIPs   []string       `json:"uniqueIPs"`
}

// ErrorOutput represents a structured error for NDJSON output
type ErrorOutput struct {
	Type          string `json:"type"`          // Always "error"
	SchemaVersion int    `json:"schemaVersion"` // Schema version for compatibility
	Code          string `json:"code"`          // Machine-readable error code
	Message       string `json:"message"`       // Human-readable message
}

// NewErrorOutput creates a new error output
// Note: SchemaVersion should be set by the caller (output package)
func NewErrorOutput(code, message string) *ErrorOutput {
	return &ErrorOutput{
		Type:    "error",
		Code:    code,
		Message: message,
	}
}
