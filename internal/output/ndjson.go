package output

import (
	"encoding/json"
	"io"

	"github.com/ikovacevic/logsift/internal/domain"
)

// NDJSONWriter writes analysis results as NDJSON
type NDJSONWriter struct {
	w       io.Writer
	encoder *json.Encoder
}

// NewNDJSONWriter creates a new NDJSON writer
func NewNDJSONWriter(w io.Writer) *NDJSONWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false) // keep log text unescaped and avoid extra allocations
	return &NDJSONWriter{
		w:       w,
		encoder: enc,
	}
}

// WarningOutput represents a warning message
type WarningOutput struct {
	Type          string `json:"type"` // Always "warning"
	SchemaVersion int    `json:"schemaVersion"`
	Message       string `json:"message"`
}

// FileStatsOutput is the per-file record emitted by the stats command
type FileStatsOutput struct {
	Type          string `json:"type"` // Always "file_stats"
	SchemaVersion int    `json:"schemaVersion"`
	File          string `json:"file"`
	TotalLines    int    `json:"totalLines"`
	ErrorCount    int    `json:"errorCount"`
	WarnCount     int    `json:"warnCount"`
	InfoCount     int    `json:"infoCount"`
	DebugCount    int    `json:"debugCount"`
	UnknownCount  int    `json:"unknownCount"`
	Error         string `json:"error,omitempty"` // set when the file could not be read
}

// StatsSummaryOutput closes a stats run with aggregate totals
type StatsSummaryOutput struct {
	Type           string  `json:"type"` // Always "stats_summary"
	SchemaVersion  int     `json:"schemaVersion"`
	Files          int     `json:"files"`
	FailedFiles    int     `json:"failedFiles"`
	TotalLines     int     `json:"totalLines"`
	ErrorCount     int     `json:"errorCount"`
	ElapsedSeconds float64 `json:"elapsedSeconds"`
	LinesPerSecond float64 `json:"linesPerSecond"`
}

// WriteReport outputs the final analysis report
func (w *NDJSONWriter) WriteReport(r *domain.Report) error {
	r.SchemaVersion = SchemaVersion
	return w.encoder.Encode(r)
}

// WriteError outputs an error
func (w *NDJSONWriter) WriteError(code, message string) error {
	errOut := domain.NewErrorOutput(code, message)
	errOut.SchemaVersion = SchemaVersion
	return w.encoder.Encode(errOut)
}

// WriteWarning outputs a warning message
func (w *NDJSONWriter) WriteWarning(message string) error {
	return w.encoder.Encode(&WarningOutput{
		Type:          "warning",
		SchemaVersion: SchemaVersion,
		Message:       message,
	})
}

// WriteRaw outputs raw JSON data
func (w *NDJSONWriter) WriteRaw(v interface{}) error {
	return w.encoder.Encode(v)
}
