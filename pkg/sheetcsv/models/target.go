package models

// ExportTarget pairs a sheet with the file path it will be written to.
// Targets are computed once per run, before any file is touched, and their
// paths are unique within the run.
type ExportTarget struct {
	// Sheet is the sheet to export.
	Sheet SheetInfo
	// Path is the destination file path.
	Path string
}

// OutcomeStatus classifies the result of one sheet's export.
type OutcomeStatus int

const (
	// Written means the sheet was exported to its target path.
	Written OutcomeStatus = iota
	// SkippedExists means the target path already existed and overwrite was off.
	SkippedExists
	// Failed means the exporter could not write the sheet.
	Failed
)

// String returns a short label for the status.
func (s OutcomeStatus) String() string {
	switch s {
	case SkippedExists:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return "written"
	}
}

// ExportOutcome is the per-sheet result of an export run.
type ExportOutcome struct {
	// Target is the sheet/path pair this outcome describes.
	Target ExportTarget
	// Status classifies the outcome.
	Status OutcomeStatus
	// Err holds the cause when Status is Failed.
	Err error
}
