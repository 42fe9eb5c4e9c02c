package sheetcsv

import (
	"errors"
	"fmt"
)

// ErrInputNotFound indicates the input workbook does not exist.
var ErrInputNotFound = errors.New("input file not found")

// ErrSheetNotFound indicates no sheet matched the requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrSheetIndexOutOfRange indicates the requested 1-based sheet index is
// outside [1, count].
var ErrSheetIndexOutOfRange = errors.New("sheet index out of range")

// ErrOutputConflict indicates a target file already exists and overwrite was
// not requested. Any pre-existing output is a hard stop for the whole run.
var ErrOutputConflict = errors.New("output file already exists")

// ErrDirectoryCreate indicates the output directory could not be created.
var ErrDirectoryCreate = errors.New("cannot create output directory")

// ExportError wraps a failure while exporting a single sheet.
type ExportError struct {
	SheetName string
	Path      string
	Err       error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export of sheet %q to %s failed: %v", e.SheetName, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError creates a new ExportError.
func NewExportError(sheetName, path string, err error) *ExportError {
	return &ExportError{
		SheetName: sheetName,
		Path:      path,
		Err:       err,
	}
}
