// Package models defines data structures shared across the converter.
package models

// Visibility represents a sheet's visibility state within the workbook.
type Visibility int

const (
	// Visible sheets are shown in the workbook UI.
	Visible Visibility = iota
	// Hidden sheets are hidden but can be unhidden through the UI.
	Hidden
	// VeryHidden sheets can only be unhidden programmatically.
	VeryHidden
)

// String returns the OOXML state name for the visibility.
func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case VeryHidden:
		return "veryHidden"
	default:
		return "visible"
	}
}

// SheetInfo is an immutable snapshot of one sheet's metadata, taken at
// selection time. The underlying workbook must not change during a run.
type SheetInfo struct {
	// Name is the sheet name, unique within the workbook.
	Name string
	// Index is the sheet's 1-based position.
	Index int
	// Visibility is the sheet's visibility state.
	Visibility Visibility
}
