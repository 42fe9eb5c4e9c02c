// Package sheetcsv converts spreadsheet workbooks into delimited text files,
// selecting sheets by name, index or visibility.
package sheetcsv

import (
	"github.com/rs/zerolog"

	"sheetcsv/pkg/sheetcsv/engine"
	"sheetcsv/pkg/sheetcsv/models"
)

// SelectionKind identifies which selection rule is active for a run.
type SelectionKind int

const (
	// KindFirstVisible selects the first visible sheet, falling back to the
	// sheet at index 1 when every sheet is hidden.
	KindFirstVisible SelectionKind = iota
	// KindByName selects the single sheet with an exact name match.
	KindByName
	// KindByIndex selects the single sheet at a 1-based position.
	KindByIndex
	// KindAll selects every sheet in index order.
	KindAll
)

// SelectionMode describes which sheet(s) a run exports. Exactly one kind is
// active; Name and Index are meaningful only for their matching kind.
// Construct values with the Select* helpers. Rejecting contradictory user
// input (both name and index given) is the caller's job, before selection.
type SelectionMode struct {
	Kind  SelectionKind
	Name  string
	Index int
}

// SelectByName selects the sheet named name, even if it is hidden.
func SelectByName(name string) SelectionMode {
	return SelectionMode{Kind: KindByName, Name: name}
}

// SelectByIndex selects the sheet at 1-based position index.
func SelectByIndex(index int) SelectionMode {
	return SelectionMode{Kind: KindByIndex, Index: index}
}

// SelectFirstVisible selects the lowest-index visible sheet.
func SelectFirstVisible() SelectionMode {
	return SelectionMode{Kind: KindFirstVisible}
}

// SelectAll selects every sheet in index order.
func SelectAll() SelectionMode {
	return SelectionMode{Kind: KindAll}
}

// Options configures a conversion run.
type Options struct {
	// InputPath is the workbook to read.
	InputPath string
	// OutputPath is the target file (single-sheet mode) or directory
	// (all-sheets mode). Blank derives the target from InputPath.
	OutputPath string
	// Mode selects which sheet(s) to export.
	Mode SelectionMode
	// IncludeHidden includes non-visible sheets in all-sheets mode.
	IncludeHidden bool
	// Overwrite permits replacing existing output files.
	Overwrite bool
	// Format is the preferred output encoding. The fallback encoding is
	// derived from it; see engine.Format.Fallback.
	Format engine.Format
	// Logger receives per-sheet events. DefaultOptions sets zerolog.Nop;
	// pass that to discard them.
	Logger zerolog.Logger
	// OnSelect, if set, is called once with the computed targets, after
	// selection and before any write occurs.
	OnSelect func([]models.ExportTarget)
	// OnSheet, if set, is called with each sheet's outcome as it is decided.
	OnSheet func(models.ExportOutcome)
}

// DefaultOptions returns options for a first-visible-sheet export with
// derived output paths.
func DefaultOptions(inputPath string) Options {
	return Options{
		InputPath: inputPath,
		Mode:      SelectFirstVisible(),
		Format:    engine.FormatUTF8,
		Logger:    zerolog.Nop(),
	}
}
