package sheetcsv

import (
	"fmt"
	"os"
	"path/filepath"

	"sheetcsv/pkg/sheetcsv/engine"
	"sheetcsv/pkg/sheetcsv/models"
)

// Convert runs a full conversion: resolve paths, open the workbook, select
// sheets, and export each one. The returned outcomes cover every sheet
// decided before the run stopped, so callers can see what was written even
// when an error is returned. The source workbook is never modified.
func Convert(opts Options) ([]models.ExportOutcome, error) {
	inputPath, err := ResolveInput(opts.InputPath)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(inputPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
	}

	eng, err := engine.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open workbook %s: %w", inputPath, err)
	}
	defer eng.Close()

	sheets, err := eng.ListSheets()
	if err != nil {
		return nil, err
	}

	selected, err := SelectSheets(sheets, opts.Mode, opts.IncludeHidden)
	if err != nil {
		return nil, err
	}

	targets, err := BuildTargets(inputPath, opts.OutputPath, opts.Mode, selected)
	if err != nil {
		return nil, err
	}
	if opts.OnSelect != nil {
		opts.OnSelect(targets)
	}

	return Run(eng, targets, opts)
}

// BuildTargets computes the destination path for every selected sheet before
// any write occurs. In all-sheets mode the output directory is created here.
// Paths are unique within the run: when two sheet names sanitize to the same
// fragment, later duplicates get "_<index>" (the sheet's 1-based position)
// appended so no sheet silently overwrites another.
func BuildTargets(inputPath, outputPath string, mode SelectionMode, selected []models.SheetInfo) ([]models.ExportTarget, error) {
	if mode.Kind != KindAll {
		// Single-sheet modes select exactly one sheet.
		targets := make([]models.ExportTarget, 0, 1)
		for _, s := range selected {
			path := ResolveOutputForSingle(inputPath, outputPath, SingleSuffix(mode))
			targets = append(targets, models.ExportTarget{Sheet: s, Path: path})
		}
		return targets, nil
	}

	dir, err := ResolveOutputDirForAll(inputPath, outputPath)
	if err != nil {
		return nil, err
	}

	base := inputBase(inputPath)
	seen := make(map[string]bool, len(selected))
	targets := make([]models.ExportTarget, 0, len(selected))
	for _, s := range selected {
		name := base + "__" + SanitizeName(s.Name)
		// A renamed candidate can itself collide with a literal sheet name,
		// so keep appending until the name is free. Terminates: each append
		// lengthens the name and seen is finite.
		for seen[name] {
			name = fmt.Sprintf("%s_%d", name, s.Index)
		}
		seen[name] = true
		targets = append(targets, models.ExportTarget{
			Sheet: s,
			Path:  filepath.Join(dir, name+OutputExt),
		})
	}
	return targets, nil
}

// Run drives the per-sheet export loop over precomputed targets, in order.
// A pre-existing target without Overwrite aborts the run with
// ErrOutputConflict; an exporter failure aborts it with an ExportError.
// Outcomes decided before the abort are still returned.
func Run(eng engine.Engine, targets []models.ExportTarget, opts Options) ([]models.ExportOutcome, error) {
	preferred := opts.Format
	if preferred == "" {
		preferred = engine.FormatUTF8
	}
	fallback := preferred.Fallback()

	outcomes := make([]models.ExportOutcome, 0, len(targets))
	for _, t := range targets {
		if _, err := os.Stat(t.Path); err == nil && !opts.Overwrite {
			outcome := models.ExportOutcome{Target: t, Status: models.SkippedExists}
			outcomes = record(outcomes, outcome, opts)
			return outcomes, fmt.Errorf("%w: %s (pass --overwrite to replace it)", ErrOutputConflict, t.Path)
		}

		if err := eng.ExportSheet(t.Sheet, t.Path, preferred, fallback); err != nil {
			outcome := models.ExportOutcome{Target: t, Status: models.Failed, Err: err}
			outcomes = record(outcomes, outcome, opts)
			return outcomes, NewExportError(t.Sheet.Name, t.Path, err)
		}

		outcomes = record(outcomes, models.ExportOutcome{Target: t, Status: models.Written}, opts)
	}
	return outcomes, nil
}

func record(outcomes []models.ExportOutcome, o models.ExportOutcome, opts Options) []models.ExportOutcome {
	evt := opts.Logger.Debug().
		Str("sheet", o.Target.Sheet.Name).
		Str("path", o.Target.Path).
		Stringer("status", o.Status)
	if o.Err != nil {
		evt = evt.Err(o.Err)
	}
	evt.Msg("sheet export")

	if opts.OnSheet != nil {
		opts.OnSheet(o)
	}
	return append(outcomes, o)
}
