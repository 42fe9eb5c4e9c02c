package sheetcsv

import (
	"fmt"

	"sheetcsv/pkg/sheetcsv/models"
)

// SelectSheets filters an ordered sheet list down to the sheets a run should
// export, per the active selection mode. Order is always the workbook's index
// order; downstream file names and conflict tie-breaks depend on it.
func SelectSheets(sheets []models.SheetInfo, mode SelectionMode, includeHidden bool) ([]models.SheetInfo, error) {
	switch mode.Kind {
	case KindByName:
		// An explicitly named sheet is exported even if hidden.
		for _, s := range sheets {
			if s.Name == mode.Name {
				return []models.SheetInfo{s}, nil
			}
		}
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, mode.Name)

	case KindByIndex:
		if mode.Index < 1 || mode.Index > len(sheets) {
			return nil, fmt.Errorf("%w: %d (workbook has %d sheets)", ErrSheetIndexOutOfRange, mode.Index, len(sheets))
		}
		return []models.SheetInfo{sheets[mode.Index-1]}, nil

	case KindAll:
		if includeHidden {
			out := make([]models.SheetInfo, len(sheets))
			copy(out, sheets)
			return out, nil
		}
		var out []models.SheetInfo
		for _, s := range sheets {
			if s.Visibility == models.Visible {
				out = append(out, s)
			}
		}
		return out, nil

	default: // KindFirstVisible
		for _, s := range sheets {
			if s.Visibility == models.Visible {
				return []models.SheetInfo{s}, nil
			}
		}
		// Fully-hidden workbook: fall back to the first sheet so the
		// selection never fails on visibility alone.
		if len(sheets) > 0 {
			return []models.SheetInfo{sheets[0]}, nil
		}
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
	}
}
