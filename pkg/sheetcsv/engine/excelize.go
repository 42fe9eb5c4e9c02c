package engine

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"sheetcsv/pkg/sheetcsv/models"
)

// xlsxEngine implements Engine on top of excelize.
type xlsxEngine struct {
	f *excelize.File
	// states holds per-sheet visibility read from xl/workbook.xml; excelize's
	// public API flattens hidden and veryHidden to a single bool.
	states map[string]models.Visibility
}

// Open opens the workbook at path and returns an Engine for it.
func Open(path string) (Engine, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}

	states, err := readSheetStates(path)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &xlsxEngine{f: f, states: states}, nil
}

func (e *xlsxEngine) ListSheets() ([]models.SheetInfo, error) {
	names := e.f.GetSheetList()
	sheets := make([]models.SheetInfo, 0, len(names))
	for i, name := range names {
		sheets = append(sheets, models.SheetInfo{
			Name:       name,
			Index:      i + 1,
			Visibility: e.states[name],
		})
	}
	return sheets, nil
}

func (e *xlsxEngine) ExportSheet(sheet models.SheetInfo, path string, preferred, fallback Format) error {
	rows, err := e.f.GetRows(sheet.Name)
	if err != nil {
		return err
	}

	data, err := encodeRows(rows, preferred)
	if err != nil && fallback != preferred {
		data, err = encodeRows(rows, fallback)
	}
	if err != nil {
		return err
	}

	return writeFileAtomic(path, data)
}

func (e *xlsxEngine) Close() error {
	return e.f.Close()
}

// encodeRows serializes the cell grid as delimited text in the given format.
// Encoding happens fully in memory so an unrepresentable character is caught
// before any file exists.
func encodeRows(rows [][]string, format Format) ([]byte, error) {
	var buf bytes.Buffer
	enc := format.newWriter(&buf)

	w := csv.NewWriter(enc)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeFileAtomic writes data to path via a temp file in the same directory,
// renaming into place only when the write completed.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".sheetcsv-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
