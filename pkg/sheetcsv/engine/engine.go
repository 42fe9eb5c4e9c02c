// Package engine abstracts the spreadsheet application behind a small
// capability interface so the conversion core never manipulates workbook
// internals directly.
package engine

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"sheetcsv/pkg/sheetcsv/models"
)

// Format identifies an output text encoding.
type Format string

const (
	// FormatUTF8 writes plain UTF-8.
	FormatUTF8 Format = "utf-8"
	// FormatUTF8BOM writes UTF-8 with a leading byte order mark, which is
	// what desktop spreadsheet applications emit for "CSV UTF-8".
	FormatUTF8BOM Format = "utf-8-bom"
	// FormatWindows1252 writes the legacy Windows ANSI code page. Sheets
	// containing characters outside it cannot be written in this format.
	FormatWindows1252 Format = "windows-1252"
)

// ParseFormat parses a user-supplied encoding name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "utf-8", "utf8":
		return FormatUTF8, nil
	case "utf-8-bom", "utf8-bom", "utf-8-sig":
		return FormatUTF8BOM, nil
	case "windows-1252", "cp1252", "ansi":
		return FormatWindows1252, nil
	default:
		return "", fmt.Errorf("unsupported output encoding: %s", s)
	}
}

// Fallback returns the encoding to retry with when this format cannot
// represent a sheet's contents. UTF-8 variants represent everything, so they
// fall back to themselves.
func (f Format) Fallback() Format {
	if f == FormatWindows1252 {
		return FormatUTF8
	}
	return f
}

// transformer returns the encoder for the format.
func (f Format) transformer() transform.Transformer {
	switch f {
	case FormatUTF8BOM:
		return unicode.UTF8BOM.NewEncoder()
	case FormatWindows1252:
		return charmap.Windows1252.NewEncoder()
	default:
		return unicode.UTF8.NewEncoder()
	}
}

// newWriter wraps w so that bytes written to the result come out encoded in
// the format. The returned writer must be closed to flush the encoder.
func (f Format) newWriter(w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, f.transformer())
}

// Engine is the workbook-application capability the conversion core depends
// on. An Engine holds one open workbook; it is acquired once per run and must
// be closed exactly once, on every exit path. No Engine operation mutates the
// workbook's saved state.
type Engine interface {
	// ListSheets returns an immutable snapshot of every sheet's metadata in
	// index order.
	ListSheets() ([]models.SheetInfo, error)
	// ExportSheet writes the sheet's cell grid to path as delimited text. It
	// tries the preferred format first and transparently retries with the
	// fallback when the preferred encoding cannot represent the data. On
	// failure no partial file is left at path.
	ExportSheet(sheet models.SheetInfo, path string, preferred, fallback Format) error
	// Close releases the workbook.
	Close() error
}
