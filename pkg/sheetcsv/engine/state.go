package engine

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strings"

	"sheetcsv/pkg/sheetcsv/models"
)

// readSheetStates reads per-sheet visibility from xl/workbook.xml inside the
// xlsx container. Sheets without a state attribute are visible.
func readSheetStates(xlsxPath string) (map[string]models.Visibility, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := readZipFile(&r.Reader, "xl/workbook.xml")
	if err != nil || data == nil {
		return map[string]models.Visibility{}, err
	}

	return parseSheetStates(data), nil
}

// parseSheetStates walks workbook.xml and maps sheet names to their state.
func parseSheetStates(data []byte) map[string]models.Visibility {
	result := make(map[string]models.Visibility)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var name, state string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					name = attr.Value
				case "state":
					state = attr.Value
				}
			}
			if name != "" {
				result[name] = parseState(state)
			}
		}
	}

	return result
}

func parseState(state string) models.Visibility {
	switch state {
	case "hidden":
		return models.Hidden
	case "veryHidden":
		return models.VeryHidden
	default:
		return models.Visible
	}
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}
