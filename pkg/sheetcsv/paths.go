package sheetcsv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputExt is the extension of every exported file.
const OutputExt = ".csv"

// ResolveInput resolves a possibly-relative input path against the working
// directory. It does not require the file to exist; callers verify existence
// before opening.
func ResolveInput(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("cannot resolve input path %q: %w", path, err)
	}
	return abs, nil
}

// SingleSuffix returns the file-name suffix used in single-sheet mode when no
// explicit output path is given: "__<sanitizedName>" when selecting by name,
// "__Sheet<N>" when selecting by index, and empty for the default
// first-visible selection.
func SingleSuffix(mode SelectionMode) string {
	switch mode.Kind {
	case KindByName:
		return "__" + SanitizeName(mode.Name)
	case KindByIndex:
		return fmt.Sprintf("__Sheet%d", mode.Index)
	default:
		return ""
	}
}

// ResolveOutputForSingle computes the target file for a single-sheet export.
// A blank output derives "<inputBase><suffix>.csv" next to the input; an
// existing directory gets the same derived name inside it; anything else is
// taken as the literal target file.
func ResolveOutputForSingle(inputPath, outputPath, suffix string) string {
	derived := inputBase(inputPath) + suffix + OutputExt
	if outputPath == "" {
		return filepath.Join(filepath.Dir(inputPath), derived)
	}
	if info, err := os.Stat(outputPath); err == nil && info.IsDir() {
		return filepath.Join(outputPath, derived)
	}
	return outputPath
}

// ResolveOutputDirForAll computes and creates the target directory for an
// all-sheets export. A blank output derives "<inputBase>-csv" next to the
// input; an existing directory is used as-is; a path ending in the output
// extension is replaced by its parent directory. Creation failure is fatal
// for the run.
func ResolveOutputDirForAll(inputPath, outputPath string) (string, error) {
	var dir string
	switch {
	case outputPath == "":
		dir = filepath.Join(filepath.Dir(inputPath), inputBase(inputPath)+"-csv")
	default:
		if info, err := os.Stat(outputPath); err == nil && info.IsDir() {
			dir = outputPath
			break
		}
		if strings.EqualFold(filepath.Ext(outputPath), OutputExt) {
			dir = filepath.Dir(outputPath)
			break
		}
		dir = outputPath
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDirectoryCreate, dir, err)
	}
	return dir, nil
}

// inputBase returns the input file name without directory or extension.
func inputBase(inputPath string) string {
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
