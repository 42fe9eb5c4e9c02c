package sheetcsv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSingleSuffix(t *testing.T) {
	tests := []struct {
		mode     SelectionMode
		expected string
	}{
		{SelectByName("Raw Data"), "__Raw Data"},
		{SelectByName("A/B"), "__A_B"},
		{SelectByIndex(3), "__Sheet3"},
		{SelectFirstVisible(), ""},
	}

	for _, tt := range tests {
		got := SingleSuffix(tt.mode)
		if got != tt.expected {
			t.Errorf("SingleSuffix(%+v) = %q, expected %q", tt.mode, got, tt.expected)
		}
	}
}

func TestResolveOutputForSingleBlank(t *testing.T) {
	input := filepath.Join("data", "Book.xlsx")
	got := ResolveOutputForSingle(input, "", "__Raw")
	expected := filepath.Join("data", "Book__Raw.csv")
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestResolveOutputForSingleExistingDir(t *testing.T) {
	dir := t.TempDir()
	got := ResolveOutputForSingle("Book.xlsx", dir, "")
	expected := filepath.Join(dir, "Book.csv")
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestResolveOutputForSingleLiteralFile(t *testing.T) {
	got := ResolveOutputForSingle("Book.xlsx", filepath.Join("out", "target.csv"), "__Sheet2")
	expected := filepath.Join("out", "target.csv")
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestResolveOutputDirForAllBlank(t *testing.T) {
	base := t.TempDir()
	input := filepath.Join(base, "Book.xlsx")
	got, err := ResolveOutputDirForAll(input, "")
	if err != nil {
		t.Fatalf("ResolveOutputDirForAll failed: %v", err)
	}
	expected := filepath.Join(base, "Book-csv")
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
	if info, err := os.Stat(got); err != nil || !info.IsDir() {
		t.Errorf("Expected directory to be created at %q", got)
	}
}

func TestResolveOutputDirForAllExistingDir(t *testing.T) {
	dir := t.TempDir()
	got, err := ResolveOutputDirForAll("Book.xlsx", dir)
	if err != nil {
		t.Fatalf("ResolveOutputDirForAll failed: %v", err)
	}
	if got != dir {
		t.Errorf("Expected %q, got %q", dir, got)
	}
}

func TestResolveOutputDirForAllCsvPathUsesParent(t *testing.T) {
	base := t.TempDir()
	got, err := ResolveOutputDirForAll("Book.xlsx", filepath.Join(base, "out", "file.csv"))
	if err != nil {
		t.Fatalf("ResolveOutputDirForAll failed: %v", err)
	}
	expected := filepath.Join(base, "out")
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestResolveOutputDirForAllCreateFailure(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to create blocker file: %v", err)
	}

	_, err := ResolveOutputDirForAll("Book.xlsx", filepath.Join(blocker, "sub"))
	if !errors.Is(err, ErrDirectoryCreate) {
		t.Errorf("Expected ErrDirectoryCreate, got %v", err)
	}
}
