package schedule

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestParseHierarchy(t *testing.T) {
	tests := []struct {
		input     string
		hierarchy []string
		leaf      string
	}{
		{"Players - Planners - AOs", []string{"Players", "Planners"}, "AOs"},
		{"Players - Commanders", []string{"Players"}, "Commanders"},
		{"Control", nil, "Control"},
		{"A - B - C - D", []string{"A", "B", "C"}, "D"},
	}

	for _, tt := range tests {
		hierarchy, leaf := ParseHierarchy(tt.input)
		if !slices.Equal(hierarchy, tt.hierarchy) || leaf != tt.leaf {
			t.Errorf("ParseHierarchy(%q) = %v, %q, expected %v, %q",
				tt.input, hierarchy, leaf, tt.hierarchy, tt.leaf)
		}
	}
}

func TestGenerateTimeSlots(t *testing.T) {
	slots, err := GenerateTimeSlots("0900", "1100", 30)
	if err != nil {
		t.Fatalf("GenerateTimeSlots failed: %v", err)
	}
	expected := []string{"0900", "0930", "1000", "1030", "1100"}
	if !slices.Equal(slots, expected) {
		t.Errorf("Expected %v, got %v", expected, slots)
	}
}

func TestGenerateTimeSlotsMidnightEnd(t *testing.T) {
	slots, err := GenerateTimeSlots("2300", "2400", 30)
	if err != nil {
		t.Fatalf("GenerateTimeSlots failed: %v", err)
	}
	expected := []string{"2300", "2330", "2400"}
	if !slices.Equal(slots, expected) {
		t.Errorf("Expected %v, got %v", expected, slots)
	}
}

func TestGenerateTimeSlotsOvernight(t *testing.T) {
	slots, err := GenerateTimeSlots("2230", "0100", 30)
	if err != nil {
		t.Fatalf("GenerateTimeSlots failed: %v", err)
	}
	expected := []string{"2230", "2300", "2330", "2400", "0030", "0100"}
	if !slices.Equal(slots, expected) {
		t.Errorf("Expected %v, got %v", expected, slots)
	}
}

func TestGenerateTimeSlotsInvalid(t *testing.T) {
	if _, err := GenerateTimeSlots("9am", "1700", 30); err == nil {
		t.Errorf("Expected error for malformed start time")
	}
	if _, err := GenerateTimeSlots("0900", "1700", 0); err == nil {
		t.Errorf("Expected error for non-positive interval")
	}
}

func TestBuildGridRequiresTimePeriod(t *testing.T) {
	b := NewBuilder()
	b.AddGroup("Control")
	if _, err := b.BuildGrid(); !errors.Is(err, ErrNoTimePeriod) {
		t.Errorf("Expected ErrNoTimePeriod, got %v", err)
	}
}

func TestBuildGridLayout(t *testing.T) {
	b := NewBuilder()
	if err := b.SetTimePeriod("0700", "0800", 30); err != nil {
		t.Fatalf("SetTimePeriod failed: %v", err)
	}

	b.AddActivity("Players - Echelon 2 & 3 - CPF", "0700", "CUB", "")
	b.AddActivity("Players - Echelon 2 & 3 - Commanders", "0730", "Submit Msns", "TOC")
	b.AddActivity("Players - Planners - Leads", "0700", "Direct Planning", "")

	grid, err := b.BuildGrid()
	if err != nil {
		t.Fatalf("BuildGrid failed: %v", err)
	}

	// Header, spacer, three group rows.
	if len(grid) != 5 {
		t.Fatalf("Expected 5 rows, got %d", len(grid))
	}

	header := grid[0]
	if !slices.Equal(header, []string{"", "", "", "0700", "0730", "0800"}) {
		t.Errorf("Unexpected header: %v", header)
	}

	first := grid[2]
	if first[0] != "Players" || first[1] != "Echelon 2 & 3" {
		t.Errorf("First group row missing hierarchy labels: %v", first)
	}
	if first[2] != "CPF" {
		t.Errorf("Unexpected leaf cell: %q", first[2])
	}
	if first[3] != "CUB" {
		t.Errorf("Activity not placed in its slot: %v", first)
	}

	second := grid[3]
	// Repeated ancestors are blanked on subsequent rows.
	if second[0] != "" || second[1] != "" {
		t.Errorf("Expected blanked ancestor labels, got %v", second)
	}

	third := grid[4]
	if third[0] != "" || third[1] != "Planners" || third[2] != "Leads" {
		t.Errorf("Unexpected third row: %v", third)
	}
	if third[3] != "Direct Planning" {
		t.Errorf("Activity not placed in its slot: %v", third)
	}
}

func TestBuildGridLocations(t *testing.T) {
	b := NewBuilder()
	if err := b.SetTimePeriod("0900", "0930", 30); err != nil {
		t.Fatalf("SetTimePeriod failed: %v", err)
	}
	b.AddActivity("Ops - Watch", "0900", "Shift change", "JOC")
	b.AddActivity("Ops - Watch", "0930", "Brief", "Annex")

	grid, err := b.BuildGrid()
	if err != nil {
		t.Fatalf("BuildGrid failed: %v", err)
	}
	// Two-level groups put the leaf in the second column; locations land in
	// the otherwise-empty third column.
	row := grid[2]
	if row[1] != "Watch" {
		t.Errorf("Expected leaf in second column, got %v", row)
	}
	if row[2] != "(JOC, Annex)" {
		t.Errorf("Expected locations in third column, got %q", row[2])
	}
}

func TestBuildGridLocationsThreeLevels(t *testing.T) {
	b := NewBuilder()
	if err := b.SetTimePeriod("0900", "0930", 30); err != nil {
		t.Fatalf("SetTimePeriod failed: %v", err)
	}
	b.AddActivity("Ops - Watch - Floor", "0900", "Shift change", "JOC")

	grid, err := b.BuildGrid()
	if err != nil {
		t.Fatalf("BuildGrid failed: %v", err)
	}
	row := grid[2]
	if row[2] != "Floor (JOC)" {
		t.Errorf("Expected locations appended to leaf, got %q", row[2])
	}
}

func TestWriteCSV(t *testing.T) {
	b := NewBuilder()
	if err := b.SetTimePeriod("0900", "1000", 30); err != nil {
		t.Fatalf("SetTimePeriod failed: %v", err)
	}
	b.AddActivity("Control", "0900", "STARTEX", "")

	var buf bytes.Buffer
	if err := b.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 CSV lines, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != ",,,0900,0930,1000" {
		t.Errorf("Unexpected header line: %q", lines[0])
	}
	if lines[2] != "Control,,,STARTEX,," {
		t.Errorf("Unexpected group line: %q", lines[2])
	}
}
