// Package schedule builds hierarchical time-grid schedules and writes them as
// delimited text. Group names use " - " separated levels, e.g.
// "Players - Planners - Leads"; the grid indents up to three levels and
// blanks repeated ancestor labels.
package schedule

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"
)

// ErrNoTimePeriod indicates BuildGrid was called before SetTimePeriod.
var ErrNoTimePeriod = errors.New("time period must be set before building the schedule")

// Group holds one schedule row's data.
type Group struct {
	// Hierarchy is the list of ancestor levels, outermost first.
	Hierarchy []string
	// Leaf is the group's own name.
	Leaf string
	// Activities maps time slots ("HHMM") to activity descriptions.
	Activities map[string]string
	// Locations lists the group's locations, in insertion order.
	Locations []string
}

// Builder accumulates groups and activities and lays them out on a time grid.
type Builder struct {
	timeSlots []string
	groups    map[string]*Group
	order     []string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{groups: make(map[string]*Group)}
}

// ParseHierarchy splits a hierarchical group name into its ancestor levels
// and leaf name. A name without the " - " separator is a single leaf.
func ParseHierarchy(name string) ([]string, string) {
	if !strings.Contains(name, " - ") {
		return nil, name
	}
	parts := strings.Split(name, " - ")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts[:len(parts)-1], parts[len(parts)-1]
}

// GenerateTimeSlots generates "HHMM" slots from start to end inclusive, at
// the given interval. "2400" as the end means midnight of the following day;
// an end at or before the start wraps overnight.
func GenerateTimeSlots(start, end string, intervalMinutes int) ([]string, error) {
	if intervalMinutes <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %d", intervalMinutes)
	}

	startDT, err := parseClock(start)
	if err != nil {
		return nil, err
	}

	var endDT time.Time
	if end == "2400" {
		endDT = startDT.Truncate(24 * time.Hour).AddDate(0, 0, 1)
	} else {
		endDT, err = parseClock(end)
		if err != nil {
			return nil, err
		}
		if !endDT.After(startDT) {
			endDT = endDT.AddDate(0, 0, 1)
		}
	}

	var slots []string
	interval := time.Duration(intervalMinutes) * time.Minute
	for cur := startDT; !cur.After(endDT); cur = cur.Add(interval) {
		slot := cur.Format("1504")
		// Midnight reached after the start renders as 2400.
		if slot == "0000" && cur.After(startDT) {
			slot = "2400"
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// parseClock parses "HHMM" onto a fixed reference day.
func parseClock(s string) (time.Time, error) {
	t, err := time.Parse("1504", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: expected HHMM", s)
	}
	return time.Date(2000, 1, 1, t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}

// SetTimePeriod sets the schedule's time axis.
func (b *Builder) SetTimePeriod(start, end string, intervalMinutes int) error {
	slots, err := GenerateTimeSlots(start, end, intervalMinutes)
	if err != nil {
		return err
	}
	b.timeSlots = slots
	return nil
}

// TimeSlots returns the current time axis.
func (b *Builder) TimeSlots() []string {
	return b.timeSlots
}

// AddGroup registers a group by its hierarchical name. Adding an existing
// group is a no-op.
func (b *Builder) AddGroup(name string) {
	if _, ok := b.groups[name]; ok {
		return
	}
	hierarchy, leaf := ParseHierarchy(name)
	b.groups[name] = &Group{
		Hierarchy:  hierarchy,
		Leaf:       leaf,
		Activities: make(map[string]string),
	}
	b.order = append(b.order, name)
}

// AddActivity records an activity for a group at a time slot, registering the
// group if needed. A non-empty location is appended to the group's locations
// once.
func (b *Builder) AddActivity(groupName, timeSlot, activity, location string) {
	b.AddGroup(groupName)
	g := b.groups[groupName]
	g.Activities[timeSlot] = activity
	if location != "" && !slices.Contains(g.Locations, location) {
		g.Locations = append(g.Locations, location)
	}
}

// BuildGrid lays the schedule out as rows of cells: a header row with the
// time slots, a spacer row, then one row per group sorted by hierarchy.
// Repeated top- and second-level labels are blanked so each appears once.
func (b *Builder) BuildGrid() ([][]string, error) {
	if len(b.timeSlots) == 0 {
		return nil, ErrNoTimePeriod
	}

	header := append([]string{"", "", ""}, b.timeSlots...)
	spacer := make([]string, len(header))
	grid := [][]string{header, spacer}

	names := make([]string, len(b.order))
	copy(names, b.order)
	slices.SortFunc(names, func(a, bn string) int {
		return slices.Compare(b.groups[a].key(), b.groups[bn].key())
	})

	var currentTop, currentSecond string
	for _, name := range names {
		g := b.groups[name]
		key := g.key()

		var row []string
		switch len(key) {
		case 1:
			currentTop = key[0]
			currentSecond = ""
			row = []string{currentTop, "", ""}
		case 2:
			top := key[0]
			if top == currentTop {
				top = ""
			}
			currentTop = key[0]
			currentSecond = key[1]
			row = []string{top, currentSecond, ""}
		case 3:
			top, second := key[0], key[1]
			if top == currentTop {
				top = ""
			}
			if second == currentSecond {
				second = ""
			}
			currentTop = key[0]
			currentSecond = key[1]
			row = []string{top, second, key[2]}
		default:
			// Deeper hierarchies collapse to the leaf in the third column.
			row = []string{"", "", g.Leaf}
		}

		if len(g.Locations) > 0 {
			loc := "(" + strings.Join(g.Locations, ", ") + ")"
			if row[2] != "" {
				row[2] += " " + loc
			} else {
				row[2] = loc
			}
		}

		for _, slot := range b.timeSlots {
			row = append(row, g.Activities[slot])
		}
		grid = append(grid, row)
	}

	return grid, nil
}

// key returns the group's full hierarchy path including the leaf.
func (g *Group) key() []string {
	if len(g.Hierarchy) == 0 {
		return []string{g.Leaf}
	}
	return append(slices.Clone(g.Hierarchy), g.Leaf)
}

// WriteCSV writes the schedule grid to w as CSV.
func (b *Builder) WriteCSV(w io.Writer) error {
	grid, err := b.BuildGrid()
	if err != nil {
		return err
	}
	return csv.NewWriter(w).WriteAll(grid)
}
