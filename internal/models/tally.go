package models

import (
	"fmt"
	"sort"
)

// AnalysisRow is one rendered line of an analysis: a label and its count.
type AnalysisRow struct {
	Label string
	Count int
}

// Tally accumulates occurrence counts per label during a single pass.
type Tally map[string]int

// NewTally returns an empty tally.
func NewTally() Tally {
	return make(Tally)
}

// Add increments the count for label by one.
func (t Tally) Add(label string) {
	t[label]++
}

// Total returns the sum of all counts.
func (t Tally) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// Ranked returns one row per label ordered by descending count, ties broken
// by ascending label.
func (t Tally) Ranked() []AnalysisRow {
	rows := make([]AnalysisRow, 0, len(t))
	for label, count := range t {
		rows = append(rows, AnalysisRow{Label: label, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Label < rows[j].Label
	})
	return rows
}

// Sorted returns one row per label in ascending label order.
func (t Tally) Sorted() []AnalysisRow {
	rows := make([]AnalysisRow, 0, len(t))
	for label, count := range t {
		rows = append(rows, AnalysisRow{Label: label, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Label < rows[j].Label
	})
	return rows
}

// Over returns one row per label of universe, in universe order. Labels the
// tally never saw get a zero count; labels outside universe are ignored.
func (t Tally) Over(universe []string) []AnalysisRow {
	rows := make([]AnalysisRow, len(universe))
	for i, label := range universe {
		rows[i] = AnalysisRow{Label: label, Count: t[label]}
	}
	return rows
}

// SlotsPerDay is the size of the half-hour slot universe.
const SlotsPerDay = 48

// SlotUniverse returns the 48 half-hour labels of a day in chronological
// order, starting at "00:00-00:30".
func SlotUniverse() []string {
	slots := make([]string, 0, SlotsPerDay)
	for h := 0; h < 24; h++ {
		slots = append(slots, SlotLabel(h, 0), SlotLabel(h, 30))
	}
	return slots
}

// SlotLabel returns the label of the half-hour slot containing hour:minute.
func SlotLabel(hour, minute int) string {
	if minute < 30 {
		return fmt.Sprintf("%02d:00-%02d:30", hour, hour)
	}
	return fmt.Sprintf("%02d:30-%02d:00", hour, (hour+1)%24)
}
