package standings

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// WindowSize is the number of rows the mobile widget shows.
const WindowSize = 3

// Window holds the selected slice plus the highlighted row's index within it
// (-1 when the highlight fell outside the table).
type Window struct {
	Rows      []Row `json:"rows"`
	Highlight int   `json:"highlight"`
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldName lowercases and strips combining marks so "Estádio" matches
// "estadio".
func foldName(name string) string {
	folded, _, err := transform.String(foldTransformer, name)
	if err != nil {
		folded = name
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// SelectWindow computes the focused slice around the team whose name contains
// fragment (case- and diacritic-insensitive). When no row matches,
// fallbackPosition (1-based) picks the highlight instead.
//
// Pre-season tables, where every row has zero points and zero matches played,
// carry no ordering signal, so the full list is re-sorted alphabetically by
// team name and the highlight re-detected before windowing. Tables of three
// rows or fewer are returned whole; larger ones yield the three consecutive
// rows starting at clamp(highlight-1, 0, len-3), keeping the highlighted team
// one row below the top of the window where possible.
func SelectWindow(rows []Row, fragment string, fallbackPosition int) Window {
	if len(rows) == 0 {
		return Window{Highlight: -1}
	}

	table := append([]Row(nil), rows...)
	if preSeason(table) {
		sort.SliceStable(table, func(i, j int) bool {
			return foldName(table[i].TeamName) < foldName(table[j].TeamName)
		})
	}

	highlight := findHighlight(table, fragment)
	if highlight < 0 && fallbackPosition >= 1 && fallbackPosition <= len(table) {
		highlight = fallbackPosition - 1
	}

	if len(table) <= WindowSize {
		return Window{Rows: table, Highlight: highlight}
	}

	anchor := highlight
	if anchor < 0 {
		anchor = 0
	}
	start := clamp(anchor-1, 0, len(table)-WindowSize)
	window := table[start : start+WindowSize]

	relative := -1
	if highlight >= start && highlight < start+WindowSize {
		relative = highlight - start
	}
	return Window{
		Rows:      append([]Row(nil), window...),
		Highlight: relative,
	}
}

func findHighlight(rows []Row, fragment string) int {
	needle := foldName(fragment)
	if needle == "" {
		return -1
	}
	for i, row := range rows {
		if strings.Contains(foldName(row.TeamName), needle) {
			return i
		}
	}
	return -1
}

func preSeason(rows []Row) bool {
	for _, row := range rows {
		if row.Points != 0 || row.MatchesPlayed != 0 {
			return false
		}
	}
	return true
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
