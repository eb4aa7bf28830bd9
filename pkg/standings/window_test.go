package standings

import (
	"fmt"
	"testing"
)

func leagueOf(size int) []Row {
	rows := make([]Row, size)
	for i := range rows {
		rows[i] = Row{
			Position:      i + 1,
			TeamName:      fmt.Sprintf("Team %02d", i+1),
			MatchesPlayed: 10,
			Points:        3 * (size - i),
		}
	}
	return rows
}

func TestSelectWindowCentersHighlight(t *testing.T) {
	t.Parallel()

	rows := leagueOf(15)
	window := SelectWindow(rows, "Team 10", 0)
	if len(window.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(window.Rows))
	}
	// Highlight at 0-based index 9: window covers indices 8..10.
	if window.Rows[0].Position != 9 || window.Rows[2].Position != 11 {
		t.Fatalf("unexpected window %+v", window.Rows)
	}
	if window.Highlight != 1 {
		t.Fatalf("expected highlight one row down, got %d", window.Highlight)
	}
}

func TestSelectWindowClampsAtEnds(t *testing.T) {
	t.Parallel()

	rows := leagueOf(15)

	top := SelectWindow(rows, "Team 01", 0)
	if top.Rows[0].Position != 1 || top.Rows[2].Position != 3 {
		t.Fatalf("unexpected top window %+v", top.Rows)
	}
	if top.Highlight != 0 {
		t.Fatalf("expected highlight at window start, got %d", top.Highlight)
	}

	bottom := SelectWindow(rows, "Team 15", 0)
	if bottom.Rows[0].Position != 13 || bottom.Rows[2].Position != 15 {
		t.Fatalf("unexpected bottom window %+v", bottom.Rows)
	}
	if bottom.Highlight != 2 {
		t.Fatalf("expected highlight at window end, got %d", bottom.Highlight)
	}
}

func TestSelectWindowSmallTableReturnsAll(t *testing.T) {
	t.Parallel()

	rows := leagueOf(3)
	window := SelectWindow(rows, "Team 02", 0)
	if len(window.Rows) != 3 || window.Highlight != 1 {
		t.Fatalf("unexpected window %+v highlight %d", window.Rows, window.Highlight)
	}

	window = SelectWindow(nil, "anything", 1)
	if len(window.Rows) != 0 || window.Highlight != -1 {
		t.Fatalf("expected empty window, got %+v", window)
	}
}

func TestSelectWindowFallbackPosition(t *testing.T) {
	t.Parallel()

	rows := leagueOf(10)
	window := SelectWindow(rows, "Nonexistent FC", 5)
	if window.Rows[1].Position != 5 {
		t.Fatalf("expected fallback highlight at position 5, got %+v", window.Rows)
	}
}

func TestSelectWindowDiacriticInsensitiveMatch(t *testing.T) {
	t.Parallel()

	rows := leagueOf(5)
	rows[3].TeamName = "Deportivo Alavés"
	window := SelectWindow(rows, "alaves", 0)
	if window.Rows[window.Highlight].TeamName != "Deportivo Alavés" {
		t.Fatalf("expected diacritic-folded match, got %+v", window)
	}
}

func TestSelectWindowPreSeasonAlphabetical(t *testing.T) {
	t.Parallel()

	names := []string{
		"Wick Academy", "Banks o' Dee", "Turriff United", "Clachnacuddin", "Deveronvale",
		"Forres Mechanics", "Formartine United", "Fraserburgh", "Huntly", "Inverurie Locos",
		"Keith", "Lossiemouth", "Nairn County", "Rothes", "Strathspey Thistle",
	}
	rows := make([]Row, len(names))
	for i, name := range names {
		rows[i] = Row{TeamName: name} // zero points, zero played
	}

	window := SelectWindow(rows, "Huntly", 0)
	if len(window.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(window.Rows))
	}
	// Alphabetically Huntly sits between Fraserburgh and Inverurie Locos.
	want := []string{"Fraserburgh", "Huntly", "Inverurie Locos"}
	for i, name := range want {
		if window.Rows[i].TeamName != name {
			t.Fatalf("expected %v, got %+v", want, window.Rows)
		}
	}
	if window.Highlight != 1 {
		t.Fatalf("expected highlight re-detected after sort, got %d", window.Highlight)
	}
}
