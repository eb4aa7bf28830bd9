// Package testsupport provides shared fixtures for package tests.
package testsupport

import (
	"fmt"
	"testing"

	"github.com/goliatone/go-clubadmin/pkg/lookup"
	"github.com/goliatone/go-clubadmin/pkg/schema"
	"github.com/goliatone/go-clubadmin/pkg/standings"
)

// MustSchema parses a YAML or JSON schema document, failing the test on any
// parse or validation error.
func MustSchema(t *testing.T, raw string) schema.Schema {
	t.Helper()

	doc, err := schema.Parse([]byte(raw))
	if err != nil {
		t.Fatalf("parse schema fixture: %v", err)
	}
	return doc
}

// Catalog returns a small option catalog with teams and one recent fixture
// carrying full derivation metadata.
func Catalog() *lookup.Catalog {
	return &lookup.Catalog{
		Teams: []schema.Option{
			{Value: "1", Label: "Brechin City"},
			{Value: "2", Label: "Brora Rangers"},
		},
		Seasons: []schema.Option{
			{Value: "7", Label: "2025/26"},
		},
		RecentMatches: []schema.Option{
			{Value: "42", Label: "Brechin City v Brora Rangers",
				MatchDate: "2025-06-15", HomeTeam: "Brechin City", AwayTeam: "Brora Rangers"},
		},
	}
}

// LeagueRows returns a ten-team mid-season table with the club sitting 7th.
func LeagueRows() []standings.Row {
	rows := make([]standings.Row, 0, 10)
	for i := 1; i <= 10; i++ {
		rows = append(rows, standings.Row{
			Position:      i,
			TeamName:      fmt.Sprintf("Team %02d", i),
			MatchesPlayed: 20,
			Points:        60 - i*3,
		})
	}
	rows[6].TeamName = "Banks o' Dee"
	return rows
}
