// Package standings normalises heterogeneous league-table payloads and
// computes the fixed-size window the mobile widget shows around a highlighted
// team.
package standings

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Row is one normalised team-standing record. Position and TeamLogo stay at
// their zero values when the payload omits them.
type Row struct {
	Position       int    `json:"position,omitempty"`
	TeamName       string `json:"team_name"`
	TeamLogo       string `json:"team_logo,omitempty"`
	MatchesPlayed  int    `json:"matches_played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

// Parse accepts the shapes upstream feeds deliver: an already-decoded row
// slice, a JSON-encoded string of one, or typed rows. Anything else yields an
// empty table.
func Parse(input any) ([]Row, error) {
	switch v := input.(type) {
	case nil:
		return nil, nil
	case []Row:
		return append([]Row(nil), v...), nil
	case []any:
		return normalizeAll(v), nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil, nil
		}
		var decoded any
		if err := json.Unmarshal([]byte(trimmed), &decoded); err != nil {
			return nil, fmt.Errorf("standings: decode payload: %w", err)
		}
		rows, ok := decoded.([]any)
		if !ok {
			return nil, fmt.Errorf("standings: payload is not an array")
		}
		return normalizeAll(rows), nil
	case []byte:
		return Parse(string(v))
	default:
		return nil, nil
	}
}

func normalizeAll(rows []any) []Row {
	out := make([]Row, 0, len(rows))
	for _, raw := range rows {
		record, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		row, ok := normalizeRow(record)
		if !ok {
			continue
		}
		out = append(out, row)
	}
	return out
}

// normalizeRow pulls each semantic field from either snake_case or camelCase
// keys, first present wins. Rows without a usable team name are dropped.
func normalizeRow(record map[string]any) (Row, bool) {
	name := pickString(record, "team_name", "teamName", "team", "name")
	if strings.TrimSpace(name) == "" {
		return Row{}, false
	}
	return Row{
		Position:       pickInt(record, "position", "pos"),
		TeamName:       name,
		TeamLogo:       pickString(record, "team_logo", "teamLogo", "logo"),
		MatchesPlayed:  pickInt(record, "matches_played", "matchesPlayed", "played"),
		Wins:           pickInt(record, "wins", "won"),
		Draws:          pickInt(record, "draws", "drawn"),
		Losses:         pickInt(record, "losses", "lost"),
		GoalsFor:       pickInt(record, "goals_for", "goalsFor"),
		GoalsAgainst:   pickInt(record, "goals_against", "goalsAgainst"),
		GoalDifference: pickInt(record, "goal_difference", "goalDifference"),
		Points:         pickInt(record, "points", "pts"),
	}, true
}

func pickString(record map[string]any, keys ...string) string {
	for _, key := range keys {
		value, ok := record[key]
		if !ok || value == nil {
			continue
		}
		if s, ok := value.(string); ok {
			return s
		}
		return fmt.Sprint(value)
	}
	return ""
}

func pickInt(record map[string]any, keys ...string) int {
	for _, key := range keys {
		value, ok := record[key]
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case float64:
			return int(v)
		case int:
			return v
		case int64:
			return int(v)
		case json.Number:
			if n, err := v.Int64(); err == nil {
				return int(n)
			}
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return n
			}
		}
		return 0
	}
	return 0
}
