package form

import (
	"fmt"
	"strings"
	"time"
)

var folderDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// FolderName builds the CDN folder name for a match gallery:
// "{yy}{mm}{dd}_{home}_{away}" with team names stripped to alphanumerics and
// whitespace runs collapsed to single underscores. Team names that clean down
// to the empty string are kept as empty segments, so pathological names can
// still collide.
func FolderName(matchDate, homeTeam, awayTeam string) (string, error) {
	parsed, err := parseMatchDate(matchDate)
	if err != nil {
		return "", err
	}
	stamp := parsed.Format("060102")
	return fmt.Sprintf("%s_%s_%s", stamp, cleanTeamName(homeTeam), cleanTeamName(awayTeam)), nil
}

// GalleryTitle builds the display title for a match gallery. Team names pass
// through verbatim.
func GalleryTitle(homeTeam, awayTeam string) string {
	return fmt.Sprintf("%s v %s Gallery", homeTeam, awayTeam)
}

func parseMatchDate(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("form: match date is required")
	}
	for _, layout := range folderDateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("form: unparseable match date %q", raw)
}

func cleanTeamName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), "_")
}
