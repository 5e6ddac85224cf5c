package standings

import (
	"strings"

	"mlb-fanbot/internal/domain"
)

// Unknown is returned when no standing can be named for a team.
const Unknown = "unknown"

// placeNames covers the five ranked positions of an MLB division.
var placeNames = [...]string{"first", "second", "third", "fourth", "last"}

// Rank returns the named division place of the first standings entry whose
// team name appears in the user-supplied team string. Entries arrive
// grouped by league and division, ranked top to bottom, so the place is
// the entry's position since its division key last changed. A division
// with more than five entries has no name for the extras; those resolve
// to Unknown rather than indexing past the table.
func Rank(team string, entries []domain.StandingEntry) string {
	div := ""
	placeIdx := 0

	for _, entry := range entries {
		currentDiv := entry.League + entry.Division
		if div == "" || div != currentDiv {
			div = currentDiv
			placeIdx = 0
		} else {
			placeIdx++
		}

		if strings.Contains(team, entry.Name) {
			if placeIdx >= len(placeNames) {
				return Unknown
			}
			return placeNames[placeIdx]
		}
	}

	return Unknown
}
