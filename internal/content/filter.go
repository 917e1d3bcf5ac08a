package content

import "time"

// FilterCases returns the case list as seen by the given character on the
// given date. It is a pure function; callers inject the current date so the
// filter stays testable.
//
// Bonus minigames are always visible to the hard-mode character. The other
// two characters only see them on the bonus day; on any other day the bonus
// minigames are removed, and a case emptied by the removal is dropped from
// the list. debugAll bypasses all filtering.
func FilterCases(l Library, character CharacterID, date time.Time, debugAll bool) []Case {
	if debugAll || character == HardCharacter || l.BonusDate.Matches(date) {
		return l.Cases
	}

	filtered := make([]Case, 0, len(l.Cases))
	for _, c := range l.Cases {
		kept := make([]MinigameRef, 0, len(c.Minigames))
		for _, mg := range c.Minigames {
			if l.IsBonusMinigame(mg.ID) {
				continue
			}
			kept = append(kept, mg)
		}
		if len(kept) == 0 {
			continue
		}
		c.Minigames = kept
		filtered = append(filtered, c)
	}
	return filtered
}
