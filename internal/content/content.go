// Package content provides the static case and minigame definitions for the
// arcade, loaded from YAML, plus the date-based availability filter.
package content

import "time"

// MinigameRef describes one minigame inside a case.
type MinigameRef struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Intro string `yaml:"intro"`
}

// Case is a themed group of minigames played in sequence.
type Case struct {
	ID        int           `yaml:"id"`
	Title     string        `yaml:"title"`
	Intro     string        `yaml:"intro"`
	Outro     string        `yaml:"outro"`
	Minigames []MinigameRef `yaml:"minigames"`
}

// BonusDate names a calendar day on which bonus content is available.
type BonusDate struct {
	Month time.Month `yaml:"month"`
	Day   int        `yaml:"day"`
}

// Matches reports whether the given date falls on the bonus day.
func (d BonusDate) Matches(date time.Time) bool {
	return date.Month() == d.Month && date.Day() == d.Day
}

// Library is the full read-only content set.
type Library struct {
	Cases []Case `yaml:"cases"`

	// BonusMinigames lists minigame ids that are exempt from loss
	// punishment: losing one of these advances the player as if won,
	// without score or life penalty.
	BonusMinigames []string `yaml:"bonus_minigames"`

	// BonusDate is the one calendar day on which bonus minigames appear
	// for the characters that normally do not see them.
	BonusDate BonusDate `yaml:"bonus_date"`
}

// Find returns the case with the given id, or false when absent.
func (l Library) Find(caseID int) (Case, bool) {
	for _, c := range l.Cases {
		if c.ID == caseID {
			return c, true
		}
	}
	return Case{}, false
}

// FindMinigame locates a minigame by id anywhere in the unfiltered library,
// returning its case and index.
func (l Library) FindMinigame(minigameID string) (Case, int, bool) {
	for _, c := range l.Cases {
		for i, mg := range c.Minigames {
			if mg.ID == minigameID {
				return c, i, true
			}
		}
	}
	return Case{}, 0, false
}

// IsBonusMinigame reports whether the id is in the exempt bonus set.
func (l Library) IsBonusMinigame(minigameID string) bool {
	for _, id := range l.BonusMinigames {
		if id == minigameID {
			return true
		}
	}
	return false
}
