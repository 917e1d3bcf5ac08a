// Package profile provides durable player profiles. The whole profile list
// is persisted as a single JSON document that is loaded once at startup and
// rewritten on every mutation.
package profile

import (
	"time"

	"github.com/kunstkammer/dadaspiel/internal/content"
)

// MaxNameLength is the display-name limit in runes.
const MaxNameLength = 16

// Profile is one durable player identity.
type Profile struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Character content.CharacterID `json:"character"`

	// Progress maps case id to the count of minigames cleared within that
	// case. Values only ever grow (max-merged on update).
	Progress map[int]int `json:"progress"`

	HighScore int `json:"highScore"`

	// HasDadaToken is set at creation time only, when the profile picks
	// the hard-mode character after the game was completed with each of
	// the two other characters.
	HasDadaToken bool `json:"hasDadaToken,omitempty"`

	// GameCompleted is set once every case has been fully cleared.
	GameCompleted bool `json:"gameCompleted,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// Cleared returns the number of minigames cleared in the given case.
func (p *Profile) Cleared(caseID int) int {
	if p.Progress == nil {
		return 0
	}
	return p.Progress[caseID]
}
