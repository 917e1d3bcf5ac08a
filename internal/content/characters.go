package content

// CharacterID identifies one of the playable characters.
type CharacterID string

const (
	// CharacterArp is the collage artist. Ability: Artist's Insight,
	// a once-per-case burst of slow motion.
	CharacterArp CharacterID = "arp"

	// CharacterCravan is the boxer-provocateur and the hard-mode
	// character: a chance of inverted rules at every case start.
	// Abilities: Fourth Wall (forfeit the case, once per session) and
	// Absurd Edge (token-gated inverted bonus round, once per session).
	CharacterCravan CharacterID = "cravan"

	// CharacterKiki is the cabaret muse. Ability: Conceptual Mistake,
	// forgiving the first mistake of each minigame. Her losses have a
	// chance of glitching into cosmetic wins.
	CharacterKiki CharacterID = "kiki"
)

// HardCharacter is the character whose runs count as hard mode.
const HardCharacter = CharacterCravan

// GlitchCharacter is the character whose losses may glitch into wins.
const GlitchCharacter = CharacterKiki

// CharacterInfo describes a playable character for selection screens.
type CharacterInfo struct {
	ID      CharacterID
	Name    string
	Ability string
	Tagline string
}

// Characters lists all playable characters in display order.
var Characters = []CharacterInfo{
	{
		ID:      CharacterArp,
		Name:    "Arp",
		Ability: "Artist's Insight",
		Tagline: "sees the world at half speed, once per case",
	},
	{
		ID:      CharacterCravan,
		Name:    "Cravan",
		Ability: "Fourth Wall / Absurd Edge",
		Tagline: "hard mode; may walk out of a case entirely",
	},
	{
		ID:      CharacterKiki,
		Name:    "Kiki",
		Ability: "Conceptual Mistake",
		Tagline: "her first mistake is always intentional",
	},
}

// Valid reports whether the id names a playable character.
func (c CharacterID) Valid() bool {
	for _, info := range Characters {
		if info.ID == c {
			return true
		}
	}
	return false
}

// Info returns display metadata for the character, or a zero value for
// unknown ids.
func (c CharacterID) Info() CharacterInfo {
	for _, info := range Characters {
		if info.ID == c {
			return info
		}
	}
	return CharacterInfo{}
}

// Others returns the two characters that are not c, in display order.
func (c CharacterID) Others() []CharacterID {
	var out []CharacterID
	for _, info := range Characters {
		if info.ID != c {
			out = append(out, info.ID)
		}
	}
	return out
}
