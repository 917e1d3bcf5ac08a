package content

import (
	"testing"
	"time"
)

func testLibrary() Library {
	return Library{
		Cases: []Case{
			{
				ID:    1,
				Title: "Cabaret Voltaire",
				Minigames: []MinigameRef{
					{ID: "soupe"},
					{ID: "cabaret"},
				},
			},
			{
				ID:    2,
				Title: "Encore",
				Minigames: []MinigameRef{
					{ID: "rappel"},
				},
			},
		},
		BonusMinigames: []string{"cabaret", "rappel"},
		BonusDate:      BonusDate{Month: time.February, Day: 5},
	}
}

func TestFilterRemovesBonusMinigamesOffDate(t *testing.T) {
	lib := testLibrary()
	ordinary := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	for _, ch := range []CharacterID{CharacterArp, CharacterKiki} {
		cases := FilterCases(lib, ch, ordinary, false)

		if len(cases) != 1 {
			t.Fatalf("%s: expected 1 case after filtering, got %d", ch, len(cases))
		}
		if cases[0].ID != 1 {
			t.Errorf("%s: the emptied case should be dropped, kept case %d", ch, cases[0].ID)
		}
		if len(cases[0].Minigames) != 1 || cases[0].Minigames[0].ID != "soupe" {
			t.Errorf("%s: bonus minigame should be removed, got %+v", ch, cases[0].Minigames)
		}
	}
}

func TestFilterKeepsBonusOnTheDay(t *testing.T) {
	lib := testLibrary()
	cabaretDay := time.Date(2026, time.February, 5, 9, 0, 0, 0, time.UTC)

	cases := FilterCases(lib, CharacterArp, cabaretDay, false)
	if len(cases) != 2 {
		t.Fatalf("expected full list on the bonus day, got %d cases", len(cases))
	}
	if len(cases[0].Minigames) != 2 {
		t.Errorf("bonus minigame should be present, got %+v", cases[0].Minigames)
	}
}

func TestFilterHardCharacterSeesEverything(t *testing.T) {
	lib := testLibrary()
	ordinary := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	cases := FilterCases(lib, HardCharacter, ordinary, false)
	if len(cases) != 2 {
		t.Fatalf("hard character should see all cases, got %d", len(cases))
	}
}

func TestFilterDebugBypass(t *testing.T) {
	lib := testLibrary()
	ordinary := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	cases := FilterCases(lib, CharacterKiki, ordinary, true)
	if len(cases) != 2 {
		t.Fatalf("debug flag should bypass filtering, got %d cases", len(cases))
	}
}

func TestFilterDoesNotMutateLibrary(t *testing.T) {
	lib := testLibrary()
	ordinary := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	FilterCases(lib, CharacterArp, ordinary, false)

	if len(lib.Cases[0].Minigames) != 2 {
		t.Error("filtering must not mutate the library in place")
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	lib, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(lib.Cases) == 0 {
		t.Fatal("embedded library should have cases")
	}
	if !lib.IsBonusMinigame("cabaret") {
		t.Error("cabaret should be a bonus minigame in the default library")
	}
	if _, _, ok := lib.FindMinigame("typo"); !ok {
		t.Error("typo should exist in the default library")
	}
}

func TestCharacterOthers(t *testing.T) {
	others := CharacterCravan.Others()
	if len(others) != 2 {
		t.Fatalf("Others() = %v, expected two characters", others)
	}
	for _, ch := range others {
		if ch == CharacterCravan {
			t.Error("Others() must not include the character itself")
		}
	}
}
