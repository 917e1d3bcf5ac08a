package profile

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/kunstkammer/dadaspiel/internal/content"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return Open(t.TempDir(), log.New(io.Discard))
}

func TestCreateAndSelect(t *testing.T) {
	s := newTestStore(t)

	p := s.Create("Hannah", content.CharacterArp)
	if p == nil {
		t.Fatal("Create returned nil")
	}
	if p.ID == "" {
		t.Error("profile should get a generated id")
	}
	if s.Active() != p {
		t.Error("a created profile should become active")
	}

	s.Deselect()
	if s.Active() != nil {
		t.Error("Deselect should clear the active profile")
	}

	if got := s.Select(p.ID); got != p {
		t.Error("Select should activate the profile by id")
	}
	if got := s.Select("nope"); got != nil {
		t.Error("Select of unknown id should return nil")
	}
	if s.Active() != p {
		t.Error("failed Select must not clear the active profile")
	}
}

func TestCreateRejectsUnknownCharacter(t *testing.T) {
	s := newTestStore(t)
	if p := s.Create("X", "duchamp"); p != nil {
		t.Error("Create with unknown character should return nil")
	}
	if len(s.All()) != 0 {
		t.Error("no profile should be stored")
	}
}

func TestNameTruncation(t *testing.T) {
	s := newTestStore(t)
	p := s.Create("ABCDEFGHIJKLMNOPQRSTU", content.CharacterKiki)
	if got := len([]rune(p.Name)); got != MaxNameLength {
		t.Errorf("name length = %d, expected %d", got, MaxNameLength)
	}
}

func TestRoundTripAfterEveryMutation(t *testing.T) {
	dir := t.TempDir()
	s := Open(dir, log.New(io.Discard))

	p := s.Create("Emmy", content.CharacterKiki)
	s.RecordProgress(p.ID, 1, 2)
	s.RecordHighScore(p.ID, 1750)
	s.MarkCompleted(p.ID)

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("reading store file: %v", err)
	}
	var onDisk []*Profile
	if err := json.Unmarshal(data, &onDisk); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(onDisk) != 1 {
		t.Fatalf("expected 1 profile on disk, got %d", len(onDisk))
	}
	if !reflect.DeepEqual(onDisk[0].Progress, p.Progress) ||
		onDisk[0].HighScore != p.HighScore ||
		onDisk[0].GameCompleted != p.GameCompleted ||
		onDisk[0].Name != p.Name {
		t.Errorf("on-disk profile %+v differs from in-memory %+v", onDisk[0], p)
	}

	// A fresh store sees the same data.
	reloaded := Open(dir, log.New(io.Discard))
	if len(reloaded.All()) != 1 || reloaded.All()[0].HighScore != 1750 {
		t.Error("reloaded store should match persisted state")
	}
}

func TestCorruptStoreFallsBackToEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := Open(dir, log.New(io.Discard))
	if len(s.All()) != 0 {
		t.Error("corrupt store should degrade to an empty list")
	}
	// And it must still be writable afterwards.
	if p := s.Create("Tzara", content.CharacterArp); p == nil {
		t.Error("store should accept new profiles after corruption")
	}
}

func TestProgressIsMonotonic(t *testing.T) {
	s := newTestStore(t)
	p := s.Create("Arp", content.CharacterArp)

	s.RecordProgress(p.ID, 3, 2)
	s.RecordProgress(p.ID, 3, 1) // replay of an earlier minigame
	if p.Cleared(3) != 2 {
		t.Errorf("progress regressed to %d, expected 2", p.Cleared(3))
	}
	s.RecordProgress(p.ID, 3, 3)
	if p.Cleared(3) != 3 {
		t.Errorf("progress = %d, expected 3", p.Cleared(3))
	}
}

func TestHighScoreIsMonotonic(t *testing.T) {
	s := newTestStore(t)
	p := s.Create("Arp", content.CharacterArp)

	s.RecordHighScore(p.ID, 500)
	s.RecordHighScore(p.ID, 250)
	if p.HighScore != 500 {
		t.Errorf("high score = %d, expected 500", p.HighScore)
	}
}

func TestTwoPhaseDelete(t *testing.T) {
	s := newTestStore(t)
	a := s.Create("A", content.CharacterArp)
	b := s.Create("B", content.CharacterKiki)

	// Staging alone removes nothing.
	s.StageDelete(a.ID)
	if s.PendingDelete() != a {
		t.Error("PendingDelete should return the staged profile")
	}
	if len(s.All()) != 2 {
		t.Error("staging must not remove the profile")
	}

	// Cancel discards the staged id.
	s.CancelDelete()
	s.ConfirmDelete()
	if len(s.All()) != 2 {
		t.Error("confirm after cancel must be a no-op")
	}

	// Deleting the active profile clears the selection.
	s.Select(b.ID)
	s.StageDelete(b.ID)
	s.ConfirmDelete()
	if len(s.All()) != 1 {
		t.Fatalf("expected 1 profile after delete, got %d", len(s.All()))
	}
	if s.Active() != nil {
		t.Error("deleting the active profile should clear the selection")
	}
}

func TestDadaTokenEligibility(t *testing.T) {
	tests := []struct {
		name      string
		completed []content.CharacterID
		character content.CharacterID
		want      bool
	}{
		{"no completions", nil, content.HardCharacter, false},
		{"one of two", []content.CharacterID{content.CharacterArp}, content.HardCharacter, false},
		{"both others complete", []content.CharacterID{content.CharacterArp, content.CharacterKiki}, content.HardCharacter, true},
		{"eligible set, wrong character", []content.CharacterID{content.CharacterArp, content.CharacterKiki}, content.CharacterArp, false},
		{"hard completions do not count", []content.CharacterID{content.HardCharacter, content.HardCharacter}, content.HardCharacter, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore(t)
			for i, ch := range tc.completed {
				p := s.Create("done", ch)
				if p == nil {
					t.Fatalf("setup profile %d failed", i)
				}
				s.MarkCompleted(p.ID)
			}

			p := s.Create("candidate", tc.character)
			if p.HasDadaToken != tc.want {
				t.Errorf("HasDadaToken = %v, expected %v", p.HasDadaToken, tc.want)
			}
		})
	}
}
