package profile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/kunstkammer/dadaspiel/internal/content"
)

// FileName is the fixed key under which the profile list is stored inside
// the data directory.
const FileName = "profiles.json"

// Store holds the profile list in memory and mirrors every mutation to disk.
//
// Storage failures never propagate to callers: a missing or corrupt file
// degrades to an empty list, and write errors are logged and swallowed.
// Availability of the play session outweighs strictness here.
type Store struct {
	path   string
	logger *log.Logger

	profiles      []*Profile
	activeID      string
	pendingDelete string
}

// Open loads the profile list from dir. The directory is created if needed.
func Open(dir string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	s := &Store{
		path:   filepath.Join(dir, FileName),
		logger: logger,
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("profiles: cannot create data directory", "dir", dir, "error", err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("profiles: cannot read store, starting empty", "path", s.path, "error", err)
		}
		return s
	}
	if err := json.Unmarshal(data, &s.profiles); err != nil {
		logger.Warn("profiles: corrupt store, starting empty", "path", s.path, "error", err)
		s.profiles = nil
	}
	return s
}

// save rewrites the whole list. Best effort: errors are logged, not returned.
func (s *Store) save() {
	data, err := json.MarshalIndent(s.profiles, "", "  ")
	if err != nil {
		s.logger.Error("profiles: cannot marshal store", "error", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		s.logger.Error("profiles: cannot write store", "path", s.path, "error", err)
	}
}

// All returns the profiles in creation order.
func (s *Store) All() []*Profile {
	return s.profiles
}

// Active returns the currently selected profile, or nil.
func (s *Store) Active() *Profile {
	return s.byID(s.activeID)
}

func (s *Store) byID(id string) *Profile {
	if id == "" {
		return nil
	}
	for _, p := range s.profiles {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Create adds a new profile, persists, and activates it. The name is
// truncated to MaxNameLength runes. The Dada Token is granted when the new
// profile picks the hard-mode character and the existing set already holds a
// completed run for each of the two other characters.
func (s *Store) Create(name string, character content.CharacterID) *Profile {
	if !character.Valid() {
		s.logger.Debug("profiles: create with unknown character ignored", "character", character)
		return nil
	}
	if runes := []rune(name); len(runes) > MaxNameLength {
		name = string(runes[:MaxNameLength])
	}

	p := &Profile{
		ID:           uuid.NewString(),
		Name:         name,
		Character:    character,
		Progress:     make(map[int]int),
		HasDadaToken: character == content.HardCharacter && s.dadaTokenEarned(),
		CreatedAt:    time.Now(),
	}

	s.profiles = append(s.profiles, p)
	s.activeID = p.ID
	s.save()
	return p
}

// dadaTokenEarned reports whether every non-hard character already has a
// completed profile on record.
func (s *Store) dadaTokenEarned() bool {
	for _, other := range content.HardCharacter.Others() {
		found := false
		for _, p := range s.profiles {
			if p.GameCompleted && p.Character == other {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Select activates an existing profile by id. Unknown ids are ignored and
// nil is returned.
func (s *Store) Select(id string) *Profile {
	p := s.byID(id)
	if p == nil {
		s.logger.Debug("profiles: select of unknown id ignored", "id", id)
		return nil
	}
	s.activeID = p.ID
	return p
}

// Deselect clears the active profile without touching the list.
func (s *Store) Deselect() {
	s.activeID = ""
}

// StageDelete stages a profile for deletion pending confirmation. Nothing is
// removed until ConfirmDelete.
func (s *Store) StageDelete(id string) {
	if s.byID(id) == nil {
		s.logger.Debug("profiles: stage delete of unknown id ignored", "id", id)
		return
	}
	s.pendingDelete = id
}

// PendingDelete returns the staged profile, or nil when none is staged.
func (s *Store) PendingDelete() *Profile {
	return s.byID(s.pendingDelete)
}

// ConfirmDelete removes the staged profile and persists. The active profile
// is cleared if it was the one deleted.
func (s *Store) ConfirmDelete() {
	id := s.pendingDelete
	s.pendingDelete = ""
	if id == "" {
		return
	}

	kept := s.profiles[:0]
	for _, p := range s.profiles {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(s.profiles) {
		return
	}
	s.profiles = kept
	if s.activeID == id {
		s.activeID = ""
	}
	s.save()
}

// CancelDelete discards the staged deletion without effect.
func (s *Store) CancelDelete() {
	s.pendingDelete = ""
}

// RecordProgress max-merges the cleared-minigame count for a case and
// persists. Progress never regresses, so replaying an already-cleared
// minigame is harmless.
func (s *Store) RecordProgress(id string, caseID, cleared int) {
	p := s.byID(id)
	if p == nil {
		return
	}
	if p.Progress == nil {
		p.Progress = make(map[int]int)
	}
	if cleared <= p.Progress[caseID] {
		return
	}
	p.Progress[caseID] = cleared
	s.save()
}

// RecordHighScore max-merges the session score into the profile and persists.
func (s *Store) RecordHighScore(id string, score int) {
	p := s.byID(id)
	if p == nil {
		return
	}
	if score <= p.HighScore {
		return
	}
	p.HighScore = score
	s.save()
}

// MarkCompleted flags the profile as having finished every case. Idempotent.
func (s *Store) MarkCompleted(id string) {
	p := s.byID(id)
	if p == nil || p.GameCompleted {
		return
	}
	p.GameCompleted = true
	s.save()
}
