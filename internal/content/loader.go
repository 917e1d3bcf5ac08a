package content

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/cases.yaml
var defaultCasesYAML []byte

// Load loads the case library.
// Search order: customPath -> ~/.dadaspiel/cases.yaml -> ./cases.yaml -> embedded default
func Load(customPath string) (Library, error) {
	var lib Library

	// Custom path is authoritative: failures there are reported.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return lib, fmt.Errorf("failed to read cases %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &lib); err != nil {
			return lib, fmt.Errorf("failed to parse cases %s: %w", customPath, err)
		}
		return lib, validate(lib)
	}

	if userPath := userContentPath("cases.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &lib); err == nil && validate(lib) == nil {
				return lib, nil
			}
		}
	}

	if data, err := os.ReadFile("cases.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &lib); err == nil && validate(lib) == nil {
			return lib, nil
		}
	}

	if err := yaml.Unmarshal(defaultCasesYAML, &lib); err != nil {
		return lib, fmt.Errorf("failed to parse embedded cases: %w", err)
	}
	return lib, validate(lib)
}

// userContentPath returns the path to a user content file, or empty if the
// home directory is unavailable.
func userContentPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dadaspiel", filename)
}

// validate rejects libraries the session cannot run.
func validate(lib Library) error {
	if len(lib.Cases) == 0 {
		return fmt.Errorf("content: no cases defined")
	}
	seen := make(map[string]bool)
	for _, c := range lib.Cases {
		if len(c.Minigames) == 0 {
			return fmt.Errorf("content: case %d has no minigames", c.ID)
		}
		for _, mg := range c.Minigames {
			if seen[mg.ID] {
				return fmt.Errorf("content: duplicate minigame id %q", mg.ID)
			}
			seen[mg.ID] = true
		}
	}
	return nil
}
