package identity

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// aliasFile is the on-disk layout: canonical name to its raw spellings.
//
//	players:
//	  David: [dave, daveed, daveeed]
type aliasFile struct {
	Players map[string][]string `yaml:"players"`
}

// ParseAliases decodes an alias table. Each canonical name also resolves
// to itself.
func ParseAliases(raw []byte) (map[string]string, error) {
	var f aliasFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadAliasFile, err)
	}
	out := make(map[string]string)
	for canonical, spellings := range f.Players {
		canonical = strings.TrimSpace(canonical)
		if canonical == "" {
			return nil, fmt.Errorf("%w: empty canonical name", ErrBadAliasFile)
		}
		for _, s := range append([]string{canonical}, spellings...) {
			key := strings.ToLower(strings.TrimSpace(s))
			if key == "" {
				continue
			}
			if prev, ok := out[key]; ok && prev != canonical {
				return nil, fmt.Errorf("%w: alias %q maps to both %s and %s", ErrBadAliasFile, s, prev, canonical)
			}
			out[key] = canonical
		}
	}
	return out, nil
}

// LoadAliases reads a YAML alias table, or returns the built-in table when
// path is empty.
func LoadAliases(path string) (map[string]string, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultAliases(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read alias file %q: %w", path, err)
	}
	return ParseAliases(raw)
}
