package identity

import (
	"fmt"
	"strings"
)

// Identity is a canonical player name. Balances are keyed by it.
type Identity string

const georgeLetters = "george"

// Normalizer collapses raw display names onto canonical identities.
type Normalizer struct {
	aliases map[string]Identity
}

func NewNormalizer(aliases map[string]string) *Normalizer {
	m := make(map[string]Identity, len(aliases))
	for alias, canonical := range aliases {
		m[strings.ToLower(strings.TrimSpace(alias))] = Identity(canonical)
	}
	return &Normalizer{aliases: m}
}

// Resolve maps a raw display name to its identity. Lookup is case-insensitive.
// Names spelled only with the letters of "george" belong to George.
func (n *Normalizer) Resolve(raw string) (Identity, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if id, ok := n.aliases[key]; ok {
		return id, nil
	}
	if key != "" && strings.Trim(key, georgeLetters) == "" {
		return "George", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlias, raw)
}

func (n *Normalizer) Len() int {
	return len(n.aliases)
}

// DefaultAliases is the built-in table. Like an alias file, every canonical
// name also resolves to itself.
func DefaultAliases() map[string]string {
	aliases := map[string]string{
		"peelic":     "Prilik",
		"arashh":     "Arash",
		"ash":        "Arash",
		"arash":      "Arash",
		"susan":      "Arash",
		"annie":      "Annie",
		"spenner":    "Spencer",
		"spenny":     "Spencer",
		"spenny2":    "Spencer",
		"spange":     "Ethan",
		"biz":        "Alex",
		"guest":      "George",
		"stevo-ipad": "Stephen",
		"stevo":      "Stephen",
		"stephen":    "Stephen",
		"david":      "David",
		"dave":       "David",
		"daveed":     "David",
		"daveeed":    "David",
		"daveeeed":   "David",
		"jerms":      "James",
		"jems":       "James",
		"gems":       "James",
		"james":      "James",
		"josh":       "Josh",
		"jonah":      "Jonah",
		"max":        "Max",
		"sam":        "Sam",
	}
	self := make(map[string]string, len(aliases))
	for _, canonical := range aliases {
		self[strings.ToLower(canonical)] = canonical
	}
	for k, v := range self {
		aliases[k] = v
	}
	return aliases
}
