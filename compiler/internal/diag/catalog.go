package diag

import (
	_ "embed"
	"encoding/json"
	"sync"
)

//go:embed codes.json
var codesJSON []byte

// CodeEntry is a single diagnostic code definition.
type CodeEntry struct {
	ID    string `json:"id"`    // e.g., "SCE0001"
	Title string `json:"title"` // short human title e.g., "undeclared variable"
	Help  string `json:"help"`  // optional default help text
}

// Registry is the top-level catalog format. Scope errors are the only
// domain today; more sections can grow here (type/flow/etc.).
type Registry struct {
	Scope map[string]CodeEntry `json:"scope"`
}

var (
	regOnce sync.Once
	reg     Registry
	regErr  error
)

func load() error {
	regOnce.Do(func() {
		if len(codesJSON) == 0 {
			regErr = nil // empty catalog is allowed
			return
		}
		regErr = json.Unmarshal(codesJSON, &reg)
	})
	return regErr
}

// Lookup returns a code entry by (domain, key).
func Lookup(domain, key string) (CodeEntry, bool) {
	if err := load(); err != nil {
		return CodeEntry{}, false
	}
	switch domain {
	case "scope":
		if reg.Scope == nil {
			return CodeEntry{}, false
		}
		ce, ok := reg.Scope[key]
		return ce, ok
	default:
		return CodeEntry{}, false
	}
}

// MustLookup is a convenience that returns an entry if found; otherwise it
// returns a synthesized placeholder with the provided defaultID and title.
// Use this when you want stable codes even if the JSON is temporarily missing.
func MustLookup(domain, key, defaultID, defaultTitle string) CodeEntry {
	if ce, ok := Lookup(domain, key); ok {
		return ce
	}
	return CodeEntry{ID: defaultID, Title: defaultTitle}
}

// LookupScope is a convenience for the "scope" domain.
func LookupScope(key string) (CodeEntry, bool) { return Lookup("scope", key) }
