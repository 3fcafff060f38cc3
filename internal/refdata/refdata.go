// internal/refdata/refdata.go
package refdata

import "strings"

// Entry maps one ticker to its display name, sector and search aliases.
// CorpCode is the DART registrant code for Korean listings; empty for
// everything else.
type Entry struct {
	Ticker   string   `mapstructure:"ticker" json:"ticker"`
	Name     string   `mapstructure:"name" json:"name"`
	Sector   string   `mapstructure:"sector" json:"sector"`
	Aliases  []string `mapstructure:"aliases" json:"aliases,omitempty"`
	CorpCode string   `mapstructure:"corp_code" json:"corp_code,omitempty"`
}

// Directory is the immutable ticker/name/sector reference mapping. It is
// built once from configuration and never mutated, so concurrent reads
// need no locking.
type Directory struct {
	entries  []Entry
	byTicker map[string]int
	byAlias  map[string]int
}

// New builds a directory from configured entries. Later duplicates of a
// ticker or alias are ignored.
func New(entries []Entry) *Directory {
	d := &Directory{
		entries:  entries,
		byTicker: make(map[string]int, len(entries)),
		byAlias:  make(map[string]int),
	}
	for i, e := range entries {
		key := normalize(e.Ticker)
		if _, dup := d.byTicker[key]; dup {
			continue
		}
		d.byTicker[key] = i
		if n := normalize(e.Name); n != "" {
			if _, dup := d.byAlias[n]; !dup {
				d.byAlias[n] = i
			}
		}
		for _, a := range e.Aliases {
			if n := normalize(a); n != "" {
				if _, dup := d.byAlias[n]; !dup {
					d.byAlias[n] = i
				}
			}
		}
	}
	return d
}

// Resolve finds the entry for a ticker, display name or alias.
func (d *Directory) Resolve(q string) (Entry, bool) {
	key := normalize(q)
	if i, ok := d.byTicker[key]; ok {
		return d.entries[i], true
	}
	if i, ok := d.byAlias[key]; ok {
		return d.entries[i], true
	}
	return Entry{}, false
}

// NameOf returns the display name for a ticker, falling back to the raw
// input when no mapping exists.
func (d *Directory) NameOf(ticker string) string {
	if e, ok := d.Resolve(ticker); ok {
		return e.Name
	}
	return ticker
}

// SectorOf returns the sector for a ticker, or empty when unmapped.
func (d *Directory) SectorOf(ticker string) string {
	if e, ok := d.Resolve(ticker); ok {
		return e.Sector
	}
	return ""
}

// Search returns entries whose ticker, name or any alias contains the
// query, in directory order. An empty query matches nothing.
func (d *Directory) Search(q string) []Entry {
	key := normalize(q)
	if key == "" {
		return nil
	}
	var out []Entry
	for _, e := range d.entries {
		if matches(e, key) {
			out = append(out, e)
		}
	}
	return out
}

// All returns the configured entries in order.
func (d *Directory) All() []Entry {
	return d.entries
}

func matches(e Entry, key string) bool {
	if strings.Contains(normalize(e.Ticker), key) || strings.Contains(normalize(e.Name), key) {
		return true
	}
	for _, a := range e.Aliases {
		if strings.Contains(normalize(a), key) {
			return true
		}
	}
	return false
}

// normalize lowercases and strips all whitespace so queries like
// "samsung electronics" and "SamsungElectronics" meet in the middle.
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}
