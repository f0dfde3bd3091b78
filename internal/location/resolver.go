// Package location maps free-typed locations and addresses to ISO 3166
// alpha-2 country codes and backs the country picker.
package location

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

//go:embed countries.json
var countriesJSON []byte

type Country struct {
	Name string `json:"name"`
	Code string `json:"cca2"`
}

// Resolver holds the country list sorted by name in English collation order.
// It is read-only after construction and safe for concurrent use.
type Resolver struct {
	countries []Country
	folded    []string
	byName    map[string]string
}

var (
	defaultOnce     sync.Once
	defaultResolver *Resolver
)

// Default returns the resolver over the embedded country list.
func Default() *Resolver {
	defaultOnce.Do(func() {
		var countries []Country
		if err := json.Unmarshal(countriesJSON, &countries); err != nil {
			panic(fmt.Sprintf("location: decode embedded countries: %v", err))
		}
		defaultResolver = New(countries)
	})
	return defaultResolver
}

// New sorts the countries and indexes them by folded name. Entries without
// a name or code are skipped.
func New(countries []Country) *Resolver {
	list := make([]Country, 0, len(countries))
	for _, c := range countries {
		if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Code) == "" {
			continue
		}
		list = append(list, Country{Name: c.Name, Code: strings.ToUpper(c.Code)})
	}

	col := collate.New(language.English)
	sort.SliceStable(list, func(i, j int) bool {
		return col.CompareString(list[i].Name, list[j].Name) < 0
	})

	r := &Resolver{
		countries: list,
		folded:    make([]string, len(list)),
		byName:    make(map[string]string, len(list)),
	}
	for i, c := range list {
		key := fold(c.Name)
		r.folded[i] = key
		if _, seen := r.byName[key]; !seen {
			r.byName[key] = c.Code
		}
	}
	return r
}

// Countries returns the sorted country list.
func (r *Resolver) Countries() []Country {
	out := make([]Country, len(r.countries))
	copy(out, r.countries)
	return out
}

// Names returns the sorted country names.
func (r *Resolver) Names() []string {
	out := make([]string, len(r.countries))
	for i, c := range r.countries {
		out[i] = c.Name
	}
	return out
}

// Lookup finds the code for an exact, case-insensitive country name.
func (r *Resolver) Lookup(name string) (string, bool) {
	code, ok := r.byName[fold(strings.TrimSpace(name))]
	return code, ok
}

// ResolveCountryCode tries the location value as an exact country name first,
// then falls back to the first country, in sorted order, whose name appears
// inside the address text. Shorter names that prefix longer ones win
// ("Niger" before "Nigeria") because only list order breaks ties.
func (r *Resolver) ResolveCountryCode(locationValue, addressText string) (string, bool) {
	if code, ok := r.Lookup(locationValue); ok {
		return code, true
	}
	address := fold(addressText)
	if address == "" {
		return "", false
	}
	for i, name := range r.folded {
		if strings.Contains(address, name) {
			return r.countries[i].Code, true
		}
	}
	return "", false
}

// Filter returns the country names containing query, case-insensitively.
// An empty query returns every name.
func (r *Resolver) Filter(query string) []string {
	if query == "" {
		return r.Names()
	}
	q := fold(query)
	out := []string{}
	for i, name := range r.folded {
		if strings.Contains(name, q) {
			out = append(out, r.countries[i].Name)
		}
	}
	return out
}

func fold(s string) string {
	// Casers carry state and are not shared across goroutines.
	return cases.Fold().String(s)
}
