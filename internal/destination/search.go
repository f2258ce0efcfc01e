package destination

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"
)

// SynthesizedIDPrefix marks destinations that were generated rather than
// taken from the catalog.
const SynthesizedIDPrefix = "search-"

const maxSuggestions = 5

// Catalog returns a copy of the static destination catalog.
func Catalog() []Destination {
	out := make([]Destination, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a catalog destination by ID.
func Lookup(id string) (Destination, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Destination{}, false
}

// Resolve returns every catalog destination whose name or description contains
// query (case-insensitive), in catalog order. With no match it synthesizes a
// single destination for the query. A blank query resolves to nothing.
func Resolve(query string) []Destination {
	if strings.TrimSpace(query) == "" {
		return []Destination{}
	}

	needle := strings.ToLower(query)
	var matches []Destination
	for _, d := range catalog {
		if strings.Contains(strings.ToLower(d.Name), needle) ||
			strings.Contains(strings.ToLower(d.Description), needle) {
			matches = append(matches, d)
		}
	}
	if len(matches) > 0 {
		return matches
	}

	return []Destination{Synthesize(query)}
}

// Synthesize fabricates a destination for a name that is not in the catalog.
func Synthesize(query string) Destination {
	name := titleCase(query)
	return Destination{
		ID:          SynthesizedIDPrefix + ulid.Make().String(),
		Name:        name,
		Image:       synthesizedImages[absMod(int64(nameLength(name)), len(synthesizedImages))],
		SafetyScore: SafetyScore(name),
		Description: Description(name),
	}
}

// IsSynthesized reports whether d was generated rather than taken from the catalog.
func IsSynthesized(d Destination) bool {
	return strings.HasPrefix(d.ID, SynthesizedIDPrefix)
}

// titleCase upper-cases the first character of each space-separated word and
// lower-cases the rest of it. Hyphens and other punctuation do not start a new
// word. Separators are kept as-is so the name length, and with it every
// derived index, follows the raw query.
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(first)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}

// Suggest returns up to five popular cities containing input. Inputs shorter
// than two characters produce no suggestions.
func Suggest(input string) []string {
	input = strings.TrimSpace(input)
	if len([]rune(input)) < 2 {
		return []string{}
	}

	needle := strings.ToLower(input)
	out := make([]string, 0, maxSuggestions)
	for _, city := range popularCities {
		if strings.Contains(strings.ToLower(city), needle) {
			out = append(out, city)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}
