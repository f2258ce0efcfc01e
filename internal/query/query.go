// Package query decides whether free-text search input names a destination,
// asks a safety question, or is not worth resolving, and pulls the most
// likely place name out of it.
package query

import (
	"regexp"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind is the classification of a search query.
type Kind string

const (
	KindDestination Kind = "destination"
	KindSafety      Kind = "safety"
	KindInvalid     Kind = "invalid"
)

// Classification is the outcome of Classify.
type Classification struct {
	Kind            Kind   `json:"kind"`
	NormalizedQuery string `json:"normalizedQuery"`
	LocationHint    string `json:"locationHint"`
}

const (
	minQueryLength  = 3
	minLetterRatio  = 0.6
	maxRepeatedRun  = 3
	minLocationWord = 3
)

var (
	safetyPattern      = regexp.MustCompile(`(?i)\b(safe|safety|danger|dangerous|risk|crime|secure|should i go|should i visit)\b`)
	safetyWordsPattern = regexp.MustCompile(`(?i)\b(safe|safety|danger|dangerous|should)\b`)
	markerPattern      = regexp.MustCompile(`\b(?i:is|in|about)\s+([A-Z][a-z]+)\b`)
	capitalizedWord    = regexp.MustCompile(`^[A-Z][a-z]+$`)
)

// Checked in order when nothing capitalized is found.
var knownLocations = []string{
	"tokyo", "paris", "london", "rome", "bangkok", "bali", "sydney",
	"york", "mexico", "india", "japan", "china", "thailand", "europe",
}

// Places that let a lowercase safety question through the location gate.
var gatePlaces = []string{
	"tokyo", "paris", "london", "rome", "bangkok", "bali", "sydney", "new york",
	"mexico", "india", "japan", "china", "thailand", "europe", "asia", "africa",
}

// IsReasonableLocationQuery reports whether q could plausibly name a place.
func IsReasonableLocationQuery(q string) bool {
	return ValidateLocationQuery(q) == nil
}

// ValidateLocationQuery returns a *ValidationError for the first shape check q fails:
// fewer than three characters, under 60% ASCII letters, or a run of four or
// more identical characters. Lengths and runs are measured in UTF-16 code
// units, the same unit the destination hash walks.
func ValidateLocationQuery(q string) error {
	units := utf16.Encode([]rune(q))
	if len(units) < minQueryLength {
		return &ValidationError{Reason: ReasonTooShort}
	}

	letters := 0
	for _, u := range units {
		if ('a' <= u && u <= 'z') || ('A' <= u && u <= 'Z') {
			letters++
		}
	}
	if float64(letters) < float64(len(units))*minLetterRatio {
		return &ValidationError{Reason: ReasonTooFewLetters}
	}

	run := 1
	for i := 1; i < len(units); i++ {
		if units[i] == units[i-1] {
			run++
			if run > maxRepeatedRun {
				return &ValidationError{Reason: ReasonRepeatedChars}
			}
			continue
		}
		run = 1
	}

	return nil
}

// IsSafetyQuery reports whether q asks about safety.
func IsSafetyQuery(q string) bool {
	return safetyPattern.MatchString(q)
}

// PrimaryLocationName extracts the most likely place name. The first result
// name wins when there is one; otherwise the query itself is searched.
func PrimaryLocationName(q string, resultNames []string) string {
	if q == "" {
		return ""
	}

	if len(resultNames) > 0 {
		return strings.TrimSpace(strings.SplitN(resultNames[0], ",", 2)[0])
	}

	if m := markerPattern.FindStringSubmatch(q); m != nil {
		return m[1]
	}

	if w := firstCapitalizedWord(q); w != "" {
		return w
	}

	lower := strings.ToLower(q)
	for _, loc := range knownLocations {
		if strings.Contains(lower, loc) {
			return cases.Title(language.English).String(loc)
		}
	}

	return ""
}

// HasRecognizableLocation is the location gate for safety questions: q must
// contain a capitalized word or a known place.
func HasRecognizableLocation(q string) bool {
	return firstCapitalizedWord(q) != "" || gatePlace(q) != ""
}

// gatePlace returns the first gate place q mentions, or "".
func gatePlace(q string) string {
	lower := strings.ToLower(q)
	for _, place := range gatePlaces {
		if strings.Contains(lower, place) {
			return place
		}
	}
	return ""
}

// NormalizeSafetyQuery phrases q as a safety question unless it already is one.
func NormalizeSafetyQuery(q string) string {
	if safetyWordsPattern.MatchString(q) {
		return q
	}
	return "Is " + q + " safe to visit?"
}

// Classify runs the shape checks, detects safety questions and applies the
// location gate to them. Rejected input comes back as KindInvalid together
// with a *ValidationError.
func Classify(raw string) (Classification, error) {
	q := strings.TrimSpace(raw)

	if err := ValidateLocationQuery(q); err != nil {
		return Classification{Kind: KindInvalid, NormalizedQuery: q}, err
	}

	if IsSafetyQuery(q) {
		if !HasRecognizableLocation(q) {
			return Classification{Kind: KindInvalid, NormalizedQuery: q}, &ValidationError{Reason: ReasonMissingLocation}
		}
		hint := PrimaryLocationName(q, nil)
		if hint == "" {
			// Let the gate keyword itself ("asia", "africa") name the place.
			hint = cases.Title(language.English).String(gatePlace(q))
		}
		return Classification{
			Kind:            KindSafety,
			NormalizedQuery: NormalizeSafetyQuery(q),
			LocationHint:    hint,
		}, nil
	}

	return Classification{
		Kind:            KindDestination,
		NormalizedQuery: q,
		LocationHint:    PrimaryLocationName(q, nil),
	}, nil
}

func firstCapitalizedWord(q string) string {
	for _, w := range strings.Fields(q) {
		if len(w) >= minLocationWord && capitalizedWord.MatchString(w) {
			return w
		}
	}
	return ""
}
