package destination

import (
	"math/rand/v2"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	forecastDays  = 3
	tipBatchSize  = 3
	jitterDegrees = 3
)

// Random is the subset of *rand.Rand the synthesizer draws from.
type Random interface {
	IntN(n int) int
	Float64() float64
}

// globalRandom draws from the goroutine-safe top-level math/rand/v2 generator.
type globalRandom struct{}

func (globalRandom) IntN(n int) int   { return rand.IntN(n) }
func (globalRandom) Float64() float64 { return rand.Float64() }

// Synthesizer fabricates weather and safety content for arbitrary location
// names. Alerts and tips depend only on the name; weather and safety profiles
// layer random draws on top of a name-derived baseline.
type Synthesizer struct {
	rnd   Random
	clock clockwork.Clock
}

// NewSynthesizer constructs a Synthesizer backed by the real clock and the
// global random generator.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{rnd: globalRandom{}, clock: clockwork.NewRealClock()}
}

// NewSynthesizerWithSource constructs a Synthesizer with injected randomness
// and time (used in tests). A *rand.Rand is not safe for concurrent use, so
// callers sharing one across goroutines must serialize access themselves.
func NewSynthesizerWithSource(rnd Random, clock clockwork.Clock) *Synthesizer {
	return &Synthesizer{rnd: rnd, clock: clock}
}

// Environment synthesizes weather, alerts and tips for name.
func (s *Synthesizer) Environment(name string) Environment {
	return Environment{
		Weather: s.Weather(name),
		Alerts:  Alerts(name),
		Tips:    Tips(name),
	}
}

// SeasonalBaseTemperature is the deterministic part of the weather: a
// northern-hemisphere seasonal value shifted by a name-derived variance in [-5, 4].
func SeasonalBaseTemperature(name string, month time.Month) int {
	variance := absMod(int64(Hash(name)), 10) - 5

	switch {
	case month >= time.March && month <= time.May:
		return 15 + variance
	case month >= time.June && month <= time.August:
		return 25 + variance
	case month >= time.September && month <= time.November:
		return 15 + variance
	default:
		return 5 + variance
	}
}

// Weather synthesizes a snapshot for name. It is intentionally not
// reproducible: only the seasonal baseline is derived from the name.
func (s *Synthesizer) Weather(name string) WeatherSnapshot {
	now := s.clock.Now()

	current := SeasonalBaseTemperature(name, now.Month()) + s.jitter()
	condition := conditionFor(s.rnd.Float64() * 100)
	humidity := 30 + s.rnd.IntN(51)
	wind := s.rnd.IntN(21)

	forecast := make([]ForecastDay, 0, forecastDays)
	for i := 1; i <= forecastDays; i++ {
		day := now.AddDate(0, 0, i).Weekday().String()[:3]
		forecast = append(forecast, ForecastDay{Day: day, Temp: current + s.jitter()})
	}

	return WeatherSnapshot{
		Condition:   condition,
		Temperature: current,
		Humidity:    humidity,
		Wind:        wind,
		Forecast:    forecast,
	}
}

// jitter returns a uniform integer in [-3, 3].
func (s *Synthesizer) jitter() int {
	return s.rnd.IntN(2*jitterDegrees+1) - jitterDegrees
}

// conditionFor walks the weighted buckets in order; draw is in [0, 100).
func conditionFor(draw float64) Condition {
	for _, c := range conditionWeights {
		if draw < c.weight {
			return c.condition
		}
		draw -= c.weight
	}
	return conditionWeights[0].condition
}

// Alerts selects 0–3 alerts for name. Three in four names get alerts. At
// each step the unused catalog entries form a pool that is indexed with the
// hash, so the pool shrinks as entries are taken.
func Alerts(name string) []SafetyAlert {
	h := int64(Hash(name))
	if absMod(h, 4) == 0 {
		return []SafetyAlert{}
	}

	count := absMod(h, 3) + 1
	length := nameLength(name)
	used := make(map[int]bool, count)
	alerts := make([]SafetyAlert, 0, count)

	for i := 0; i < count; i++ {
		pool := make([]int, 0, len(alertCatalog))
		for idx := range alertCatalog {
			if !used[idx] {
				pool = append(pool, idx)
			}
		}
		if len(pool) == 0 {
			break
		}

		picked := pool[absMod(h+int64(i), len(pool))]
		used[picked] = true
		tmpl := alertCatalog[picked]

		alerts = append(alerts, SafetyAlert{
			ID:          i + 1,
			Type:        tmpl.alertType,
			Title:       tmpl.title,
			Description: tmpl.description,
			Severity:    escalate(tmpl.severity, length),
		})
	}

	return alerts
}

// escalate bumps low to medium for lengths divisible by 5, then medium to
// high for lengths divisible by 7. The checks are applied in sequence.
func escalate(base Severity, length int) Severity {
	sev := base
	if length%5 == 0 && sev == SeverityLow {
		sev = SeverityMedium
	}
	if length%7 == 0 && sev == SeverityMedium {
		sev = SeverityHigh
	}
	return sev
}

// Tips picks up to three tips from distinct categories. A category index
// that repeats is skipped, not replaced.
func Tips(name string) []TravelTip {
	h := int64(Hash(name))
	used := make(map[int]bool, tipBatchSize)
	tips := make([]TravelTip, 0, tipBatchSize)

	for i := 0; i < tipBatchSize; i++ {
		catIdx := absMod(h+int64(i*13), len(tipCategories))
		if used[catIdx] {
			continue
		}
		used[catIdx] = true

		cat := tipCategories[catIdx]
		tips = append(tips, TravelTip{
			ID:          len(tips) + 1,
			Title:       cat.name,
			Description: cat.tips[absMod(h+int64(i*7), len(cat.tips))],
		})
	}

	return tips
}

// Profile breaks d's safety down into crime, health and environment scores,
// each a random integer in [7, 9]. Overall is d's own score.
func (s *Synthesizer) Profile(d Destination) SafetyProfile {
	return SafetyProfile{
		Crime:       7 + s.rnd.IntN(3),
		Health:      7 + s.rnd.IntN(3),
		Environment: 7 + s.rnd.IntN(3),
		Overall:     d.SafetyScore,
	}
}
