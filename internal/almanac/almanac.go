// Package almanac assembles lunar facts into the shapes the views need:
// single days, consecutive ranges, whole months and upcoming events.
package almanac

import (
	"fmt"
	"strings"
	"sync"

	"github.com/smokyabdulrahman/lunar-almanac/internal/cache"
	"github.com/smokyabdulrahman/lunar-almanac/internal/calendar"
	"github.com/smokyabdulrahman/lunar-almanac/internal/lunar"
)

// Event is a notable day in the lunar cycle.
type Event int

const (
	FullMoon Event = iota
	NewMoon
	Ekadashi
)

// EventNames lists the accepted event names, in Event order.
var EventNames = []string{"full", "new", "ekadashi"}

// eventAliases maps accepted spellings to events.
var eventAliases = map[string]Event{
	"full":      FullMoon,
	"full-moon": FullMoon,
	"fullmoon":  FullMoon,
	"purnima":   FullMoon,
	"new":       NewMoon,
	"new-moon":  NewMoon,
	"newmoon":   NewMoon,
	"amavasya":  NewMoon,
	"ekadashi":  Ekadashi,
}

// ParseEvent parses an event name such as "full", "new-moon" or "ekadashi".
func ParseEvent(s string) (Event, error) {
	if ev, ok := eventAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return ev, nil
	}
	return 0, fmt.Errorf("unknown event %q; valid events: %s", s, strings.Join(EventNames, ", "))
}

// Matches reports whether f is an occurrence of e.
func (e Event) Matches(f lunar.Facts) bool {
	switch e {
	case FullMoon:
		return f.IsFullMoon
	case NewMoon:
		return f.IsNewMoon
	case Ekadashi:
		return f.IsEkadashi
	default:
		return false
	}
}

func (e Event) String() string {
	switch e {
	case FullMoon:
		return "Full Moon"
	case NewMoon:
		return "New Moon"
	case Ekadashi:
		return "Ekadashi"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// daysPerSearchCycle bounds the search for one occurrence. The new moon
// window is narrower than a day, so about every other cycle has no new
// moon day; two cycles always contain one.
const daysPerSearchCycle = 2 * 30

// Almanac serves lunar facts through a per-date cache.
type Almanac struct {
	cache *cache.Cache
}

// New returns an Almanac backed by c. A nil c gets a private cache.
func New(c *cache.Cache) *Almanac {
	if c == nil {
		c = cache.New(0)
	}
	return &Almanac{cache: c}
}

// Day returns the facts for d.
func (a *Almanac) Day(d calendar.Date) lunar.Facts {
	return a.cache.Get(d)
}

// Range returns the facts for days consecutive dates starting at start.
func (a *Almanac) Range(start calendar.Date, days int) []lunar.Facts {
	if days <= 0 {
		return nil
	}
	out := make([]lunar.Facts, days)
	for i := range out {
		out[i] = a.cache.Get(start.AddDays(i))
	}
	return out
}

// Month returns the facts for every day of m in date order. Days are
// computed concurrently; each result is written to its own slot.
func (a *Almanac) Month(m calendar.Month) []lunar.Facts {
	days := m.Days()
	out := make([]lunar.Facts, len(days))

	var wg sync.WaitGroup
	for i, d := range days {
		wg.Add(1)
		go func(i int, d calendar.Date) {
			defer wg.Done()
			out[i] = a.cache.Get(d)
		}(i, d)
	}
	wg.Wait()
	return out
}

// Next returns up to count occurrences of ev on or after from, in order.
// It returns fewer when the search horizon of two cycles per requested
// occurrence is exhausted first.
func (a *Almanac) Next(from calendar.Date, ev Event, count int) []lunar.Facts {
	if count <= 0 {
		return nil
	}
	horizon := (count + 1) * daysPerSearchCycle

	var found []lunar.Facts
	for i := 0; i < horizon && len(found) < count; i++ {
		f := a.cache.Get(from.AddDays(i))
		if ev.Matches(f) {
			found = append(found, f)
		}
	}
	return found
}

// Occurrence is an event falling on a particular day.
type Occurrence struct {
	Event Event
	Facts lunar.Facts
}

// Events lists every event occurring in facts, in date order.
func Events(facts []lunar.Facts) []Occurrence {
	var out []Occurrence
	for _, f := range facts {
		for _, ev := range []Event{FullMoon, NewMoon, Ekadashi} {
			if ev.Matches(f) {
				out = append(out, Occurrence{Event: ev, Facts: f})
			}
		}
	}
	return out
}

// Stats exposes the cache counters for diagnostics.
func (a *Almanac) Stats() cache.Stats {
	return a.cache.Stats()
}
