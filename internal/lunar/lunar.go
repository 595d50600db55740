// Package lunar converts calendar dates into the lunar facts shown by the
// almanac: moon age, phase, illumination and the Vedic tithi and paksha.
//
// The age model is closed form. A date's age is the whole number of days
// since ReferenceNewMoon reduced modulo SynodicMonth. There is no ephemeris,
// so events can be off by up to a day or so against the real sky, but every
// result is reproducible bit for bit.
//
// Compute is a pure function of its argument and is safe for concurrent use.
package lunar

import (
	"fmt"
	"math"
	"time"

	"github.com/smokyabdulrahman/lunar-almanac/internal/calendar"
)

const (
	// SynodicMonth is the mean length of the lunar cycle in days.
	SynodicMonth = 29.53059

	// illuminationCycle and halfCycle drive the triangular illumination
	// model. They use the rounded cycle length, so ages in
	// [illuminationCycle, SynodicMonth) clamp to 0%.
	illuminationCycle = 29.53
	halfCycle         = illuminationCycle / 2

	// pakshaLength is the age at which the waning half begins.
	pakshaLength = 15

	// ekadashiIndex is the 0-based index of the 11th tithi.
	ekadashiIndex = 10
)

// ReferenceNewMoon is the epoch of the age model: the new moon of
// 6 January 2000. Its age is exactly 0.
var ReferenceNewMoon = calendar.MustNew(2000, time.January, 6)

// TithiNames lists the 15 tithis of a paksha in order. The final entry is
// a placeholder resolved per paksha: Purnima under Shukla, Amavasya under
// Krishna.
var TithiNames = [pakshaLength]string{
	"Pratipada",
	"Dwitiya",
	"Tritiya",
	"Chaturthi",
	"Panchami",
	"Shashthi",
	"Saptami",
	"Ashtami",
	"Navami",
	"Dashami",
	"Ekadashi",
	"Dwadashi",
	"Trayodashi",
	"Chaturdashi",
	"Purnima/Amavasya",
}

// Titles used at the extremes of the cycle.
const (
	FullMoonTitle = "Purnima (Full Moon)"
	NewMoonTitle  = "Amavasya (New Moon)"
)

// Facts is everything the almanac knows about one date.
type Facts struct {
	Date         calendar.Date
	Age          float64 // days since the preceding new moon, [0, SynodicMonth)
	Phase        Phase
	Paksha       Paksha
	TithiIndex   int // 0-14 within the paksha
	TithiName    string
	DisplayTitle string
	IsFullMoon   bool
	IsNewMoon    bool
	IsEkadashi   bool
	Illumination int // percent, 0-100
}

// TithiNumber returns the tithi counted across the whole lunar month:
// 1-15 in Shukla paksha, 16-30 in Krishna paksha.
func (f Facts) TithiNumber() int {
	if f.Paksha == Krishna {
		return pakshaLength + f.TithiIndex + 1
	}
	return f.TithiIndex + 1
}

func (f Facts) String() string {
	return fmt.Sprintf("%s %s age=%.2f %s %d%%", f.Date, f.DisplayTitle, f.Age, f.Phase, f.Illumination)
}

// Compute returns the lunar facts for d.
func Compute(d calendar.Date) Facts {
	f := FromAge(Age(d))
	f.Date = d
	return f
}

// Age returns the moon's age in days on d, in [0, SynodicMonth).
func Age(d calendar.Date) float64 {
	return normalizeAge(float64(d.DaysSince(ReferenceNewMoon)))
}

// FromAge derives the facts for a moon of the given age. Ages outside
// [0, SynodicMonth) are wrapped into the cycle first; NaN and infinities
// are treated as 0. The Date field of the result is left zero.
func FromAge(age float64) Facts {
	age = normalizeAge(age)

	paksha := Shukla
	if age >= pakshaLength {
		paksha = Krishna
	}

	idx := tithiIndex(age)

	rounded := math.Round(age)
	isFull := rounded == pakshaLength
	isNew := rounded == 0 || rounded == 30

	name := tithiName(idx, paksha)

	return Facts{
		Age:          age,
		Phase:        PhaseOf(age),
		Paksha:       paksha,
		TithiIndex:   idx,
		TithiName:    name,
		DisplayTitle: displayTitle(paksha, name, isFull, isNew),
		IsFullMoon:   isFull,
		IsNewMoon:    isNew,
		IsEkadashi:   idx == ekadashiIndex,
		Illumination: illumination(age),
	}
}

// normalizeAge wraps age into [0, SynodicMonth).
func normalizeAge(age float64) float64 {
	if math.IsNaN(age) || math.IsInf(age, 0) {
		return 0
	}
	age = math.Mod(age, SynodicMonth)
	if age < 0 {
		age += SynodicMonth
	}
	if age >= SynodicMonth {
		// -tiny + SynodicMonth can round up to the bound.
		age = 0
	}
	return age
}

func tithiIndex(age float64) int {
	idx := int(math.Floor(math.Mod(age, pakshaLength)))
	if idx >= len(TithiNames) {
		idx = len(TithiNames) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func tithiName(idx int, p Paksha) string {
	if idx == len(TithiNames)-1 {
		if p == Shukla {
			return "Purnima"
		}
		return "Amavasya"
	}
	return TithiNames[idx]
}

// displayTitle gives the new-moon title precedence over the full-moon
// title; the two are never both set.
func displayTitle(p Paksha, name string, isFull, isNew bool) string {
	switch {
	case isNew:
		return NewMoonTitle
	case isFull:
		return FullMoonTitle
	default:
		return p.String() + " " + name
	}
}

// illumination is a triangular wave: 0% at new moon, 100% at halfCycle,
// back to 0% at illuminationCycle.
func illumination(age float64) int {
	var fraction float64
	if age <= halfCycle {
		fraction = age / halfCycle
	} else {
		fraction = (illuminationCycle - age) / halfCycle
	}
	fraction = math.Max(0, math.Min(fraction, 1))
	return int(math.Round(fraction * 100))
}
