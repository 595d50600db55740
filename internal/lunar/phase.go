package lunar

import (
	"fmt"
	"math"
	"strings"
)

// Phase is the qualitative position of the moon in its cycle.
type Phase int

const (
	New Phase = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	Full
	WaningGibbous
	LastQuarter
	WaningCrescent
)

// phaseCount is the number of equal-width bins the cycle is split into.
const phaseCount = 8

var phaseNames = [phaseCount]string{
	"New",
	"Waxing Crescent",
	"First Quarter",
	"Waxing Gibbous",
	"Full",
	"Waning Gibbous",
	"Last Quarter",
	"Waning Crescent",
}

// PhaseOf returns the phase bin containing age. The cycle is split into 8
// bins of width SynodicMonth/8 starting at age 0; each bin includes its
// lower bound and excludes its upper bound.
//
// The bins are independent of the rounded-age test behind IsFullMoon and
// IsNewMoon, so an age of 14.6 is a full moon in Waxing Gibbous phase.
func PhaseOf(age float64) Phase {
	age = normalizeAge(age)
	bin := int(math.Floor(age / (SynodicMonth / phaseCount)))
	if bin >= phaseCount {
		bin = phaseCount - 1
	}
	return Phase(bin)
}

// Waxing reports whether p lies in the first half of the cycle.
func (p Phase) Waxing() bool {
	return p < Full
}

func (p Phase) String() string {
	if p < 0 || int(p) >= phaseCount {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Paksha is one half of the lunar month.
type Paksha int

const (
	// Shukla is the waxing half, new moon to full moon.
	Shukla Paksha = iota
	// Krishna is the waning half, full moon to new moon.
	Krishna
)

func (p Paksha) String() string {
	switch p {
	case Shukla:
		return "Shukla"
	case Krishna:
		return "Krishna"
	default:
		return fmt.Sprintf("Paksha(%d)", int(p))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Paksha) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ParsePaksha parses "shukla" or "krishna" in any case.
func ParsePaksha(s string) (Paksha, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shukla":
		return Shukla, nil
	case "krishna":
		return Krishna, nil
	}
	return Shukla, fmt.Errorf("invalid paksha %q: must be shukla or krishna", s)
}
