package theory

import (
	"strconv"
	"strings"
)

// Mode is one of the seven diatonic modes. The values are ordered from the
// brightest (lydian) to the darkest (locrian), so that the offset of a mode
// from major is its distance, in fifths, from ionian.
type Mode int

const (
	Lydian Mode = iota
	Ionian
	Mixolydian
	Dorian
	Aeolian
	Phrygian
	Locrian
)

const (
	Major = Ionian
	Minor = Aeolian
)

var modeNames = [...]string{
	Lydian:     "lydian",
	Ionian:     "major",
	Mixolydian: "mixolydian",
	Dorian:     "dorian",
	Aeolian:    "minor",
	Phrygian:   "phrygian",
	Locrian:    "locrian",
}

// modeAliases is the closed set of names ParseMode accepts.
var modeAliases = map[string]Mode{
	"lydian":     Lydian,
	"major":      Ionian,
	"ionian":     Ionian,
	"mixolydian": Mixolydian,
	"dorian":     Dorian,
	"minor":      Aeolian,
	"aeolian":    Aeolian,
	"phrygian":   Phrygian,
	"locrian":    Locrian,
}

// Modes returns all modes from brightest to darkest.
func Modes() []Mode {
	return []Mode{Lydian, Ionian, Mixolydian, Dorian, Aeolian, Phrygian, Locrian}
}

// ModeNames returns every accepted mode name, including the synonyms, from
// the brightest mode to the darkest.
func ModeNames() []string {
	return []string{"lydian", "major", "ionian", "mixolydian", "dorian", "minor", "aeolian", "phrygian", "locrian"}
}

// ParseMode looks name up in the mode table. Names are matched exactly after
// lower casing; "major" and "ionian", "minor" and "aeolian" are synonyms.
func ParseMode(name string) (Mode, error) {
	m, ok := modeAliases[strings.ToLower(name)]
	if !ok {
		return 0, &ModeError{Name: name}
	}
	return m, nil
}

func (m Mode) String() string {
	if m < Lydian || m > Locrian {
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
	return modeNames[m]
}

// Offset is the number of fifths the mode lies below its relative major:
// -1 for lydian, 0 for major, up to 5 for locrian.
func (m Mode) Offset() int {
	return int(m) - int(Ionian)
}

// ModeOffset parses name and returns its offset from major.
func ModeOffset(name string) (int, error) {
	m, err := ParseMode(name)
	if err != nil {
		return 0, err
	}
	return m.Offset(), nil
}
