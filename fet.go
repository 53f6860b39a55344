// Package fet holds the data types shared by the ear training exercise
// generator: key types and roots, chord progressions and the exercises that
// are built from them. The music theory lives in package theory, the sampling
// in package generator and the file format in package midifile.
package fet

import (
	"fmt"
	"strings"
	"time"

	"github.com/earfet/fet/theory"
)

type (
	// KeyType is the tonality of an exercise. Only the major and the (natural)
	// minor keys are generated; the other modes are only used when spelling.
	KeyType int

	// Root is the tonic of an exercise: its spelling (e.g. "Bb") and the
	// absolute pitch value the progression is built on.
	Root struct {
		Name  string
		Pitch int
	}

	// Chord is a list of pitches sounding together. In the progression
	// templates the values are semitones relative to the root; after
	// Transpose they are absolute pitch values.
	Chord []int

	// Progression is the ordered list of chords establishing the key before
	// the exercise notes are heard.
	Progression []Chord

	// PitchRange is an inclusive range of absolute pitch values, using the
	// midilib numbering where 60 is C3.
	PitchRange struct {
		Low  int `yaml:"low"`
		High int `yaml:"high"`
	}

	// Exercise is one generated ear training exercise. Notes are sorted
	// ascending; Progression has already been transposed to Root.Pitch. Pause
	// is the silence between the progression and the notes. An Exercise is
	// never modified after it has been written to Path.
	Exercise struct {
		Root        Root
		KeyType     KeyType
		Tempo       int
		Notes       []int
		Progression Progression
		Pause       time.Duration
		Info        string
		Path        string
	}
)

const (
	Major KeyType = iota
	Minor
)

// KeyTypes lists the key types in the order the generators visit them.
var KeyTypes = []KeyType{Major, Minor}

var (
	// MajorProgression is I - IV64 - V65 - I, voiced closely around the root.
	MajorProgression = Progression{{0, 4, 7}, {0, 5, 9}, {-1, 5, 7}, {0, 4, 7}}
	// MinorProgression is i - iv64 - V65 - i.
	MinorProgression = Progression{{0, 3, 7}, {0, 5, 8}, {-1, 5, 7}, {0, 3, 7}}
)

func (k KeyType) String() string {
	switch k {
	case Major:
		return "major"
	case Minor:
		return "minor"
	}
	return fmt.Sprintf("KeyType(%d)", int(k))
}

// Suffix is the one letter marker used in file names: "M" or "m".
func (k KeyType) Suffix() string {
	if k == Minor {
		return "m"
	}
	return "M"
}

// Mode returns the diatonic mode the key type corresponds to.
func (k KeyType) Mode() theory.Mode {
	if k == Minor {
		return theory.Aeolian
	}
	return theory.Ionian
}

// Progression returns the untransposed progression template of the key type.
func (k KeyType) Progression() Progression {
	if k == Minor {
		return MinorProgression
	}
	return MajorProgression
}

// ParseKeyType accepts "major" or "minor", case insensitively.
func ParseKeyType(s string) (KeyType, error) {
	switch strings.ToLower(s) {
	case "major":
		return Major, nil
	case "minor":
		return Minor, nil
	}
	return 0, fmt.Errorf("unknown key type %q, expected major or minor", s)
}

// Transpose returns a copy of the chord with every value shifted by root.
func (c Chord) Transpose(root int) Chord {
	ret := make(Chord, len(c))
	for i, v := range c {
		ret[i] = v + root
	}
	return ret
}

// Transpose returns a deep copy of the progression shifted by root.
func (p Progression) Transpose(root int) Progression {
	ret := make(Progression, len(p))
	for i, c := range p {
		ret[i] = c.Transpose(root)
	}
	return ret
}

// Len returns the number of pitches in the range, or 0 if it is empty.
func (r PitchRange) Len() int {
	if r.High < r.Low {
		return 0
	}
	return r.High - r.Low + 1
}

// Contains reports whether pitch is within the range.
func (r PitchRange) Contains(pitch int) bool {
	return pitch >= r.Low && pitch <= r.High
}

// Pitches returns a freshly allocated slice of every pitch in the range, in
// ascending order. Callers are free to modify it.
func (r PitchRange) Pitches() []int {
	ret := make([]int, 0, r.Len())
	for p := r.Low; p <= r.High; p++ {
		ret = append(ret, p)
	}
	return ret
}

func (r PitchRange) String() string {
	return fmt.Sprintf("%d..%d", r.Low, r.High)
}

// DegreeOf returns the degree of pitch above the root pitch, always in 0..11.
func DegreeOf(pitch, root int) theory.Degree {
	return theory.Degree(((pitch-root)%12 + 12) % 12)
}

// Degrees returns the degree of every note of the exercise, in note order.
func (e *Exercise) Degrees() []theory.Degree {
	ret := make([]theory.Degree, len(e.Notes))
	for i, n := range e.Notes {
		ret[i] = DegreeOf(n, e.Root.Pitch)
	}
	return ret
}

// Labels returns the degree labels ("1", "b3", ...) of the notes.
func (e *Exercise) Labels() []string {
	degrees := e.Degrees()
	ret := make([]string, len(degrees))
	for i, d := range degrees {
		ret[i] = d.String()
	}
	return ret
}
