package generator

import "github.com/earfet/fet"

// The major keys run from five sharps to six flats. F# major is left out as
// Gb is the more common spelling; neither table needs a double accidental in
// its key signature.
var majorKeys = []string{"B", "E", "A", "D", "G", "C", "F", "Bb", "Eb", "Ab", "Db", "Gb"}
var minorKeys = []string{"G#", "C#", "F#", "B", "E", "A", "D", "G", "C", "F", "Bb", "Eb"}

// majorRootPitches are the roots of majorKeys, one octave above the lowest
// voicing, which sits too low to hear the progression clearly.
var majorRootPitches = []int{47, 40, 45, 50, 43, 48, 41, 46, 51, 44, 49, 42}

var (
	// MajorRoots are the roots major exercises are built on.
	MajorRoots = func() []fet.Root {
		ret := make([]fet.Root, len(majorKeys))
		for i, name := range majorKeys {
			ret[i] = fet.Root{Name: name, Pitch: majorRootPitches[i] + 12}
		}
		return ret
	}()

	// MinorRoots are the roots minor exercises are built on: each is a minor
	// third below the root of its relative major.
	MinorRoots = func() []fet.Root {
		ret := make([]fet.Root, len(minorKeys))
		for i, name := range minorKeys {
			ret[i] = fet.Root{Name: name, Pitch: MajorRoots[i].Pitch - 3}
		}
		return ret
	}()
)

// Roots returns the root table of the key type. The returned slice must not
// be modified.
func Roots(k fet.KeyType) []fet.Root {
	if k == fet.Minor {
		return MinorRoots
	}
	return MajorRoots
}

// FindRoot looks up a root by its spelling in the table of the key type.
func FindRoot(k fet.KeyType, name string) (fet.Root, bool) {
	for _, r := range Roots(k) {
		if r.Name == name {
			return r, true
		}
	}
	return fet.Root{}, false
}
