package theory

import (
	"sort"
)

// RelativeMajor returns the root of the major key sharing its key signature
// with root in the given mode, e.g. A aeolian -> C.
func RelativeMajor(root string, mode Mode) (string, error) {
	if _, err := ParseSpelling(root); err != nil {
		return "", err
	}
	index, ok := CircleIndex(root)
	if !ok {
		return "", &RootError{Root: root, Mode: mode}
	}
	shifted := index - mode.Offset()
	if shifted < 0 || shifted >= len(circleOfFifths) {
		return "", &RootError{Root: root, Mode: mode}
	}
	return circleOfFifths[shifted], nil
}

// DiatonicSpelling returns the seven notes of root in the given mode, in
// ascending letter order starting from root, e.g. A aeolian -> A B C D E F G.
// Every letter appears exactly once.
func DiatonicSpelling(root string, mode Mode) ([]string, error) {
	major, err := RelativeMajor(root, mode)
	if err != nil {
		return nil, err
	}
	index, _ := CircleIndex(major)
	// The key signature of a major key spans from its subdominant (one fifth
	// down) to its leading tone (five fifths up).
	if index-1 < 0 || index+6 > len(circleOfFifths) {
		return nil, &RootError{Root: root, Mode: mode}
	}
	ret := make([]string, 7)
	copy(ret, circleOfFifths[index-1:index+6])
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	for i, name := range ret {
		if name == root {
			return append(ret[i:], ret[:i]...), nil
		}
	}
	return nil, &RootError{Root: root, Mode: mode}
}

// RelativeMajorByName is RelativeMajor with the mode given by name.
func RelativeMajorByName(root, modeName string) (string, error) {
	mode, err := ParseMode(modeName)
	if err != nil {
		return "", err
	}
	return RelativeMajor(root, mode)
}

// DiatonicSpellingByName is DiatonicSpelling with the mode given by name.
func DiatonicSpellingByName(root, modeName string) ([]string, error) {
	mode, err := ParseMode(modeName)
	if err != nil {
		return nil, err
	}
	return DiatonicSpelling(root, mode)
}
