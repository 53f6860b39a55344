package theory

// Degree is a distance in semitones, 0 to 11, above the root of a key.
type Degree int

var degreeNames = [12]string{"1", "b2", "2", "b3", "3", "4", "b5", "5", "b6", "6", "b7", "7"}

// DegreeNames returns the labels of all twelve degrees, from "1" to "7".
func DegreeNames() []string {
	ret := make([]string, len(degreeNames))
	copy(ret, degreeNames[:])
	return ret
}

// String returns the label of the degree, e.g. "b3" for 3 semitones.
func (d Degree) String() string {
	return degreeNames[((int(d)%12)+12)%12]
}

// scaleStep is the index in the major scale each degree is spelled from, and
// whether the scale note has to be flattened.
var scaleStep = [12]struct {
	index   int
	flatten bool
}{
	{0, false}, {1, true}, {1, false}, {2, true}, {2, false}, {3, false},
	{4, true}, {4, false}, {5, true}, {5, false}, {6, true}, {6, false},
}

// SpellDegree spells the note degree semitones above root. The seven
// diatonic degrees come from the major scale on root and the chromatic ones
// (b2, b3, b5, b6, b7) lower the scale note with the same number, so the
// spelling always agrees with the label: SpellDegree("D", 3) is "F".
func SpellDegree(root string, degree Degree) (string, error) {
	scale, err := DiatonicSpelling(root, Major)
	if err != nil {
		return "", err
	}
	step := scaleStep[((int(degree)%12)+12)%12]
	name := scale[step.index]
	if step.flatten {
		return Flatten(name)
	}
	return name, nil
}

// SpellDegrees spells all twelve degrees above root.
func SpellDegrees(root string) ([]string, error) {
	ret := make([]string, 12)
	for d := range ret {
		name, err := SpellDegree(root, Degree(d))
		if err != nil {
			return nil, err
		}
		ret[d] = name
	}
	return ret, nil
}
