package theory

// naturalFifths are the seven natural letters, already a perfect fifth apart.
var naturalFifths = [7]string{"F", "C", "G", "D", "A", "E", "B"}

// accidentalTiers is how many times the natural letters are flattened (and,
// separately, sharpened) when building the circle.
const accidentalTiers = 3

var (
	circleOfFifths = buildCircleOfFifths()
	circleIndex    = func() map[string]int {
		ret := make(map[string]int, len(circleOfFifths))
		for i, name := range circleOfFifths {
			ret[name] = i
		}
		return ret
	}()
)

// buildCircleOfFifths concatenates the natural letters flattened three, two
// and one times, the naturals themselves, and the naturals sharpened one, two
// and three times. Any two neighbours of the result are a perfect fifth apart.
func buildCircleOfFifths() []string {
	ret := make([]string, 0, len(naturalFifths)*(2*accidentalTiers+1))
	for tier := -accidentalTiers; tier <= accidentalTiers; tier++ {
		for _, name := range naturalFifths {
			s := Spelling{Letter: name[0]}
			for i := 0; i < -tier; i++ {
				s = s.Flatten()
			}
			for i := 0; i < tier; i++ {
				s = s.Sharpen()
			}
			ret = append(ret, s.String())
		}
	}
	return ret
}

// CircleOfFifths returns a copy of the circle of fifths, from Fbbb to Bx#.
func CircleOfFifths() []string {
	ret := make([]string, len(circleOfFifths))
	copy(ret, circleOfFifths)
	return ret
}

// CircleIndex returns the position of the spelling on the circle of fifths,
// or false if the spelling is not on it.
func CircleIndex(name string) (int, bool) {
	i, ok := circleIndex[name]
	return i, ok
}
